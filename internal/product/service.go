package product

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ecomshop/shop-api/internal/category"
	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/shared/cache"
	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"gorm.io/gorm"
)

const cacheKeyPrefix = "product:"

// CacheKey is the cache key of a single product response.
func CacheKey(id uint32) string {
	return cacheKeyPrefix + strconv.FormatUint(uint64(id), 10)
}

type ProductService struct {
	db                 *gorm.DB
	productRepository  *ProductRepository
	categoryRepository *category.CategoryRepository
	cache              cache.Store
	cacheTTL           time.Duration
}

func NewProductService(db *gorm.DB, productRepository *ProductRepository, categoryRepository *category.CategoryRepository, store cache.Store, cacheTTL time.Duration) *ProductService {
	if store == nil {
		store = cache.Noop{}
	}
	return &ProductService{
		db:                 db,
		productRepository:  productRepository,
		categoryRepository: categoryRepository,
		cache:              store,
		cacheTTL:           cacheTTL,
	}
}

func (s *ProductService) Create(ctx context.Context, request *CreateRequest) (*Response, error) {
	if request.CategoryID != nil {
		if _, err := s.categoryRepository.FindByID(ctx, s.db, *request.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("create product: %w", errUnknownCategory(*request.CategoryID))
			}
			return nil, fmt.Errorf("find category: %w", err)
		}
	}

	stock := 0
	if request.Stock != nil {
		stock = *request.Stock
	}

	product := model.NewProduct(
		strings.TrimSpace(request.Name),
		strings.TrimSpace(request.Description),
		*request.Price,
		stock,
		strings.TrimSpace(request.Image),
		request.CategoryID,
	)
	if err := s.productRepository.Create(ctx, s.db, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	logger.FromContext(ctx).Info("product created", "product_id", product.ID, "stock", product.Stock)
	resp := ToResponse(product)
	return &resp, nil
}

// Get reads through the cache.
func (s *ProductService) Get(ctx context.Context, id uint32) (*Response, error) {
	log := logger.FromContext(ctx)

	var cached Response
	err := cache.GetJSON(ctx, s.cache, CacheKey(id), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn("product cache read failed", "product_id", id, "error", err)
	}

	product, err := s.productRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product id=%d: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	resp := ToResponse(product)
	if err := cache.SetJSON(ctx, s.cache, CacheKey(id), resp, s.cacheTTL); err != nil {
		log.Warn("product cache write failed", "product_id", id, "error", err)
	}
	return &resp, nil
}

func (s *ProductService) List(ctx context.Context) ([]Response, error) {
	products, err := s.productRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	responses := make([]Response, 0, len(products))
	for i := range products {
		responses = append(responses, ToResponse(&products[i]))
	}
	return responses, nil
}

// Invalidate drops cached responses of products whose stock changed.
func (s *ProductService) Invalidate(ctx context.Context, ids ...uint32) {
	if len(ids) == 0 {
		return
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, CacheKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.FromContext(ctx).Warn("product cache invalidation failed", "product_ids", ids, "error", err)
	}
}

func errUnknownCategory(id uint32) error {
	return sharedError.WithMessage(ErrUnknownCategory, "No category found with ID: %d", id)
}
