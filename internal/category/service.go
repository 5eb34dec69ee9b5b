package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"gorm.io/gorm"
)

type CategoryService struct {
	db                 *gorm.DB
	categoryRepository *CategoryRepository
}

func NewCategoryService(db *gorm.DB, categoryRepository *CategoryRepository) *CategoryService {
	return &CategoryService{db: db, categoryRepository: categoryRepository}
}

func (s *CategoryService) Create(ctx context.Context, request *CreateRequest) (*Response, error) {
	category := model.NewCategory(strings.TrimSpace(request.Name))
	if err := s.categoryRepository.Create(ctx, s.db, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	logger.FromContext(ctx).Info("category created", "category_id", category.ID)
	resp := toResponse(category)
	return &resp, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint32) (*Response, error) {
	category, err := s.categoryRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category id=%d: %w", id, ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	resp := toResponse(category)
	return &resp, nil
}

func (s *CategoryService) List(ctx context.Context) ([]Response, error) {
	categories, err := s.categoryRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	responses := make([]Response, 0, len(categories))
	for i := range categories {
		responses = append(responses, toResponse(&categories[i]))
	}
	return responses, nil
}
