package product

import (
	"context"

	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"gorm.io/gorm"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, db *gorm.DB, product *model.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

// FindByID returns gorm.ErrRecordNotFound when absent
func (r *ProductRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Product, error) {
	var product model.Product
	if err := db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs loads the distinct products among ids, keyed by id.
// Unknown ids are simply absent from the map.
func (r *ProductRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uint32) (map[uint32]model.Product, error) {
	found := make(map[uint32]model.Product, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	products, err := database.FindIn[model.Product](ctx, db, "id", ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		found[p.ID] = p
	}
	return found, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Product, error) {
	var products []model.Product
	if err := db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DecrementStock removes one unit if the product still has stock.
// The condition is evaluated by the database, so concurrent decrements
// cannot drive stock below zero. Returns false when nothing was updated.
func (r *ProductRepository) DecrementStock(ctx context.Context, db *gorm.DB, id uint32) (bool, error) {
	result := db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND stock > 0", id).
		Update("stock", gorm.Expr("stock - ?", 1))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
