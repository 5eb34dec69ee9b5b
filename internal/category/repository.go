package category

import (
	"context"

	"github.com/ecomshop/shop-api/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(ctx context.Context, db *gorm.DB, category *model.Category) error {
	return db.WithContext(ctx).Create(category).Error
}

// FindByID returns gorm.ErrRecordNotFound when absent
func (r *CategoryRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Category, error) {
	var category model.Category
	if err := db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Category, error) {
	var categories []model.Category
	if err := db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error
	return count, err
}
