package seeder

import (
	"context"
	"fmt"

	"github.com/ecomshop/shop-api/internal/category"
	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/product"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"github.com/ecomshop/shop-api/internal/shared/logger"
	"gorm.io/gorm"
)

// initialStock is given to every seeded product
const initialStock = 10

type seedProduct struct {
	name        string
	description string
	price       float64
	image       string
	category    string
}

var seedCategories = []string{"Electronics", "Clothing", "Home & Kitchen", "Books"}

var seedProducts = []seedProduct{
	{
		name:        "Gaming Laptop",
		description: "High-performance gaming laptop with RTX 4080 graphics",
		price:       1299.99,
		image:       "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=400&h=400&fit=crop",
		category:    "Electronics",
	},
	{
		name:        "Smartphone X",
		description: "Latest smartphone with 108MP camera and 5G connectivity",
		price:       899.99,
		image:       "https://images.unsplash.com/photo-1595941069915-4ebc5197c14a?w=400&h=400&fit=crop",
		category:    "Electronics",
	},
	{
		name:        "Premium Cotton T-Shirt",
		description: "Comfortable cotton t-shirt for everyday wear",
		price:       29.99,
		image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
		category:    "Clothing",
	},
	{
		name:        "Coffee Maker Pro",
		description: "Automatic coffee maker with programmable settings",
		price:       149.99,
		image:       "https://images.unsplash.com/photo-1571509020228-5f1f3c8eccd0?w=400&h=400&fit=crop",
		category:    "Home & Kitchen",
	},
	{
		name:        "Programming Guide",
		description: "Complete guide to modern web development",
		price:       39.99,
		image:       "https://images.unsplash.com/photo-1532016723172-17c35d84dc5e?w=400&h=400&fit=crop",
		category:    "Books",
	},
}

// Seeder fills an empty catalogue with sample categories and products.
type Seeder struct {
	db                 *gorm.DB
	categoryRepository *category.CategoryRepository
	productRepository  *product.ProductRepository
}

func New(db *gorm.DB, categoryRepository *category.CategoryRepository, productRepository *product.ProductRepository) *Seeder {
	return &Seeder{
		db:                 db,
		categoryRepository: categoryRepository,
		productRepository:  productRepository,
	}
}

// Catalogue seeds only when no category exists yet. It reports whether
// anything was written.
func (s *Seeder) Catalogue(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	seeded := false
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		count, err := s.categoryRepository.Count(ctx, tx)
		if err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		if count > 0 {
			return nil
		}

		categoryIDs := make(map[string]uint32, len(seedCategories))
		for _, name := range seedCategories {
			c := model.NewCategory(name)
			if err := s.categoryRepository.Create(ctx, tx, c); err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
			categoryIDs[name] = c.ID
		}

		for _, sp := range seedProducts {
			categoryID := categoryIDs[sp.category]
			p := model.NewProduct(sp.name, sp.description, sp.price, initialStock, sp.image, &categoryID)
			if err := s.productRepository.Create(ctx, tx, p); err != nil {
				return fmt.Errorf("seed product %q: %w", sp.name, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		log.Info("catalogue seeded", "categories", len(seedCategories), "products", len(seedProducts))
	} else {
		log.Info("catalogue already present; seeding skipped")
	}
	return seeded, nil
}
