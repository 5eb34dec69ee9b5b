package seeder_test

import (
	"context"
	"testing"

	"github.com/ecomshop/shop-api/internal/category"
	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/product"
	"github.com/ecomshop/shop-api/internal/seeder"
	"github.com/ecomshop/shop-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	s := seeder.New(db, category.NewCategoryRepository(), product.NewProductRepository())

	// When
	seeded, err := s.Catalogue(context.Background())

	// Then
	require.NoError(t, err)
	assert.True(t, seeded)

	var categories, products int64
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&model.Product{}).Count(&products).Error)
	assert.Equal(t, int64(4), categories)
	assert.Equal(t, int64(5), products)

	var laptop model.Product
	require.NoError(t, db.Where("name = ?", "Gaming Laptop").First(&laptop).Error)
	assert.InDelta(t, 1299.99, laptop.Price, 0.001)
	require.NotNil(t, laptop.CategoryID)

	var electronics model.Category
	require.NoError(t, db.Where("id = ?", *laptop.CategoryID).First(&electronics).Error)
	assert.Equal(t, "Electronics", electronics.Name)

	// When: seeding again
	seeded, err = s.Catalogue(context.Background())

	// Then: nothing is duplicated
	require.NoError(t, err)
	assert.False(t, seeded)
	require.NoError(t, db.Model(&model.Product{}).Count(&products).Error)
	assert.Equal(t, int64(5), products)
}
