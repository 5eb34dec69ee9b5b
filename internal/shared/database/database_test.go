package database_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ecomshop/shop-api/internal/config"
	"github.com/ecomshop/shop-api/internal/model"
	"github.com/ecomshop/shop-api/internal/shared/database"
	"github.com/ecomshop/shop-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSQLiteDB(t *testing.T) (*database.DB, *config.Config) {
	t.Helper()

	cfg := testutil.NewTestConfig()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "shop.db")

	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, cfg
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	// Given: a fresh sqlite database
	db, cfg := newSQLiteDB(t)

	// When: migrating
	require.NoError(t, database.Migrate(db.DB, cfg))

	// Then: every model has a table
	for _, m := range database.Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestMigrate_DisabledIsNoop(t *testing.T) {
	db, cfg := newSQLiteDB(t)
	cfg.Database.IsAutoMigrate = false

	require.NoError(t, database.Migrate(db.DB, cfg))
	assert.False(t, db.Migrator().HasTable(&model.Order{}))
}

func TestMigrate_RefusesProduction(t *testing.T) {
	db, cfg := newSQLiteDB(t)
	cfg.App.Env = "prod"

	assert.Error(t, database.Migrate(db.DB, cfg))
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })
	errAbort := errors.New("abort")

	// When: the callback writes and then fails
	err := database.WithTransaction(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(model.NewCategory("Books")).Error; err != nil {
			return err
		}
		return errAbort
	})

	// Then: nothing is committed
	assert.ErrorIs(t, err, errAbort)
	var count int64
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWithTransaction_NilFunc(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	assert.Error(t, database.WithTransaction(context.Background(), db, nil))
}

func TestAutoMigrate_KeepsData(t *testing.T) {
	// Given: a migrated database with one member
	db, cfg := newSQLiteDB(t)
	require.NoError(t, database.Migrate(db.DB, cfg))
	require.NoError(t, db.Create(model.NewMember("Martin", "Claire", "claire@example.com", "hash")).Error)

	// When: running the additive migration
	require.NoError(t, database.AutoMigrate(db.DB))

	// Then: rows survive
	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWithTransaction_CancelledContext(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint32{3, 1, 2}, database.UniqueIDs([]uint32{3, 1, 3, 2, 1}))
	assert.Empty(t, database.UniqueIDs(nil))
}

func TestChunkIDs(t *testing.T) {
	ids := []uint32{1, 2, 3, 4, 5}

	assert.Equal(t, [][]uint32{{1, 2}, {3, 4}, {5}}, database.ChunkIDs(ids, 2))
	assert.Equal(t, [][]uint32{{1, 2, 3, 4, 5}}, database.ChunkIDs(ids, 0))
	assert.Empty(t, database.ChunkIDs(nil, 2))
}

func TestFindIn_SplitsLongLists(t *testing.T) {
	// Given: more categories than one IN list may hold
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	total := database.MaxInListSize + 250
	categories := make([]model.Category, 0, total)
	ids := make([]uint32, 0, 2*total)
	for i := 1; i <= total; i++ {
		categories = append(categories, model.Category{ID: uint32(i), Name: "c"})
		ids = append(ids, uint32(i), uint32(i))
	}
	require.NoError(t, db.CreateInBatches(&categories, 500).Error)
	ids = append(ids, 999999)

	// When
	found, err := database.FindIn[model.Category](context.Background(), db, "id", ids, "id")

	// Then: every row once, unknown ids ignored
	require.NoError(t, err)
	require.Len(t, found, total)
	assert.Equal(t, uint32(1), found[0].ID)
	assert.Equal(t, uint32(total), found[total-1].ID)
}
