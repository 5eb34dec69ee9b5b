package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecomshop/shop-api/internal/shared/logger"
	"gorm.io/gorm"
)

// WithTransaction executes fn within a transaction while propagating context.
// The tx handed to fn already carries ctx, so repositories can use it directly.
// Returning an error from fn rolls back every write made through tx.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := repo.Create(ctx, tx, entity); err != nil {
//	        return err // rollback
//	    }
//	    return nil // commit
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	// a request that already timed out must not start writing
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("database: transaction not started: %w", err)
	}

	err := db.WithContext(ctx).Transaction(fn)
	if err != nil {
		logger.FromContext(ctx).Debug("transaction rolled back", "error", err)
	}
	return err
}
