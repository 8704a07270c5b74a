package database

import (
	"context"
	"errors"

	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"
	"gorm.io/gorm"
)

var errNilTransactionFunc = errors.New("database: transaction function is nil")

// WithTransaction runs fn in one transaction bound to ctx.
// fn returning an error rolls everything back, including conditional
// updates already applied through tx.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    claimed, err := catalogRepo.Claim(ctx, tx, ref)
//	    if err != nil || !claimed {
//	        return ErrItemUnavailable // rollback
//	    }
//	    return loanRepo.Insert(ctx, tx, loan) // commit on nil
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return errNilTransactionFunc
	}

	if ctx == nil {
		ctx = context.Background()
	}

	err := db.WithContext(ctx).Transaction(fn)
	if err != nil {
		logger.FromContext(ctx).Debug("transaction rolled back", "error", err)
	}
	return err
}
