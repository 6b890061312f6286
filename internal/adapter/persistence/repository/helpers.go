package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// withTx returns a context carrying an open transaction handle. Repositories
// created against the base *gorm.DB pick it up via dbFromContext, so calls
// made inside TxManager.RunInTx all ride the same transaction.
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
