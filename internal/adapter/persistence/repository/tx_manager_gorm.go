package repository

import (
	"context"

	"shop_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// TxManager implements ITransactionManager on GORM. Required for atomicity
// across the document header, child collections, tasks and the stock tables.
type TxManager struct {
	db *gorm.DB
}

var _ interfaces.ITransactionManager = (*TxManager)(nil)

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

func (tm *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
