package database

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tx.go -destination=../mocks/database_mocks.go -package=mocks

// Transactor runs a function inside one database transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// TxManager is the gorm-backed Transactor. A non-nil error from fn rolls back
// every statement issued through tx; the error is returned unchanged.
type TxManager struct {
	db *gorm.DB
}

var _ Transactor = (*TxManager)(nil)

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// WithTransaction begins a transaction, runs fn and commits on success
func (m *TxManager) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
