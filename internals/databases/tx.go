package database

import (
	"context"

	"gorm.io/gorm"
)

type ctxKeyTx struct{}

// WithTx stores an open transaction in ctx so nested service calls join it.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, ctxKeyTx{}, tx)
}

// HasTx reports whether ctx carries an open transaction.
func HasTx(ctx context.Context) bool {
	tx, ok := ctx.Value(ctxKeyTx{}).(*gorm.DB)
	return ok && tx != nil
}

// Conn returns the transaction carried by ctx, or db bound to ctx.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(ctxKeyTx{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// InTx runs fn inside a transaction. When ctx already carries one, fn joins
// it and the outermost caller decides commit or rollback.
func InTx(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(ctxKeyTx{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
