package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/spotbnb/internal/logger"
)

// Transactor runs a unit of work inside a single transaction,
// SERIALIZABLE unless configured otherwise.
type Transactor struct {
	db        *sqlx.DB
	isolation sql.IsolationLevel
}

// TransactorOption configures a Transactor.
type TransactorOption func(*Transactor)

// WithIsolation sets the isolation level of every transaction.
func WithIsolation(level sql.IsolationLevel) TransactorOption {
	return func(t *Transactor) {
		t.isolation = level
	}
}

func NewTransactor(db *sqlx.DB, opts ...TransactorOption) *Transactor {
	t := &Transactor{db: db, isolation: sql.LevelSerializable}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithinTx begins a transaction, binds it to the context passed to fn and
// commits when fn succeeds. Any error or panic from fn rolls back.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: t.isolation})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.FromContext(ctx).Errorw("failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.FromContext(ctx).Errorw("failed to commit transaction", "error", err)
		return translateError(err)
	}
	return nil
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
