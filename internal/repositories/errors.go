package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/spotbnb/internal/logger"
	"github.com/sbilibin2017/spotbnb/internal/models"
)

// Postgres SQLSTATE codes translated into storage errors.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
)

// translateError maps Postgres constraint failures to models errors and
// leaves everything else untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return &models.ConstraintError{Constraint: pgErr.ConstraintName, Err: models.ErrDuplicate}
	case pgExclusionViolation:
		return &models.ConstraintError{Constraint: pgErr.ConstraintName, Err: models.ErrOverlap}
	case pgForeignKeyViolation:
		return &models.ConstraintError{Constraint: pgErr.ConstraintName, Err: models.ErrForeignKey}
	case pgSerializationFailure:
		return models.ErrSerialization
	}
	return err
}

// logQuery logs a query on a single line together with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// executor returns the transaction bound to ctx, or db when there is none.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
