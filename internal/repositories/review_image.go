package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/spotbnb/internal/models"
)

type ReviewImageRepository struct {
	db       *sqlx.DB
	tx       *Transactor
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReviewImageRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReviewImageRepository {
	return &ReviewImageRepository{
		db:       db,
		tx:       NewTransactor(db, WithIsolation(sql.LevelReadCommitted)),
		txGetter: txGetter,
	}
}

// SaveWithinLimit inserts the image only while the review has fewer than limit
// images. Returns models.ErrLimitReached when the review is already full.
// The review row stays locked until the surrounding transaction ends, so
// concurrent uploads to one review are counted one after another.
func (r *ReviewImageRepository) SaveWithinLimit(ctx context.Context, img *models.ReviewImage, limit int) error {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return r.saveWithinLimit(ctx, tx, img, limit)
		}
	}
	return r.tx.WithinTx(ctx, func(ctx context.Context) error {
		return r.saveWithinLimit(ctx, GetTxFromContext(ctx), img, limit)
	})
}

func (r *ReviewImageRepository) saveWithinLimit(ctx context.Context, tx *sqlx.Tx, img *models.ReviewImage, limit int) error {
	const lockQuery = `SELECT id FROM reviews WHERE id = $1 FOR UPDATE`
	const insertQuery = `
		INSERT INTO review_images (review_id, url, created_at, updated_at)
		SELECT $1, $2, NOW(), NOW()
		WHERE (SELECT COUNT(*) FROM review_images WHERE review_id = $1) < $3
		RETURNING id
	`

	var reviewID int64
	err := tx.QueryRowxContext(ctx, lockQuery, img.ReviewID).Scan(&reviewID)

	logQuery(ctx, lockQuery, []any{img.ReviewID}, reviewID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return &models.ConstraintError{Constraint: "review_images_review_id_fkey", Err: models.ErrForeignKey}
	}
	if err != nil {
		return err
	}

	args := []any{img.ReviewID, img.URL, limit}
	err = tx.QueryRowxContext(ctx, insertQuery, args...).Scan(&img.ID)

	logQuery(ctx, insertQuery, args, img.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrLimitReached
	}
	return translateError(err)
}

// GetByID returns the image, or nil, nil if absent.
func (r *ReviewImageRepository) GetByID(ctx context.Context, id int64) (*models.ReviewImage, error) {
	const query = `SELECT id, review_id, url FROM review_images WHERE id = $1`

	var img models.ReviewImage
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &img, query, id)

	logQuery(ctx, query, []any{id}, img.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ReviewImageRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM review_images WHERE id = $1`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)

	logQuery(ctx, query, []any{id}, nil, err)

	return err
}
