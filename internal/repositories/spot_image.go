package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/spotbnb/internal/models"
)

type SpotImageRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSpotImageRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SpotImageRepository {
	return &SpotImageRepository{db: db, txGetter: txGetter}
}

func (r *SpotImageRepository) Create(ctx context.Context, img *models.SpotImage) error {
	const query = `
		INSERT INTO spot_images (spot_id, url, preview, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	args := []any{img.SpotID, img.URL, img.Preview}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&img.ID)

	logQuery(ctx, query, args, img.ID, err)

	return translateError(err)
}

// GetByID returns the image, or nil, nil if absent.
func (r *SpotImageRepository) GetByID(ctx context.Context, id int64) (*models.SpotImage, error) {
	const query = `SELECT id, spot_id, url, preview FROM spot_images WHERE id = $1`

	var img models.SpotImage
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

func (r *SpotImageRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM spot_images WHERE id = $1`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)

	logQuery(ctx, query, []any{id}, nil, err)

	return err
}
