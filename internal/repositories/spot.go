package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/spotbnb/internal/models"
)

// SpotRepository reads and writes spots and their aggregates.
type SpotRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSpotRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SpotRepository {
	return &SpotRepository{db: db, txGetter: txGetter}
}

// List returns spots matching the filter with their average rating and preview image.
func (r *SpotRepository) List(ctx context.Context, filter models.SpotFilter) ([]models.SpotSummary, error) {
	const query = `
		SELECT s.id, s.owner_id, s.address, s.city, s.state, s.country, s.lat, s.lng,
		       s.name, s.description, s.price, s.created_at, s.updated_at,
		       (SELECT AVG(r.stars)::float8 FROM reviews r WHERE r.spot_id = s.id) AS avg_rating,
		       (SELECT si.url FROM spot_images si
		         WHERE si.spot_id = s.id AND si.preview
		         ORDER BY si.id LIMIT 1) AS preview_image
		FROM spots s
		WHERE ($1::BIGINT IS NULL OR s.owner_id = $1)
		  AND ($2::FLOAT8 IS NULL OR s.lat >= $2)
		  AND ($3::FLOAT8 IS NULL OR s.lat <= $3)
		  AND ($4::FLOAT8 IS NULL OR s.lng >= $4)
		  AND ($5::FLOAT8 IS NULL OR s.lng <= $5)
		  AND ($6::NUMERIC IS NULL OR s.price >= $6)
		  AND ($7::NUMERIC IS NULL OR s.price <= $7)
		ORDER BY s.id
		LIMIT $8 OFFSET $9
	`
	args := []any{
		filter.OwnerID,
		filter.MinLat, filter.MaxLat,
		filter.MinLng, filter.MaxLng,
		filter.MinPrice, filter.MaxPrice,
		filter.Limit(), filter.Offset(),
	}

	spots := []models.SpotSummary{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &spots, query, args...)

	logQuery(ctx, query, args, len(spots), err)

	if err != nil {
		return nil, err
	}
	return spots, nil
}

// GetByID returns the bare spot row, or nil, nil if absent.
func (r *SpotRepository) GetByID(ctx context.Context, id int64) (*models.Spot, error) {
	const query = `
		SELECT id, owner_id, address, city, state, country, lat, lng,
		       name, description, price, created_at, updated_at
		FROM spots
		WHERE id = $1
	`

	var spot models.Spot
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &spot, query, id)

	logQuery(ctx, query, []any{id}, spot.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

// GetDetail returns the spot with review count, average rating, images and owner,
// or nil, nil if absent.
func (r *SpotRepository) GetDetail(ctx context.Context, id int64) (*models.SpotDetail, error) {
	const spotQuery = `
		SELECT s.id, s.owner_id, s.address, s.city, s.state, s.country, s.lat, s.lng,
		       s.name, s.description, s.price, s.created_at, s.updated_at,
		       COUNT(r.id) AS num_reviews,
		       AVG(r.stars)::float8 AS avg_rating
		FROM spots s
		LEFT JOIN reviews r ON r.spot_id = s.id
		WHERE s.id = $1
		GROUP BY s.id
	`
	const imagesQuery = `
		SELECT id, spot_id, url, preview
		FROM spot_images
		WHERE spot_id = $1
		ORDER BY id
	`
	const ownerQuery = `
		SELECT id, first_name, last_name
		FROM users
		WHERE id = $1
	`

	ex := executor(ctx, r.db, r.txGetter)

	var detail models.SpotDetail
	err := sqlx.GetContext(ctx, ex, &detail, spotQuery, id)
	logQuery(ctx, spotQuery, []any{id}, detail.ID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	detail.SpotImages = []models.SpotImage{}
	err = sqlx.SelectContext(ctx, ex, &detail.SpotImages, imagesQuery, id)
	logQuery(ctx, imagesQuery, []any{id}, len(detail.SpotImages), err)
	if err != nil {
		return nil, err
	}

	var owner models.UserSummary
	err = sqlx.GetContext(ctx, ex, &owner, ownerQuery, detail.OwnerID)
	logQuery(ctx, ownerQuery, []any{detail.OwnerID}, owner.ID, err)
	if err != nil {
		return nil, err
	}
	detail.Owner = &owner

	return &detail, nil
}

// Create inserts the spot and fills in its id and timestamps.
func (r *SpotRepository) Create(ctx context.Context, spot *models.Spot) error {
	const query = `
		INSERT INTO spots (owner_id, address, city, state, country, lat, lng, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{
		spot.OwnerID, spot.Address, spot.City, spot.State, spot.Country,
		spot.Lat, spot.Lng, spot.Name, spot.Description, spot.Price,
	}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&spot.ID, &spot.CreatedAt, &spot.UpdatedAt)

	logQuery(ctx, query, args, spot.ID, err)

	return translateError(err)
}

// Update overwrites every mutable column of the spot.
func (r *SpotRepository) Update(ctx context.Context, spot *models.Spot) error {
	const query = `
		UPDATE spots
		SET address = $2, city = $3, state = $4, country = $5, lat = $6, lng = $7,
		    name = $8, description = $9, price = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{
		spot.ID, spot.Address, spot.City, spot.State, spot.Country,
		spot.Lat, spot.Lng, spot.Name, spot.Description, spot.Price,
	}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&spot.UpdatedAt)

	logQuery(ctx, query, args, spot.UpdatedAt, err)

	return translateError(err)
}

// Delete removes the spot. Images, reviews and bookings go with it (ON DELETE CASCADE).
func (r *SpotRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM spots WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id}, rowsAffected, err)

	return err
}
