package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/spotbnb/internal/models"
)

type ReviewRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReviewRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReviewRepository {
	return &ReviewRepository{db: db, txGetter: txGetter}
}

// reviewRow is a review joined with its author and, optionally, its spot.
type reviewRow struct {
	models.Review
	AuthorID        int64           `db:"author_id"`
	AuthorFirstName string          `db:"author_first_name"`
	AuthorLastName  string          `db:"author_last_name"`
	SpotOwnerID     sql.NullInt64   `db:"spot_owner_id"`
	SpotAddress     sql.NullString  `db:"spot_address"`
	SpotCity        sql.NullString  `db:"spot_city"`
	SpotState       sql.NullString  `db:"spot_state"`
	SpotCountry     sql.NullString  `db:"spot_country"`
	SpotLat         sql.NullFloat64 `db:"spot_lat"`
	SpotLng         sql.NullFloat64 `db:"spot_lng"`
	SpotName        sql.NullString  `db:"spot_name"`
	SpotPrice       sql.NullFloat64 `db:"spot_price"`
	SpotPreview     sql.NullString  `db:"spot_preview_image"`
}

func (row reviewRow) detail(withSpot bool) models.ReviewDetail {
	d := models.ReviewDetail{
		Review: row.Review,
		User: &models.UserSummary{
			ID:        row.AuthorID,
			FirstName: row.AuthorFirstName,
			LastName:  row.AuthorLastName,
		},
		ReviewImages: []models.ReviewImage{},
	}
	if withSpot {
		d.Spot = &models.SpotPreview{
			ID:      row.SpotID,
			OwnerID: row.SpotOwnerID.Int64,
			Address: row.SpotAddress.String,
			City:    row.SpotCity.String,
			State:   row.SpotState.String,
			Country: row.SpotCountry.String,
			Lat:     row.SpotLat.Float64,
			Lng:     row.SpotLng.Float64,
			Name:    row.SpotName.String,
			Price:   row.SpotPrice.Float64,
		}
		if row.SpotPreview.Valid {
			url := row.SpotPreview.String
			d.Spot.PreviewImage = &url
		}
	}
	return d
}

const reviewDetailSelect = `
	SELECT r.id, r.user_id, r.spot_id, r.review, r.stars, r.created_at, r.updated_at,
	       u.id AS author_id, u.first_name AS author_first_name, u.last_name AS author_last_name,
	       s.owner_id AS spot_owner_id, s.address AS spot_address, s.city AS spot_city,
	       s.state AS spot_state, s.country AS spot_country, s.lat AS spot_lat, s.lng AS spot_lng,
	       s.name AS spot_name, s.price AS spot_price,
	       (SELECT si.url FROM spot_images si
	         WHERE si.spot_id = s.id AND si.preview
	         ORDER BY si.id LIMIT 1) AS spot_preview_image
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN spots s ON s.id = r.spot_id
`

// ListBySpot returns the reviews of a spot with authors and images.
func (r *ReviewRepository) ListBySpot(ctx context.Context, spotID int64) ([]models.ReviewDetail, error) {
	return r.listDetails(ctx, reviewDetailSelect+` WHERE r.spot_id = $1 ORDER BY r.id`, spotID, false)
}

// ListByUser returns the reviews written by a user with authors, spots and images.
func (r *ReviewRepository) ListByUser(ctx context.Context, userID int64) ([]models.ReviewDetail, error) {
	return r.listDetails(ctx, reviewDetailSelect+` WHERE r.user_id = $1 ORDER BY r.id`, userID, true)
}

func (r *ReviewRepository) listDetails(ctx context.Context, query string, id int64, withSpot bool) ([]models.ReviewDetail, error) {
	var rows []reviewRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, id)
	logQuery(ctx, query, []any{id}, len(rows), err)
	if err != nil {
		return nil, err
	}

	details := make([]models.ReviewDetail, 0, len(rows))
	if len(rows) == 0 {
		return details, nil
	}

	ids := make([]int64, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for i, row := range rows {
		details = append(details, row.detail(withSpot))
		ids = append(ids, row.ID)
		index[row.ID] = i
	}

	imagesQuery, args, err := sqlx.In(`SELECT id, review_id, url FROM review_images WHERE review_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	imagesQuery = r.db.Rebind(imagesQuery)

	var images []models.ReviewImage
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &images, imagesQuery, args...)
	logQuery(ctx, imagesQuery, args, len(images), err)
	if err != nil {
		return nil, err
	}

	for _, img := range images {
		if i, ok := index[img.ReviewID]; ok {
			details[i].ReviewImages = append(details[i].ReviewImages, img)
		}
	}
	return details, nil
}

// GetByID returns the review, or nil, nil if absent.
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	const query = `
		SELECT id, user_id, spot_id, review, stars, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review models.Review
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, id)

	logQuery(ctx, query, []any{id}, review.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Create inserts the review. A second review by the same user for the same spot
// yields a *models.ConstraintError wrapping models.ErrDuplicate.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	const query = `
		INSERT INTO reviews (spot_id, user_id, review, stars, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{review.SpotID, review.UserID, review.Review, review.Stars}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)

	logQuery(ctx, query, args, review.ID, err)

	return translateError(err)
}

func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	const query = `
		UPDATE reviews
		SET review = $2, stars = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{review.ID, review.Review, review.Stars}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&review.UpdatedAt)

	logQuery(ctx, query, args, review.UpdatedAt, err)

	return translateError(err)
}

// Delete removes the review and, by cascade, its images.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reviews WHERE id = $1`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)

	logQuery(ctx, query, []any{id}, nil, err)

	return err
}
