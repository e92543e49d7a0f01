package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/spotbnb/internal/models"
)

// BookingRepository reads and writes bookings. Calls join the transaction
// carried by ctx when there is one.
type BookingRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookingRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookingRepository {
	return &BookingRepository{db: db, txGetter: txGetter}
}

const bookingColumns = `b.id, b.spot_id, b.user_id, b.start_date, b.end_date, b.created_at, b.updated_at`

type bookingUserRow struct {
	models.Booking
	GuestID        int64  `db:"guest_id"`
	GuestFirstName string `db:"guest_first_name"`
	GuestLastName  string `db:"guest_last_name"`
}

// ListBySpot returns every booking of the spot together with the guest.
func (r *BookingRepository) ListBySpot(ctx context.Context, spotID int64) ([]models.BookingDetail, error) {
	const query = `
		SELECT ` + bookingColumns + `,
		       u.id AS guest_id, u.first_name AS guest_first_name, u.last_name AS guest_last_name
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.spot_id = $1
		ORDER BY b.start_date
	`

	var rows []bookingUserRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, spotID)

	logQuery(ctx, query, []any{spotID}, len(rows), err)

	if err != nil {
		return nil, err
	}

	bookings := make([]models.BookingDetail, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, models.BookingDetail{
			User: &models.UserSummary{
				ID:        row.GuestID,
				FirstName: row.GuestFirstName,
				LastName:  row.GuestLastName,
			},
			Booking: row.Booking,
		})
	}
	return bookings, nil
}

// ListPublicBySpot returns only the reserved date ranges of the spot.
func (r *BookingRepository) ListPublicBySpot(ctx context.Context, spotID int64) ([]models.BookingPublic, error) {
	const query = `
		SELECT spot_id, start_date, end_date
		FROM bookings
		WHERE spot_id = $1
		ORDER BY start_date
	`

	bookings := []models.BookingPublic{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &bookings, query, spotID)

	logQuery(ctx, query, []any{spotID}, len(bookings), err)

	if err != nil {
		return nil, err
	}
	return bookings, nil
}

type bookingSpotRow struct {
	models.Booking
	SpotOwnerID int64   `db:"spot_owner_id"`
	SpotAddress string  `db:"spot_address"`
	SpotCity    string  `db:"spot_city"`
	SpotState   string  `db:"spot_state"`
	SpotCountry string  `db:"spot_country"`
	SpotLat     float64 `db:"spot_lat"`
	SpotLng     float64 `db:"spot_lng"`
	SpotName    string  `db:"spot_name"`
	SpotPrice   float64 `db:"spot_price"`
	SpotPreview *string `db:"spot_preview_image"`
}

// ListByUser returns the bookings made by the user with the booked spots.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.BookingWithSpot, error) {
	const query = `
		SELECT ` + bookingColumns + `,
		       s.owner_id AS spot_owner_id, s.address AS spot_address, s.city AS spot_city,
		       s.state AS spot_state, s.country AS spot_country, s.lat AS spot_lat, s.lng AS spot_lng,
		       s.name AS spot_name, s.price AS spot_price,
		       (SELECT si.url FROM spot_images si
		         WHERE si.spot_id = s.id AND si.preview
		         ORDER BY si.id LIMIT 1) AS spot_preview_image
		FROM bookings b
		JOIN spots s ON s.id = b.spot_id
		WHERE b.user_id = $1
		ORDER BY b.start_date
	`

	var rows []bookingSpotRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, userID)

	logQuery(ctx, query, []any{userID}, len(rows), err)

	if err != nil {
		return nil, err
	}

	bookings := make([]models.BookingWithSpot, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, models.BookingWithSpot{
			Booking: row.Booking,
			Spot: &models.SpotPreview{
				ID:           row.SpotID,
				OwnerID:      row.SpotOwnerID,
				Address:      row.SpotAddress,
				City:         row.SpotCity,
				State:        row.SpotState,
				Country:      row.SpotCountry,
				Lat:          row.SpotLat,
				Lng:          row.SpotLng,
				Name:         row.SpotName,
				Price:        row.SpotPrice,
				PreviewImage: row.SpotPreview,
			},
		})
	}
	return bookings, nil
}

// ListOverlapping returns the bookings of the spot sharing at least one night
// with [start, end), ignoring the booking with excludeID.
func (r *BookingRepository) ListOverlapping(ctx context.Context, spotID int64, start, end models.Date, excludeID int64) ([]models.Booking, error) {
	const query = `
		SELECT b.id, b.spot_id, b.user_id, b.start_date, b.end_date, b.created_at, b.updated_at
		FROM bookings b
		WHERE b.spot_id = $1
		  AND b.start_date < $3
		  AND b.end_date > $2
		  AND b.id <> $4
		ORDER BY b.start_date
	`
	args := []any{spotID, start, end, excludeID}

	bookings := []models.Booking{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &bookings, query, args...)

	logQuery(ctx, query, args, len(bookings), err)

	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetByID returns the booking, or nil, nil if absent.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	const query = `
		SELECT b.id, b.spot_id, b.user_id, b.start_date, b.end_date, b.created_at, b.updated_at
		FROM bookings b
		WHERE b.id = $1
	`

	var booking models.Booking
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &booking, query, id)

	logQuery(ctx, query, []any{id}, booking.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create inserts the booking. An overlapping insert that slipped past the
// caller's check fails with models.ErrOverlap.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	const query = `
		INSERT INTO bookings (spot_id, user_id, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{booking.SpotID, booking.UserID, booking.StartDate, booking.EndDate}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	logQuery(ctx, query, args, booking.ID, err)

	return translateError(err)
}

func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	const query = `
		UPDATE bookings
		SET start_date = $2, end_date = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{booking.ID, booking.StartDate, booking.EndDate}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&booking.UpdatedAt)

	logQuery(ctx, query, args, booking.UpdatedAt, err)

	return translateError(err)
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM bookings WHERE id = $1`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)

	logQuery(ctx, query, []any{id}, nil, err)

	return err
}
