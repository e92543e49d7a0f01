package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/spotbnb/internal/logger"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=booking.go -destination=mock_booking.go -package=services

// BookingStore persists bookings.
type BookingStore interface {
	ListBySpot(ctx context.Context, spotID int64) ([]models.BookingDetail, error)
	ListPublicBySpot(ctx context.Context, spotID int64) ([]models.BookingPublic, error)
	ListByUser(ctx context.Context, userID int64) ([]models.BookingWithSpot, error)
	ListOverlapping(ctx context.Context, spotID int64, start, end models.Date, excludeID int64) ([]models.Booking, error)
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id int64) error
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BookingOption configures a BookingService.
type BookingOption func(*BookingService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) BookingOption {
	return func(svc *BookingService) {
		svc.now = now
	}
}

// BookingService handles reservations and keeps them free of overlaps.
type BookingService struct {
	spots       SpotGetter
	bookings    BookingStore
	tx          Transactor
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewBookingService creates a BookingService. kafkaWriter may be nil, in which
// case booking events are not published.
func NewBookingService(
	spots SpotGetter,
	bookings BookingStore,
	tx Transactor,
	kafkaWriter KafkaWriter,
	opts ...BookingOption,
) *BookingService {
	svc := &BookingService{
		spots:       spots,
		bookings:    bookings,
		tx:          tx,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (svc *BookingService) today() models.Date {
	return models.DateOf(svc.now().UTC())
}

// ListBookingsForSpot returns the full bookings to the spot owner and only
// the reserved dates to everybody else.
func (svc *BookingService) ListBookingsForSpot(ctx context.Context, spotID, requesterID int64) (models.SpotBookings, error) {
	spot, err := svc.spot(ctx, spotID)
	if err != nil {
		return models.SpotBookings{}, err
	}

	if spot.OwnerID == requesterID {
		full, err := svc.bookings.ListBySpot(ctx, spotID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to list spot bookings", "spot_id", spotID, "error", err)
			return models.SpotBookings{}, err
		}
		return models.SpotBookings{Owner: true, Full: full}, nil
	}

	public, err := svc.bookings.ListPublicBySpot(ctx, spotID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list spot bookings", "spot_id", spotID, "error", err)
		return models.SpotBookings{}, err
	}
	return models.SpotBookings{Public: public}, nil
}

// ListBookingsForUser returns the bookings made by userID.
func (svc *BookingService) ListBookingsForUser(ctx context.Context, userID int64) ([]models.BookingWithSpot, error) {
	bookings, err := svc.bookings.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list user bookings", "user_id", userID, "error", err)
		return nil, err
	}
	return bookings, nil
}

// GetBooking returns a booking to its booker or to the owner of the booked spot.
func (svc *BookingService) GetBooking(ctx context.Context, id, userID int64) (*models.Booking, error) {
	booking, err := svc.booking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID == userID {
		return booking, nil
	}

	spot, err := svc.spot(ctx, booking.SpotID)
	if err != nil {
		return nil, err
	}
	if spot.OwnerID != userID {
		return nil, ErrForbidden
	}
	return booking, nil
}

// CreateBooking reserves [start, end) of the spot for userID.
func (svc *BookingService) CreateBooking(ctx context.Context, spotID, userID int64, in models.BookingInput) (*models.Booking, error) {
	spot, err := svc.spot(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if spot.OwnerID == userID {
		return nil, ErrForbidden
	}

	if fields := svc.validateRange(in.StartDate, in.EndDate, true); fields != nil {
		return nil, NewValidationError(fields)
	}

	booking := &models.Booking{
		SpotID:    spotID,
		UserID:    userID,
		StartDate: *in.StartDate,
		EndDate:   *in.EndDate,
	}

	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.checkConflicts(ctx, booking); err != nil {
			return err
		}
		return svc.bookings.Create(ctx, booking)
	})
	if err != nil {
		return nil, svc.writeError(ctx, booking, err)
	}

	svc.publish(ctx, models.BookingCreated, booking)
	return booking, nil
}

// UpdateBooking moves a booking of userID to new dates. Unset dates keep
// their stored value.
func (svc *BookingService) UpdateBooking(ctx context.Context, id, userID int64, in models.BookingInput) (*models.Booking, error) {
	booking, err := svc.booking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	if booking.EndDate.Before(svc.today()) {
		return nil, ErrBookingPast
	}

	start, end := booking.StartDate, booking.EndDate
	if in.StartDate != nil {
		start = *in.StartDate
	}
	if in.EndDate != nil {
		end = *in.EndDate
	}
	if fields := svc.validateRange(&start, &end, in.StartDate != nil); fields != nil {
		return nil, NewValidationError(fields)
	}

	updated := *booking
	updated.StartDate, updated.EndDate = start, end

	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := svc.checkConflicts(ctx, &updated); err != nil {
			return err
		}
		return svc.bookings.Update(ctx, &updated)
	})
	if err != nil {
		return nil, svc.writeError(ctx, &updated, err)
	}

	svc.publish(ctx, models.BookingUpdated, &updated)
	return &updated, nil
}

// DeleteBooking cancels a booking that has not started yet. The booker and
// the spot owner may cancel.
func (svc *BookingService) DeleteBooking(ctx context.Context, id, userID int64) error {
	booking, err := svc.booking(ctx, id)
	if err != nil {
		return err
	}

	if booking.UserID != userID {
		spot, err := svc.spot(ctx, booking.SpotID)
		if err != nil {
			return err
		}
		if spot.OwnerID != userID {
			return ErrForbidden
		}
	}

	if !booking.StartDate.After(svc.today()) {
		return ErrBookingStarted
	}

	if err := svc.bookings.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete booking", "booking_id", id, "error", err)
		return err
	}

	svc.publish(ctx, models.BookingDeleted, booking)
	return nil
}

// validateRange checks that both dates are present and ordered. A start
// before today is rejected when checkPast is set.
func (svc *BookingService) validateRange(start, end *models.Date, checkPast bool) map[string]string {
	fields := map[string]string{}
	if start == nil || start.IsZero() {
		fields["startDate"] = "Start date is required"
	}
	if end == nil || end.IsZero() {
		fields["endDate"] = "End date is required"
	}
	if len(fields) > 0 {
		return fields
	}

	if checkPast && start.Before(svc.today()) {
		fields["startDate"] = "startDate cannot be in the past"
	}
	if !end.After(*start) {
		fields["endDate"] = "endDate cannot be on or before startDate"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// checkConflicts fails with a booking conflict when another booking of the
// spot shares a night with b.
func (svc *BookingService) checkConflicts(ctx context.Context, b *models.Booking) error {
	existing, err := svc.bookings.ListOverlapping(ctx, b.SpotID, b.StartDate, b.EndDate, b.ID)
	if err != nil {
		return err
	}
	if fields := DetectConflicts(existing, b.StartDate, b.EndDate); fields != nil {
		return newBookingConflict(fields)
	}
	return nil
}

// DetectConflicts reports which boundary of [start, end) collides with the
// given bookings. A start or end falling within an existing booking, ends
// included, flags that boundary. A range surrounding an existing booking
// flags both. Returns nil when nothing overlaps.
func DetectConflicts(existing []models.Booking, start, end models.Date) map[string]string {
	fields := map[string]string{}
	for _, b := range existing {
		if !b.Overlaps(start, end) {
			continue
		}
		startHit := start.Within(b.StartDate, b.EndDate)
		endHit := end.Within(b.StartDate, b.EndDate)
		if startHit || !endHit {
			fields["startDate"] = msgStartConflict
		}
		if endHit || !startHit {
			fields["endDate"] = msgEndConflict
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// writeError turns a failed booking write into the error reported to the client.
func (svc *BookingService) writeError(ctx context.Context, b *models.Booking, err error) error {
	var serr *Error
	if errors.As(err, &serr) {
		return serr
	}
	if errors.Is(err, models.ErrOverlap) || errors.Is(err, models.ErrSerialization) {
		logger.FromContext(ctx).Infow("concurrent booking rejected", "spot_id", b.SpotID, "error", err)
		return newBookingConflict(map[string]string{
			"startDate": msgStartConflict,
			"endDate":   msgEndConflict,
		})
	}
	if errors.Is(err, models.ErrForeignKey) {
		return ErrSpotNotFound
	}
	logger.FromContext(ctx).Errorw("failed to save booking", "spot_id", b.SpotID, "error", err)
	return err
}

// publish sends a booking event to Kafka. Failures are logged, not returned.
func (svc *BookingService) publish(ctx context.Context, eventType string, b *models.Booking) {
	event := models.BookingEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		BookingID: b.ID,
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.StartDate.String(),
		EndDate:   b.EndDate.String(),
		Timestamp: svc.now().Unix(),
	}

	if svc.kafkaWriter == nil {
		logger.FromContext(ctx).Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to marshal booking event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(b.SpotID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("failed to publish booking event", "event_id", event.EventID, "error", err)
		return
	}
	logger.FromContext(ctx).Infow("booking event published", "event_id", event.EventID, "type", eventType, "booking_id", b.ID)
}

func (svc *BookingService) spot(ctx context.Context, id int64) (*models.Spot, error) {
	spot, err := svc.spots.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get spot", "spot_id", id, "error", err)
		return nil, err
	}
	if spot == nil {
		return nil, ErrSpotNotFound
	}
	return spot, nil
}

func (svc *BookingService) booking(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := svc.bookings.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get booking", "booking_id", id, "error", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}
