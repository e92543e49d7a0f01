package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/spotbnb/internal/middlewares"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
)

//go:generate mockgen -source=bookings.go -destination=mock_bookings.go -package=handlers

// BookingManager defines the booking operations.
type BookingManager interface {
	ListBookingsForSpot(ctx context.Context, spotID, requesterID int64) (models.SpotBookings, error)
	ListBookingsForUser(ctx context.Context, userID int64) ([]models.BookingWithSpot, error)
	GetBooking(ctx context.Context, id, userID int64) (*models.Booking, error)
	CreateBooking(ctx context.Context, spotID, userID int64, in models.BookingInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id, userID int64, in models.BookingInput) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id, userID int64) error
}

// BookingListResponse wraps the caller's bookings.
// swagger:model BookingListResponse
type BookingListResponse struct {
	Bookings []models.BookingWithSpot `json:"Bookings"`
}

// NewSpotBookingsHandler returns an HTTP handler that lists the bookings of a spot.
// @Summary List spot bookings
// @Description The spot owner sees guests and full booking rows, everyone else only dates
// @Tags bookings
// @Produce json
// @Param id path int true "Spot ID"
// @Success 200 {object} models.SpotBookings
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Router /spots/{id}/bookings [get]
// @Security BearerAuth
func NewSpotBookingsHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spotID, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		bookings, err := svc.ListBookingsForSpot(r.Context(), spotID, middlewares.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, bookings)
	}
}

// NewCurrentBookingsHandler returns an HTTP handler that lists the caller's bookings.
// @Summary List current user's bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} handlers.BookingListResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /bookings/current [get]
// @Security BearerAuth
func NewCurrentBookingsHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := svc.ListBookingsForUser(r.Context(), middlewares.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, BookingListResponse{Bookings: bookings})
	}
}

// NewGetBookingHandler returns an HTTP handler that shows one booking.
// @Summary Get booking
// @Description Visible to the guest and to the spot owner
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Booking couldn't be found"
// @Router /bookings/{id} [get]
// @Security BearerAuth
func NewGetBookingHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrBookingNotFound)
		if !ok {
			return
		}

		booking, err := svc.GetBooking(r.Context(), id, middlewares.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, booking)
	}
}

// NewCreateBookingHandler returns an HTTP handler that books a spot.
// @Summary Create booking
// @Description Dates are YYYY-MM-DD. Owners cannot book their own spot.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Spot ID"
// @Param request body models.BookingInput true "Booking dates"
// @Success 201 {object} models.Booking
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Failure 403 {object} handlers.ErrorResponse "Sorry, this spot is already booked for the specified dates"
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Router /spots/{id}/bookings [post]
// @Security BearerAuth
func NewCreateBookingHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spotID, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		var req models.BookingInput
		if !decodeJSON(w, r, &req) {
			return
		}

		booking, err := svc.CreateBooking(r.Context(), spotID, middlewares.UserIDFromContext(r.Context()), req)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, booking)
	}
}

// NewUpdateBookingHandler returns an HTTP handler that changes booking dates.
// @Summary Update booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body models.BookingInput true "Booking dates"
// @Success 200 {object} models.Booking
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Failure 403 {object} handlers.ErrorResponse "Past bookings can't be modified"
// @Failure 404 {object} handlers.ErrorResponse "Booking couldn't be found"
// @Router /bookings/{id} [put]
// @Security BearerAuth
func NewUpdateBookingHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrBookingNotFound)
		if !ok {
			return
		}

		var req models.BookingInput
		if !decodeJSON(w, r, &req) {
			return
		}

		booking, err := svc.UpdateBooking(r.Context(), id, middlewares.UserIDFromContext(r.Context()), req)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, booking)
	}
}

// NewDeleteBookingHandler returns an HTTP handler that cancels a booking.
// @Summary Delete booking
// @Description The guest or the spot owner may cancel a booking that has not started
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Bookings that have been started can't be deleted"
// @Failure 404 {object} handlers.ErrorResponse "Booking couldn't be found"
// @Router /bookings/{id} [delete]
// @Security BearerAuth
func NewDeleteBookingHandler(svc BookingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrBookingNotFound)
		if !ok {
			return
		}

		if err := svc.DeleteBooking(r.Context(), id, middlewares.UserIDFromContext(r.Context())); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleted)
	}
}
