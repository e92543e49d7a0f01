package services

import (
	"errors"
)

// Kind classifies a service failure. Handlers map kinds to HTTP statuses.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindUnauthenticated
	KindValidation
	KindConflict
	KindBookingConflict
	KindLimitExceeded
)

// Error is a failure the API reports to its client.
type Error struct {
	Kind    Kind
	Message string
	Errors  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on kind and message so wrapped sentinels compare equal.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrSpotNotFound        = newError(KindNotFound, "Spot couldn't be found")
	ErrReviewNotFound      = newError(KindNotFound, "Review couldn't be found")
	ErrBookingNotFound     = newError(KindNotFound, "Booking couldn't be found")
	ErrSpotImageNotFound   = newError(KindNotFound, "Spot Image couldn't be found")
	ErrReviewImageNotFound = newError(KindNotFound, "Review Image couldn't be found")

	ErrForbidden      = newError(KindForbidden, "Forbidden")
	ErrBookingPast    = newError(KindForbidden, "Past bookings can't be modified")
	ErrBookingStarted = newError(KindForbidden, "Bookings that have been started can't be deleted")

	ErrUnauthenticated    = newError(KindUnauthenticated, "Authentication required")
	ErrInvalidCredentials = newError(KindUnauthenticated, "Invalid credentials")

	ErrReviewExists     = newError(KindConflict, "User already has a review for this spot")
	ErrReviewImageLimit = newError(KindLimitExceeded, "Maximum number of images for this resource was reached")
)

// Messages of validation and conflict errors.
const (
	msgBadRequest      = "Bad Request"
	msgUserExists      = "User already exists"
	msgSpotExists      = "Spot already exists"
	msgBookingConflict = "Sorry, this spot is already booked for the specified dates"
	msgStartConflict   = "Start date conflicts with an existing booking"
	msgEndConflict     = "End date conflicts with an existing booking"
)

// NewValidationError reports invalid input field by field.
func NewValidationError(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: msgBadRequest, Errors: fields}
}

func newBookingConflict(fields map[string]string) *Error {
	return &Error{Kind: KindBookingConflict, Message: msgBookingConflict, Errors: fields}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
