package models

// Booking event types published to the booking topic.
const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

// BookingEvent describes a change to a booking.
type BookingEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Type      string `json:"type"`       // Type is one of booking.created, booking.updated, booking.deleted.
	BookingID int64  `json:"booking_id"` // BookingID is the affected booking.
	SpotID    int64  `json:"spot_id"`    // SpotID is the booked spot.
	UserID    int64  `json:"user_id"`    // UserID is the booker.
	StartDate string `json:"start_date"` // StartDate is the first night, YYYY-MM-DD.
	EndDate   string `json:"end_date"`   // EndDate is the checkout day, YYYY-MM-DD.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix time (seconds) of the change.
}
