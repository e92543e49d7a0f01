package models

import (
	"encoding/json"
	"time"
)

// Booking represents a row of the bookings table. The reserved interval
// is [StartDate, EndDate).
// swagger:model Booking
type Booking struct {
	ID        int64     `json:"id" db:"id"`
	SpotID    int64     `json:"spotId" db:"spot_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	StartDate Date      `json:"startDate" db:"start_date"`
	EndDate   Date      `json:"endDate" db:"end_date"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Overlaps reports whether b and [start, end) share at least one night.
func (b Booking) Overlaps(start, end Date) bool {
	return start.Before(b.EndDate) && end.After(b.StartDate)
}

// BookingInput is the create/update body of a booking.
type BookingInput struct {
	StartDate *Date `json:"startDate"`
	EndDate   *Date `json:"endDate"`
}

// BookingDetail is a booking as the spot owner sees it.
type BookingDetail struct {
	User *UserSummary `json:"User"`
	Booking
}

// BookingPublic is a booking as anyone but the spot owner sees it.
type BookingPublic struct {
	SpotID    int64 `json:"spotId" db:"spot_id"`
	StartDate Date  `json:"startDate" db:"start_date"`
	EndDate   Date  `json:"endDate" db:"end_date"`
}

// BookingWithSpot is a booking of the current user with the booked spot.
type BookingWithSpot struct {
	Booking
	Spot *SpotPreview `json:"Spot"`
}

// SpotBookings holds whichever view of a spot's bookings the requester may see.
type SpotBookings struct {
	Owner  bool
	Full   []BookingDetail
	Public []BookingPublic
}

func (b SpotBookings) MarshalJSON() ([]byte, error) {
	if b.Owner {
		full := b.Full
		if full == nil {
			full = []BookingDetail{}
		}
		return json.Marshal(map[string]any{"Bookings": full})
	}
	public := b.Public
	if public == nil {
		public = []BookingPublic{}
	}
	return json.Marshal(map[string]any{"Bookings": public})
}
