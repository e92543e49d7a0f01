package models

import "time"

// Spot represents a row of the spots table.
// swagger:model Spot
type Spot struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	Address     string    `json:"address" db:"address" validate:"required"`
	City        string    `json:"city" db:"city" validate:"required"`
	State       string    `json:"state" db:"state" validate:"required"`
	Country     string    `json:"country" db:"country" validate:"required"`
	Lat         float64   `json:"lat" db:"lat" validate:"gte=-90,lte=90"`
	Lng         float64   `json:"lng" db:"lng" validate:"gte=-180,lte=180"`
	Name        string    `json:"name" db:"name" validate:"required,max=50"`
	Description string    `json:"description" db:"description" validate:"required"`
	Price       float64   `json:"price" db:"price" validate:"gt=0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// SpotInput is the create/update body. Nil fields are "not provided".
type SpotInput struct {
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Country     *string  `json:"country"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// ApplyTo overwrites the fields of s that are set in in.
func (in SpotInput) ApplyTo(s *Spot) {
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.City != nil {
		s.City = *in.City
	}
	if in.State != nil {
		s.State = *in.State
	}
	if in.Country != nil {
		s.Country = *in.Country
	}
	if in.Lat != nil {
		s.Lat = *in.Lat
	}
	if in.Lng != nil {
		s.Lng = *in.Lng
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
}

// SpotSummary is a spot as shown in list views.
// swagger:model SpotSummary
type SpotSummary struct {
	Spot
	AvgRating    *float64 `json:"avgRating" db:"avg_rating"`
	PreviewImage *string  `json:"previewImage" db:"preview_image"`
}

// SpotDetail is a single spot with its aggregates, images and owner.
// swagger:model SpotDetail
type SpotDetail struct {
	Spot
	NumReviews int64        `json:"numReviews" db:"num_reviews"`
	AvgRating  *float64     `json:"avgRating" db:"avg_rating"`
	SpotImages []SpotImage  `json:"SpotImages"`
	Owner      *UserSummary `json:"Owner"`
}

// SpotPreview is the spot block nested in bookings and reviews of the current user.
type SpotPreview struct {
	ID           int64   `json:"id" db:"id"`
	OwnerID      int64   `json:"ownerId" db:"owner_id"`
	Address      string  `json:"address" db:"address"`
	City         string  `json:"city" db:"city"`
	State        string  `json:"state" db:"state"`
	Country      string  `json:"country" db:"country"`
	Lat          float64 `json:"lat" db:"lat"`
	Lng          float64 `json:"lng" db:"lng"`
	Name         string  `json:"name" db:"name"`
	Price        float64 `json:"price" db:"price"`
	PreviewImage *string `json:"previewImage" db:"preview_image"`
}

// Pagination defaults and bounds for spot listings.
const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 20
)

// SpotFilter narrows a spot listing. A zero Size disables pagination.
type SpotFilter struct {
	OwnerID  *int64   `json:"-"`
	Page     int      `json:"page" validate:"gte=1"`
	Size     int      `json:"size" validate:"gte=1,lte=20"`
	MinLat   *float64 `json:"minLat" validate:"omitnil,gte=-90,lte=90"`
	MaxLat   *float64 `json:"maxLat" validate:"omitnil,gte=-90,lte=90"`
	MinLng   *float64 `json:"minLng" validate:"omitnil,gte=-180,lte=180"`
	MaxLng   *float64 `json:"maxLng" validate:"omitnil,gte=-180,lte=180"`
	MinPrice *float64 `json:"minPrice" validate:"omitnil,gt=0"`
	MaxPrice *float64 `json:"maxPrice" validate:"omitnil,gt=0"`
}

// Limit and Offset translate Page/Size for SQL; nil means unbounded.
func (f SpotFilter) Limit() *int {
	if f.Size <= 0 {
		return nil
	}
	size := f.Size
	return &size
}

func (f SpotFilter) Offset() int {
	if f.Size <= 0 || f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Size
}
