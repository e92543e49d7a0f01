package models

import "time"

// Review represents a row of the reviews table.
// swagger:model Review
type Review struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	SpotID    int64     `json:"spotId" db:"spot_id"`
	Review    string    `json:"review" db:"review"`
	Stars     int       `json:"stars" db:"stars"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ReviewInput is the create/update body of a review.
type ReviewInput struct {
	Review string `json:"review" validate:"required"`
	Stars  int    `json:"stars" validate:"gte=1,lte=5"`
}

// ReviewDetail is a review with its author, images and, for the
// current user's listing, the reviewed spot.
// swagger:model ReviewDetail
type ReviewDetail struct {
	Review
	User         *UserSummary  `json:"User"`
	Spot         *SpotPreview  `json:"Spot,omitempty"`
	ReviewImages []ReviewImage `json:"ReviewImages"`
}
