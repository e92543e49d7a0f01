package models

// SpotImage represents a row of the spot_images table.
// swagger:model SpotImage
type SpotImage struct {
	ID      int64  `json:"id" db:"id"`
	SpotID  int64  `json:"-" db:"spot_id"`
	URL     string `json:"url" db:"url" validate:"required"`
	Preview bool   `json:"preview" db:"preview"`
}

// ReviewImage represents a row of the review_images table.
// swagger:model ReviewImage
type ReviewImage struct {
	ID       int64  `json:"id" db:"id"`
	ReviewID int64  `json:"-" db:"review_id"`
	URL      string `json:"url" db:"url" validate:"required"`
}

// MaxReviewImages is how many images a single review may carry.
const MaxReviewImages = 10
