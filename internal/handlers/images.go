package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/spotbnb/internal/middlewares"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
)

//go:generate mockgen -source=images.go -destination=mock_images.go -package=handlers

// SpotImageManager adds and removes spot images.
type SpotImageManager interface {
	AddSpotImage(ctx context.Context, spotID, ownerID int64, url string, preview bool) (*models.SpotImage, error)
	DeleteSpotImage(ctx context.Context, imageID, ownerID int64) error
}

// ReviewImageManager adds and removes review images.
type ReviewImageManager interface {
	AddReviewImage(ctx context.Context, reviewID, userID int64, url string) (*models.ReviewImage, error)
	DeleteReviewImage(ctx context.Context, imageID, userID int64) error
}

// SpotImageRequest represents a new spot image.
// swagger:model SpotImageRequest
type SpotImageRequest struct {
	// Image URL
	// required: true
	// default: https://example.com/image.png
	URL string `json:"url"`

	// Whether the image is shown in listings
	Preview bool `json:"preview"`
}

// ReviewImageRequest represents a new review image.
// swagger:model ReviewImageRequest
type ReviewImageRequest struct {
	// Image URL
	// required: true
	URL string `json:"url"`
}

// NewAddSpotImageHandler returns an HTTP handler that attaches an image to a spot.
// @Summary Add spot image
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Spot ID"
// @Param request body handlers.SpotImageRequest true "Image"
// @Success 201 {object} models.SpotImage
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Router /spots/{id}/images [post]
// @Security BearerAuth
func NewAddSpotImageHandler(svc SpotImageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spotID, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		var req SpotImageRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		img, err := svc.AddSpotImage(r.Context(), spotID, middlewares.UserIDFromContext(r.Context()), req.URL, req.Preview)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, img)
	}
}

// NewDeleteSpotImageHandler returns an HTTP handler that removes a spot image.
// @Summary Delete spot image
// @Tags images
// @Produce json
// @Param id path int true "Spot image ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Spot Image couldn't be found"
// @Router /spot-images/{id} [delete]
// @Security BearerAuth
func NewDeleteSpotImageHandler(svc SpotImageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrSpotImageNotFound)
		if !ok {
			return
		}

		if err := svc.DeleteSpotImage(r.Context(), id, middlewares.UserIDFromContext(r.Context())); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleted)
	}
}

// NewAddReviewImageHandler returns an HTTP handler that attaches an image to a review.
// @Summary Add review image
// @Description At most 10 images may be attached to one review
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body handlers.ReviewImageRequest true "Image"
// @Success 201 {object} models.ReviewImage
// @Failure 403 {object} handlers.ErrorResponse "Maximum number of images for this resource was reached"
// @Failure 404 {object} handlers.ErrorResponse "Review couldn't be found"
// @Router /reviews/{id}/images [post]
// @Security BearerAuth
func NewAddReviewImageHandler(svc ReviewImageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, ok := pathID(w, r, "id", services.ErrReviewNotFound)
		if !ok {
			return
		}

		var req ReviewImageRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		img, err := svc.AddReviewImage(r.Context(), reviewID, middlewares.UserIDFromContext(r.Context()), req.URL)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, img)
	}
}

// NewDeleteReviewImageHandler returns an HTTP handler that removes a review image.
// @Summary Delete review image
// @Tags images
// @Produce json
// @Param id path int true "Review image ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Review Image couldn't be found"
// @Router /review-images/{id} [delete]
// @Security BearerAuth
func NewDeleteReviewImageHandler(svc ReviewImageManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrReviewImageNotFound)
		if !ok {
			return
		}

		if err := svc.DeleteReviewImage(r.Context(), id, middlewares.UserIDFromContext(r.Context())); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleted)
	}
}
