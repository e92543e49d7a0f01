package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/spotbnb/internal/middlewares"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
)

//go:generate mockgen -source=reviews.go -destination=mock_reviews.go -package=handlers

// ReviewManager defines the review operations.
type ReviewManager interface {
	ListReviewsForSpot(ctx context.Context, spotID int64) ([]models.ReviewDetail, error)
	ListReviewsForUser(ctx context.Context, userID int64) ([]models.ReviewDetail, error)
	CreateReview(ctx context.Context, spotID, userID int64, in models.ReviewInput) (*models.Review, error)
	UpdateReview(ctx context.Context, id, userID int64, in models.ReviewInput) (*models.Review, error)
	DeleteReview(ctx context.Context, id, userID int64) error
}

// ReviewListResponse wraps a list of reviews.
// swagger:model ReviewListResponse
type ReviewListResponse struct {
	Reviews []models.ReviewDetail `json:"Reviews"`
}

// NewSpotReviewsHandler returns an HTTP handler that lists the reviews of a spot.
// @Summary List spot reviews
// @Tags reviews
// @Produce json
// @Param id path int true "Spot ID"
// @Success 200 {object} handlers.ReviewListResponse
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Router /spots/{id}/reviews [get]
func NewSpotReviewsHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spotID, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		reviews, err := svc.ListReviewsForSpot(r.Context(), spotID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, ReviewListResponse{Reviews: reviews})
	}
}

// NewCurrentReviewsHandler returns an HTTP handler that lists the caller's reviews.
// @Summary List current user's reviews
// @Tags reviews
// @Produce json
// @Success 200 {object} handlers.ReviewListResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /reviews/current [get]
// @Security BearerAuth
func NewCurrentReviewsHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := svc.ListReviewsForUser(r.Context(), middlewares.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, ReviewListResponse{Reviews: reviews})
	}
}

// NewCreateReviewHandler returns an HTTP handler that reviews a spot.
// @Summary Create review
// @Description A user may review each spot once
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Spot ID"
// @Param request body models.ReviewInput true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Failure 409 {object} handlers.ErrorResponse "User already has a review for this spot"
// @Router /spots/{id}/reviews [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spotID, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		var req models.ReviewInput
		if !decodeJSON(w, r, &req) {
			return
		}

		review, err := svc.CreateReview(r.Context(), spotID, middlewares.UserIDFromContext(r.Context()), req)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

// NewUpdateReviewHandler returns an HTTP handler that edits a review.
// @Summary Update review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body models.ReviewInput true "Review"
// @Success 200 {object} models.Review
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Review couldn't be found"
// @Router /reviews/{id} [put]
// @Security BearerAuth
func NewUpdateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrReviewNotFound)
		if !ok {
			return
		}

		var req models.ReviewInput
		if !decodeJSON(w, r, &req) {
			return
		}

		review, err := svc.UpdateReview(r.Context(), id, middlewares.UserIDFromContext(r.Context()), req)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, review)
	}
}

// NewDeleteReviewHandler returns an HTTP handler that deletes a review.
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Review couldn't be found"
// @Router /reviews/{id} [delete]
// @Security BearerAuth
func NewDeleteReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrReviewNotFound)
		if !ok {
			return
		}

		if err := svc.DeleteReview(r.Context(), id, middlewares.UserIDFromContext(r.Context())); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleted)
	}
}
