package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/spotbnb/internal/logger"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/validation"
)

//go:generate mockgen -source=review.go -destination=mock_review.go -package=services

// SpotGetter loads a single spot.
type SpotGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Spot, error)
}

// ReviewStore persists reviews.
type ReviewStore interface {
	ListBySpot(ctx context.Context, spotID int64) ([]models.ReviewDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]models.ReviewDetail, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
}

// ReviewImageStore persists review images.
type ReviewImageStore interface {
	SaveWithinLimit(ctx context.Context, img *models.ReviewImage, limit int) error
	GetByID(ctx context.Context, id int64) (*models.ReviewImage, error)
	Delete(ctx context.Context, id int64) error
}

var reviewMessages = validation.Messages{
	"review": "Review text is required",
	"stars":  "Stars must be an integer from 1 to 5",
}

var reviewImageMessages = validation.Messages{
	"url": "Image url is required",
}

// ReviewService handles reviews and their images.
type ReviewService struct {
	spots   SpotGetter
	reviews ReviewStore
	images  ReviewImageStore
}

func NewReviewService(spots SpotGetter, reviews ReviewStore, images ReviewImageStore) *ReviewService {
	return &ReviewService{spots: spots, reviews: reviews, images: images}
}

// ListReviewsForSpot returns the reviews of a spot with authors and images.
func (svc *ReviewService) ListReviewsForSpot(ctx context.Context, spotID int64) ([]models.ReviewDetail, error) {
	if _, err := svc.spot(ctx, spotID); err != nil {
		return nil, err
	}

	reviews, err := svc.reviews.ListBySpot(ctx, spotID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list spot reviews", "spot_id", spotID, "error", err)
		return nil, err
	}
	return reviews, nil
}

// ListReviewsForUser returns the reviews written by userID with the reviewed spots.
func (svc *ReviewService) ListReviewsForUser(ctx context.Context, userID int64) ([]models.ReviewDetail, error) {
	reviews, err := svc.reviews.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list user reviews", "user_id", userID, "error", err)
		return nil, err
	}
	return reviews, nil
}

// CreateReview stores the review of userID for the spot. A user reviews a spot once.
func (svc *ReviewService) CreateReview(ctx context.Context, spotID, userID int64, in models.ReviewInput) (*models.Review, error) {
	if _, err := svc.spot(ctx, spotID); err != nil {
		return nil, err
	}
	if fields := validation.Struct(in, reviewMessages); fields != nil {
		return nil, NewValidationError(fields)
	}

	review := &models.Review{SpotID: spotID, UserID: userID, Review: in.Review, Stars: in.Stars}
	if err := svc.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, ErrReviewExists
		}
		if errors.Is(err, models.ErrForeignKey) {
			return nil, ErrSpotNotFound
		}
		logger.FromContext(ctx).Errorw("failed to save review", "spot_id", spotID, "error", err)
		return nil, err
	}
	return review, nil
}

func (svc *ReviewService) UpdateReview(ctx context.Context, id, userID int64, in models.ReviewInput) (*models.Review, error) {
	review, err := svc.ownedReview(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if fields := validation.Struct(in, reviewMessages); fields != nil {
		return nil, NewValidationError(fields)
	}

	review.Review = in.Review
	review.Stars = in.Stars
	if err := svc.reviews.Update(ctx, review); err != nil {
		logger.FromContext(ctx).Errorw("failed to update review", "review_id", id, "error", err)
		return nil, err
	}
	return review, nil
}

func (svc *ReviewService) DeleteReview(ctx context.Context, id, userID int64) error {
	if _, err := svc.ownedReview(ctx, id, userID); err != nil {
		return err
	}

	if err := svc.reviews.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete review", "review_id", id, "error", err)
		return err
	}
	return nil
}

// AddReviewImage attaches an image to the review. A review holds at most
// models.MaxReviewImages images.
func (svc *ReviewService) AddReviewImage(ctx context.Context, reviewID, userID int64, url string) (*models.ReviewImage, error) {
	if _, err := svc.ownedReview(ctx, reviewID, userID); err != nil {
		return nil, err
	}

	img := &models.ReviewImage{ReviewID: reviewID, URL: strings.TrimSpace(url)}
	if fields := validation.Struct(img, reviewImageMessages); fields != nil {
		return nil, NewValidationError(fields)
	}

	if err := svc.images.SaveWithinLimit(ctx, img, models.MaxReviewImages); err != nil {
		if errors.Is(err, models.ErrLimitReached) {
			return nil, ErrReviewImageLimit
		}
		if errors.Is(err, models.ErrForeignKey) {
			return nil, ErrReviewNotFound
		}
		logger.FromContext(ctx).Errorw("failed to save review image", "review_id", reviewID, "error", err)
		return nil, err
	}
	return img, nil
}

// DeleteReviewImage removes an image of a review written by userID.
func (svc *ReviewService) DeleteReviewImage(ctx context.Context, imageID, userID int64) error {
	img, err := svc.images.GetByID(ctx, imageID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get review image", "image_id", imageID, "error", err)
		return err
	}
	if img == nil {
		return ErrReviewImageNotFound
	}

	review, err := svc.reviews.GetByID(ctx, img.ReviewID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get review", "review_id", img.ReviewID, "error", err)
		return err
	}
	if review == nil {
		return ErrReviewImageNotFound
	}
	if review.UserID != userID {
		return ErrForbidden
	}

	if err := svc.images.Delete(ctx, imageID); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete review image", "image_id", imageID, "error", err)
		return err
	}
	return nil
}

func (svc *ReviewService) spot(ctx context.Context, id int64) (*models.Spot, error) {
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

func (svc *ReviewService) ownedReview(ctx context.Context, id, userID int64) (*models.Review, error) {
	review, err := svc.reviews.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get review", "review_id", id, "error", err)
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}
	return review, nil
}
