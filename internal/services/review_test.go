package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	spots   *services.MockSpotGetter
	reviews *services.MockReviewStore
	images  *services.MockReviewImageStore
}

func newReviewService(t *testing.T) (*services.ReviewService, reviewMocks) {
	ctrl := gomock.NewController(t)
	m := reviewMocks{
		spots:   services.NewMockSpotGetter(ctrl),
		reviews: services.NewMockReviewStore(ctrl),
		images:  services.NewMockReviewImageStore(ctrl),
	}
	return services.NewReviewService(m.spots, m.reviews, m.images), m
}

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()
	spot := &models.Spot{ID: 1, OwnerID: 3}

	t.Run("success", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.spots.EXPECT().GetByID(ctx, int64(1)).Return(spot, nil)
		m.reviews.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.Review) error {
			r.ID = 5
			return nil
		})

		review, err := svc.CreateReview(ctx, 1, 2, models.ReviewInput{Review: "Great stay", Stars: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(5), review.ID)
		assert.Equal(t, int64(2), review.UserID)
	})

	t.Run("spot not found", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.spots.EXPECT().GetByID(ctx, int64(1)).Return(nil, nil)

		_, err := svc.CreateReview(ctx, 1, 2, models.ReviewInput{Review: "Great stay", Stars: 5})
		assert.ErrorIs(t, err, services.ErrSpotNotFound)
	})

	t.Run("stars out of range", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.spots.EXPECT().GetByID(ctx, int64(1)).Return(spot, nil)

		_, err := svc.CreateReview(ctx, 1, 2, models.ReviewInput{Review: "", Stars: 6})

		var serr *services.Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, map[string]string{
			"review": "Review text is required",
			"stars":  "Stars must be an integer from 1 to 5",
		}, serr.Errors)
	})

	t.Run("second review is a conflict", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.spots.EXPECT().GetByID(ctx, int64(1)).Return(spot, nil)
		m.reviews.EXPECT().Create(ctx, gomock.Any()).
			Return(&models.ConstraintError{Constraint: "unique_user_spot", Err: models.ErrDuplicate})

		_, err := svc.CreateReview(ctx, 1, 2, models.ReviewInput{Review: "Again", Stars: 4})
		assert.ErrorIs(t, err, services.ErrReviewExists)
		assert.Equal(t, services.KindConflict, services.KindOf(err))
	})
}

func TestReviewService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	stored := func() *models.Review {
		return &models.Review{ID: 5, SpotID: 1, UserID: 2, Review: "ok", Stars: 3}
	}

	t.Run("author updates", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(stored(), nil)
		m.reviews.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		review, err := svc.UpdateReview(ctx, 5, 2, models.ReviewInput{Review: "better", Stars: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, review.Stars)
	})

	t.Run("non-author with valid body", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(stored(), nil)

		_, err := svc.UpdateReview(ctx, 5, 9, models.ReviewInput{Review: "better", Stars: 4})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("delete missing", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(nil, nil)

		assert.ErrorIs(t, svc.DeleteReview(ctx, 5, 2), services.ErrReviewNotFound)
	})

	t.Run("non-author delete", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(stored(), nil)

		assert.ErrorIs(t, svc.DeleteReview(ctx, 5, 9), services.ErrForbidden)
	})

	t.Run("author deletes", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(stored(), nil)
		m.reviews.EXPECT().Delete(ctx, int64(5)).Return(nil)

		assert.NoError(t, svc.DeleteReview(ctx, 5, 2))
	})
}

func TestReviewService_AddReviewImage(t *testing.T) {
	ctx := context.Background()
	review := &models.Review{ID: 5, SpotID: 1, UserID: 2}

	t.Run("within limit", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(review, nil)
		m.images.EXPECT().SaveWithinLimit(ctx, gomock.Any(), models.MaxReviewImages).
			DoAndReturn(func(_ context.Context, img *models.ReviewImage, _ int) error {
				img.ID = 10
				return nil
			})

		img, err := svc.AddReviewImage(ctx, 5, 2, "https://img/10.jpg")
		require.NoError(t, err)
		assert.Equal(t, int64(10), img.ID)
		assert.Equal(t, "https://img/10.jpg", img.URL)
	})

	t.Run("limit reached", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(review, nil)
		m.images.EXPECT().SaveWithinLimit(ctx, gomock.Any(), models.MaxReviewImages).Return(models.ErrLimitReached)

		_, err := svc.AddReviewImage(ctx, 5, 2, "https://img/11.jpg")
		assert.ErrorIs(t, err, services.ErrReviewImageLimit)
		assert.Equal(t, services.KindLimitExceeded, services.KindOf(err))
	})

	t.Run("review deleted meanwhile", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(review, nil)
		m.images.EXPECT().SaveWithinLimit(ctx, gomock.Any(), models.MaxReviewImages).
			Return(&models.ConstraintError{Constraint: "review_images_review_id_fkey", Err: models.ErrForeignKey})

		_, err := svc.AddReviewImage(ctx, 5, 2, "https://img/1.jpg")
		assert.ErrorIs(t, err, services.ErrReviewNotFound)
	})

	t.Run("not the author", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(review, nil)

		_, err := svc.AddReviewImage(ctx, 5, 9, "https://img/1.jpg")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(nil, errors.New("db error"))

		_, err := svc.AddReviewImage(ctx, 5, 2, "https://img/1.jpg")
		assert.Equal(t, services.KindInternal, services.KindOf(err))
	})
}

func TestReviewService_DeleteReviewImage(t *testing.T) {
	ctx := context.Background()

	t.Run("author deletes", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.images.EXPECT().GetByID(ctx, int64(7)).Return(&models.ReviewImage{ID: 7, ReviewID: 5}, nil)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(&models.Review{ID: 5, UserID: 2}, nil)
		m.images.EXPECT().Delete(ctx, int64(7)).Return(nil)

		assert.NoError(t, svc.DeleteReviewImage(ctx, 7, 2))
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.images.EXPECT().GetByID(ctx, int64(7)).Return(nil, nil)

		assert.ErrorIs(t, svc.DeleteReviewImage(ctx, 7, 2), services.ErrReviewImageNotFound)
	})

	t.Run("someone else", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.images.EXPECT().GetByID(ctx, int64(7)).Return(&models.ReviewImage{ID: 7, ReviewID: 5}, nil)
		m.reviews.EXPECT().GetByID(ctx, int64(5)).Return(&models.Review{ID: 5, UserID: 2}, nil)

		assert.ErrorIs(t, svc.DeleteReviewImage(ctx, 7, 3), services.ErrForbidden)
	})
}

func TestReviewService_Listings(t *testing.T) {
	ctx := context.Background()

	t.Run("for spot", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.spots.EXPECT().GetByID(ctx, int64(1)).Return(&models.Spot{ID: 1}, nil)
		m.reviews.EXPECT().ListBySpot(ctx, int64(1)).Return([]models.ReviewDetail{{}}, nil)

		got, err := svc.ListReviewsForSpot(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("for missing spot", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.spots.EXPECT().GetByID(ctx, int64(1)).Return(nil, nil)

		_, err := svc.ListReviewsForSpot(ctx, 1)
		assert.ErrorIs(t, err, services.ErrSpotNotFound)
	})

	t.Run("for user", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reviews.EXPECT().ListByUser(ctx, int64(2)).Return([]models.ReviewDetail{}, nil)

		got, err := svc.ListReviewsForUser(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
