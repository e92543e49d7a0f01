package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validSpotInput() models.SpotInput {
	return models.SpotInput{
		Address:     strPtr("123 Disney Lane"),
		City:        strPtr("San Francisco"),
		State:       strPtr("California"),
		Country:     strPtr("United States of America"),
		Lat:         floatPtr(37.76),
		Lng:         floatPtr(-122.47),
		Name:        strPtr("App Academy"),
		Description: strPtr("Place where web developers are created"),
		Price:       floatPtr(123),
	}
}

func newSpotService(t *testing.T) (*services.SpotService, *services.MockSpotStore, *services.MockSpotImageStore) {
	ctrl := gomock.NewController(t)
	spots := services.NewMockSpotStore(ctrl)
	images := services.NewMockSpotImageStore(ctrl)
	return services.NewSpotService(spots, images), spots, images
}

func TestSpotService_ListSpots(t *testing.T) {
	ctx := context.Background()

	t.Run("valid filter", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		filter := models.SpotFilter{Page: 2, Size: 5, MinPrice: floatPtr(10)}
		rating := 4.0
		spots.EXPECT().List(ctx, filter).Return([]models.SpotSummary{{AvgRating: &rating}}, nil)

		got, err := svc.ListSpots(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 4.0, *got[0].AvgRating)
	})

	t.Run("invalid filter", func(t *testing.T) {
		svc, _, _ := newSpotService(t)
		filter := models.SpotFilter{Page: 0, Size: 25, MaxLat: floatPtr(-100), MinPrice: floatPtr(-1)}

		_, err := svc.ListSpots(ctx, filter)

		var serr *services.Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, services.KindValidation, serr.Kind)
		assert.Equal(t, map[string]string{
			"page":     "Page must be greater than or equal to 1",
			"size":     "Size must be between 1 and 20",
			"maxLat":   "Maximum latitude is invalid",
			"minPrice": "Minimum price must be greater than 0",
		}, serr.Errors)
	})

	t.Run("by owner", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		ownerID := int64(3)
		spots.EXPECT().List(ctx, models.SpotFilter{OwnerID: &ownerID}).Return([]models.SpotSummary{}, nil)

		got, err := svc.ListSpotsByOwner(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSpotService_GetSpot(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetDetail(ctx, int64(1)).Return(&models.SpotDetail{Spot: models.Spot{ID: 1}}, nil)

		got, err := svc.GetSpot(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, got.AvgRating)
	})

	t.Run("not found", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetDetail(ctx, int64(1)).Return(nil, nil)

		_, err := svc.GetSpot(ctx, 1)
		assert.ErrorIs(t, err, services.ErrSpotNotFound)
	})
}

func TestSpotService_CreateSpot(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Spot) error {
			s.ID = 1
			return nil
		})

		spot, err := svc.CreateSpot(ctx, 3, validSpotInput())
		require.NoError(t, err)
		assert.Equal(t, int64(1), spot.ID)
		assert.Equal(t, int64(3), spot.OwnerID)
		assert.Equal(t, "App Academy", spot.Name)
	})

	t.Run("validation messages", func(t *testing.T) {
		svc, _, _ := newSpotService(t)
		in := validSpotInput()
		in.Address = nil
		in.Lat = floatPtr(91)
		in.Name = strPtr("This name is definitely much longer than fifty characters")
		in.Price = floatPtr(0)

		_, err := svc.CreateSpot(ctx, 3, in)

		var serr *services.Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "Bad Request", serr.Message)
		assert.Equal(t, map[string]string{
			"address": "Street address is required",
			"lat":     "Latitude must be within -90 and 90",
			"name":    "Name must be less than 50 characters",
			"price":   "Price per day must be a positive number",
		}, serr.Errors)
	})

	t.Run("coordinates required", func(t *testing.T) {
		svc, _, _ := newSpotService(t)
		in := validSpotInput()
		in.Lat, in.Lng = nil, nil
		in.Price = floatPtr(-5)

		_, err := svc.CreateSpot(ctx, 3, in)

		var serr *services.Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, services.KindValidation, serr.Kind)
		assert.Equal(t, map[string]string{
			"lat":   "Latitude is required",
			"lng":   "Longitude is required",
			"price": "Price per day must be a positive number",
		}, serr.Errors)
	})

	t.Run("zero coordinates are allowed", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		in := validSpotInput()
		in.Lat, in.Lng = floatPtr(0), floatPtr(0)
		spots.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		spot, err := svc.CreateSpot(ctx, 3, in)
		require.NoError(t, err)
		assert.Zero(t, spot.Lat)
		assert.Zero(t, spot.Lng)
	})

	t.Run("duplicate address", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().Create(ctx, gomock.Any()).
			Return(&models.ConstraintError{Constraint: "spots_address_key", Err: models.ErrDuplicate})

		_, err := svc.CreateSpot(ctx, 3, validSpotInput())

		var serr *services.Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, services.KindConflict, serr.Kind)
		assert.Contains(t, serr.Errors, "address")
	})
}

func TestSpotService_UpdateSpot(t *testing.T) {
	ctx := context.Background()
	stored := func() *models.Spot {
		s := &models.Spot{ID: 1, OwnerID: 3}
		validSpotInput().ApplyTo(s)
		return s
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(stored(), nil)
		spots.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		spot, err := svc.UpdateSpot(ctx, 1, 3, models.SpotInput{Price: floatPtr(200)})
		require.NoError(t, err)
		assert.Equal(t, 200.0, spot.Price)
		assert.Equal(t, "App Academy", spot.Name)
	})

	t.Run("non-owner with valid body", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(stored(), nil)

		_, err := svc.UpdateSpot(ctx, 1, 4, validSpotInput())
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(nil, nil)

		_, err := svc.UpdateSpot(ctx, 1, 3, validSpotInput())
		assert.ErrorIs(t, err, services.ErrSpotNotFound)
	})

	t.Run("invalid merge", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(stored(), nil)

		_, err := svc.UpdateSpot(ctx, 1, 3, models.SpotInput{City: strPtr("")})
		assert.Equal(t, services.KindValidation, services.KindOf(err))
	})
}

func TestSpotService_DeleteSpot(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(&models.Spot{ID: 1, OwnerID: 3}, nil)
		spots.EXPECT().Delete(ctx, int64(1)).Return(nil)

		assert.NoError(t, svc.DeleteSpot(ctx, 1, 3))
	})

	t.Run("non-owner", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(&models.Spot{ID: 1, OwnerID: 3}, nil)

		assert.ErrorIs(t, svc.DeleteSpot(ctx, 1, 4), services.ErrForbidden)
	})
}

func TestSpotService_Images(t *testing.T) {
	ctx := context.Background()

	t.Run("add image", func(t *testing.T) {
		svc, spots, images := newSpotService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(&models.Spot{ID: 1, OwnerID: 3}, nil)
		images.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, img *models.SpotImage) error {
			img.ID = 8
			return nil
		})

		img, err := svc.AddSpotImage(ctx, 1, 3, "https://img/1.jpg", true)
		require.NoError(t, err)
		assert.Equal(t, int64(8), img.ID)
		assert.True(t, img.Preview)
	})

	t.Run("add image without url", func(t *testing.T) {
		svc, spots, _ := newSpotService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(&models.Spot{ID: 1, OwnerID: 3}, nil)

		_, err := svc.AddSpotImage(ctx, 1, 3, "  ", false)
		assert.Equal(t, services.KindValidation, services.KindOf(err))
	})

	t.Run("delete image of someone else's spot", func(t *testing.T) {
		svc, spots, images := newSpotService(t)
		images.EXPECT().GetByID(ctx, int64(8)).Return(&models.SpotImage{ID: 8, SpotID: 1}, nil)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(&models.Spot{ID: 1, OwnerID: 3}, nil)

		assert.ErrorIs(t, svc.DeleteSpotImage(ctx, 8, 4), services.ErrForbidden)
	})

	t.Run("delete missing image", func(t *testing.T) {
		svc, _, images := newSpotService(t)
		images.EXPECT().GetByID(ctx, int64(8)).Return(nil, nil)

		assert.ErrorIs(t, svc.DeleteSpotImage(ctx, 8, 3), services.ErrSpotImageNotFound)
	})

	t.Run("delete image", func(t *testing.T) {
		svc, spots, images := newSpotService(t)
		images.EXPECT().GetByID(ctx, int64(8)).Return(&models.SpotImage{ID: 8, SpotID: 1}, nil)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(&models.Spot{ID: 1, OwnerID: 3}, nil)
		images.EXPECT().Delete(ctx, int64(8)).Return(nil)

		assert.NoError(t, svc.DeleteSpotImage(ctx, 8, 3))
	})
}
