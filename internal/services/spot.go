package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/spotbnb/internal/logger"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/validation"
)

//go:generate mockgen -source=spot.go -destination=mock_spot.go -package=services

// SpotStore persists spots.
type SpotStore interface {
	List(ctx context.Context, filter models.SpotFilter) ([]models.SpotSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Spot, error)
	GetDetail(ctx context.Context, id int64) (*models.SpotDetail, error)
	Create(ctx context.Context, spot *models.Spot) error
	Update(ctx context.Context, spot *models.Spot) error
	Delete(ctx context.Context, id int64) error
}

// SpotImageStore persists spot images.
type SpotImageStore interface {
	Create(ctx context.Context, img *models.SpotImage) error
	GetByID(ctx context.Context, id int64) (*models.SpotImage, error)
	Delete(ctx context.Context, id int64) error
}

var spotMessages = validation.Messages{
	"address":       "Street address is required",
	"city":          "City is required",
	"state":         "State is required",
	"country":       "Country is required",
	"lat":           "Latitude must be within -90 and 90",
	"lat.required":  "Latitude is required",
	"lng":           "Longitude must be within -180 and 180",
	"lng.required":  "Longitude is required",
	"name":          "Name must be less than 50 characters",
	"name.required": "Name is required",
	"description":   "Description is required",
	"price":         "Price per day must be a positive number",
}

// SpotFilterMessages are the messages for invalid listing query parameters.
var SpotFilterMessages = validation.Messages{
	"page":     "Page must be greater than or equal to 1",
	"size":     "Size must be between 1 and 20",
	"minLat":   "Minimum latitude is invalid",
	"maxLat":   "Maximum latitude is invalid",
	"minLng":   "Minimum longitude is invalid",
	"maxLng":   "Maximum longitude is invalid",
	"minPrice": "Minimum price must be greater than 0",
	"maxPrice": "Maximum price must be greater than 0",
}

var spotImageMessages = validation.Messages{
	"url": "Image url is required",
}

// SpotService serves spot listings and spot mutations.
type SpotService struct {
	spots  SpotStore
	images SpotImageStore
}

func NewSpotService(spots SpotStore, images SpotImageStore) *SpotService {
	return &SpotService{spots: spots, images: images}
}

// ListSpots returns the page of spots matching filter.
func (svc *SpotService) ListSpots(ctx context.Context, filter models.SpotFilter) ([]models.SpotSummary, error) {
	if fields := validation.Struct(filter, SpotFilterMessages); fields != nil {
		return nil, NewValidationError(fields)
	}

	spots, err := svc.spots.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list spots", "error", err)
		return nil, err
	}
	return spots, nil
}

// ListSpotsByOwner returns every spot owned by ownerID.
func (svc *SpotService) ListSpotsByOwner(ctx context.Context, ownerID int64) ([]models.SpotSummary, error) {
	spots, err := svc.spots.List(ctx, models.SpotFilter{OwnerID: &ownerID})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list owner spots", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return spots, nil
}

func (svc *SpotService) GetSpot(ctx context.Context, id int64) (*models.SpotDetail, error) {
	spot, err := svc.spots.GetDetail(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get spot", "spot_id", id, "error", err)
		return nil, err
	}
	if spot == nil {
		return nil, ErrSpotNotFound
	}
	return spot, nil
}

// CreateSpot validates the fields and stores a spot owned by ownerID.
func (svc *SpotService) CreateSpot(ctx context.Context, ownerID int64, in models.SpotInput) (*models.Spot, error) {
	spot := &models.Spot{OwnerID: ownerID}
	in.ApplyTo(spot)

	if err := validateSpot(spot, missingCoordinates(in)); err != nil {
		return nil, err
	}

	if err := svc.spots.Create(ctx, spot); err != nil {
		return nil, spotWriteError(ctx, err)
	}
	return spot, nil
}

// UpdateSpot merges the provided fields over the stored spot.
func (svc *SpotService) UpdateSpot(ctx context.Context, id, ownerID int64, in models.SpotInput) (*models.Spot, error) {
	spot, err := svc.ownedSpot(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	in.ApplyTo(spot)
	if err := validateSpot(spot, nil); err != nil {
		return nil, err
	}

	if err := svc.spots.Update(ctx, spot); err != nil {
		return nil, spotWriteError(ctx, err)
	}
	return spot, nil
}

// DeleteSpot removes the spot with its images, reviews and bookings.
func (svc *SpotService) DeleteSpot(ctx context.Context, id, ownerID int64) error {
	if _, err := svc.ownedSpot(ctx, id, ownerID); err != nil {
		return err
	}

	if err := svc.spots.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete spot", "spot_id", id, "error", err)
		return err
	}
	return nil
}

func (svc *SpotService) AddSpotImage(ctx context.Context, spotID, ownerID int64, url string, preview bool) (*models.SpotImage, error) {
	if _, err := svc.ownedSpot(ctx, spotID, ownerID); err != nil {
		return nil, err
	}

	img := &models.SpotImage{SpotID: spotID, URL: strings.TrimSpace(url), Preview: preview}
	if fields := validation.Struct(img, spotImageMessages); fields != nil {
		return nil, NewValidationError(fields)
	}

	if err := svc.images.Create(ctx, img); err != nil {
		logger.FromContext(ctx).Errorw("failed to save spot image", "spot_id", spotID, "error", err)
		return nil, err
	}
	return img, nil
}

// DeleteSpotImage removes an image of a spot owned by ownerID.
func (svc *SpotService) DeleteSpotImage(ctx context.Context, imageID, ownerID int64) error {
	img, err := svc.images.GetByID(ctx, imageID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get spot image", "image_id", imageID, "error", err)
		return err
	}
	if img == nil {
		return ErrSpotImageNotFound
	}

	spot, err := svc.spots.GetByID(ctx, img.SpotID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get spot", "spot_id", img.SpotID, "error", err)
		return err
	}
	if spot == nil {
		return ErrSpotImageNotFound
	}
	if spot.OwnerID != ownerID {
		return ErrForbidden
	}

	if err := svc.images.Delete(ctx, imageID); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete spot image", "image_id", imageID, "error", err)
		return err
	}
	return nil
}

// ownedSpot loads the spot and checks that ownerID owns it.
func (svc *SpotService) ownedSpot(ctx context.Context, id, ownerID int64) (*models.Spot, error) {
	spot, err := svc.spots.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get spot", "spot_id", id, "error", err)
		return nil, err
	}
	if spot == nil {
		return nil, ErrSpotNotFound
	}
	if spot.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return spot, nil
}

// validateSpot checks spot and reports missing alongside the field failures.
// An entry in missing wins over a failure of the same field.
func validateSpot(spot *models.Spot, missing map[string]string) error {
	fields := validation.Merge(missing, validation.Struct(spot, spotMessages))
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

// missingCoordinates lists lat and lng when a create body leaves them out.
func missingCoordinates(in models.SpotInput) map[string]string {
	var missing map[string]string
	for field, v := range map[string]*float64{"lat": in.Lat, "lng": in.Lng} {
		if v != nil {
			continue
		}
		if missing == nil {
			missing = make(map[string]string, 2)
		}
		missing[field] = spotMessages.Message(field, "required")
	}
	return missing
}

func spotWriteError(ctx context.Context, err error) error {
	var cerr *models.ConstraintError
	if errors.As(err, &cerr) && errors.Is(err, models.ErrDuplicate) {
		switch cerr.Constraint {
		case "spots_address_key":
			return &Error{Kind: KindConflict, Message: msgSpotExists, Errors: map[string]string{"address": "Spot with that address already exists"}}
		case "spots_name_key":
			return &Error{Kind: KindConflict, Message: msgSpotExists, Errors: map[string]string{"name": "Spot with that name already exists"}}
		}
	}
	logger.FromContext(ctx).Errorw("failed to save spot", "error", err)
	return err
}
