package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/spotbnb/internal/middlewares"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
)

//go:generate mockgen -source=spots.go -destination=mock_spots.go -package=handlers

// SpotReader defines the spot listing operations.
type SpotReader interface {
	ListSpots(ctx context.Context, filter models.SpotFilter) ([]models.SpotSummary, error)
	ListSpotsByOwner(ctx context.Context, ownerID int64) ([]models.SpotSummary, error)
	GetSpot(ctx context.Context, id int64) (*models.SpotDetail, error)
}

// SpotWriter defines the owner-only spot mutations.
type SpotWriter interface {
	CreateSpot(ctx context.Context, ownerID int64, in models.SpotInput) (*models.Spot, error)
	UpdateSpot(ctx context.Context, id, ownerID int64, in models.SpotInput) (*models.Spot, error)
	DeleteSpot(ctx context.Context, id, ownerID int64) error
}

// SpotListResponse is a page of spots.
// swagger:model SpotListResponse
type SpotListResponse struct {
	Spots []models.SpotSummary `json:"Spots"`

	// default: 1
	Page int `json:"page,omitempty"`

	// default: 20
	Size int `json:"size,omitempty"`
}

// NewListSpotsHandler returns an HTTP handler that lists spots.
// @Summary List spots
// @Description Return a page of spots, optionally filtered by coordinates and price
// @Tags spots
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Param minLat query number false "Minimum latitude"
// @Param maxLat query number false "Maximum latitude"
// @Param minLng query number false "Minimum longitude"
// @Param maxLng query number false "Maximum longitude"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {object} handlers.SpotListResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Router /spots [get]
func NewListSpotsHandler(svc SpotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, fields := parseSpotFilter(r)
		if fields != nil {
			writeError(r.Context(), w, services.NewValidationError(fields))
			return
		}

		spots, err := svc.ListSpots(r.Context(), filter)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, SpotListResponse{Spots: spots, Page: filter.Page, Size: filter.Size})
	}
}

func parseSpotFilter(r *http.Request) (models.SpotFilter, map[string]string) {
	q := r.URL.Query()
	filter := models.SpotFilter{Page: models.DefaultPage, Size: models.DefaultSize}
	fields := map[string]string{}

	ints := map[string]*int{"page": &filter.Page, "size": &filter.Size}
	for name, dst := range ints {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields[name] = services.SpotFilterMessages.Message(name, "")
			continue
		}
		*dst = v
	}

	floats := map[string]**float64{
		"minLat": &filter.MinLat, "maxLat": &filter.MaxLat,
		"minLng": &filter.MinLng, "maxLng": &filter.MaxLng,
		"minPrice": &filter.MinPrice, "maxPrice": &filter.MaxPrice,
	}
	for name, dst := range floats {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields[name] = services.SpotFilterMessages.Message(name, "")
			continue
		}
		*dst = &v
	}

	if len(fields) > 0 {
		return filter, fields
	}
	return filter, nil
}

// NewCurrentSpotsHandler returns an HTTP handler that lists the caller's spots.
// @Summary List current user's spots
// @Tags spots
// @Produce json
// @Success 200 {object} handlers.SpotListResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /spots/current [get]
// @Security BearerAuth
func NewCurrentSpotsHandler(svc SpotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spots, err := svc.ListSpotsByOwner(r.Context(), middlewares.UserIDFromContext(r.Context()))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, SpotListResponse{Spots: spots})
	}
}

// NewGetSpotHandler returns an HTTP handler that shows one spot.
// @Summary Get spot
// @Description Return a spot with its images, owner and review statistics
// @Tags spots
// @Produce json
// @Param id path int true "Spot ID"
// @Success 200 {object} models.SpotDetail
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Router /spots/{id} [get]
func NewGetSpotHandler(svc SpotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		spot, err := svc.GetSpot(r.Context(), id)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, spot)
	}
}

// NewCreateSpotHandler returns an HTTP handler that creates a spot.
// @Summary Create spot
// @Tags spots
// @Accept json
// @Produce json
// @Param request body models.SpotInput true "Spot"
// @Success 201 {object} models.Spot
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 409 {object} handlers.ErrorResponse "Spot already exists"
// @Router /spots [post]
// @Security BearerAuth
func NewCreateSpotHandler(svc SpotWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SpotInput
		if !decodeJSON(w, r, &req) {
			return
		}

		spot, err := svc.CreateSpot(r.Context(), middlewares.UserIDFromContext(r.Context()), req)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, spot)
	}
}

// NewUpdateSpotHandler returns an HTTP handler that edits a spot.
// @Summary Update spot
// @Tags spots
// @Accept json
// @Produce json
// @Param id path int true "Spot ID"
// @Param request body models.SpotInput true "Spot fields to change"
// @Success 200 {object} models.Spot
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Router /spots/{id} [put]
// @Security BearerAuth
func NewUpdateSpotHandler(svc SpotWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		var req models.SpotInput
		if !decodeJSON(w, r, &req) {
			return
		}

		spot, err := svc.UpdateSpot(r.Context(), id, middlewares.UserIDFromContext(r.Context()), req)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, spot)
	}
}

// NewDeleteSpotHandler returns an HTTP handler that deletes a spot.
// @Summary Delete spot
// @Tags spots
// @Produce json
// @Param id path int true "Spot ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Router /spots/{id} [delete]
// @Security BearerAuth
func NewDeleteSpotHandler(svc SpotWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		if err := svc.DeleteSpot(r.Context(), id, middlewares.UserIDFromContext(r.Context())); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, deleted)
	}
}
