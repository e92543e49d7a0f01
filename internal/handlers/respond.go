package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/spotbnb/internal/logger"
	"github.com/sbilibin2017/spotbnb/internal/services"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Spot couldn't be found
	Message string `json:"message"`

	// Per-field messages for validation and booking conflicts
	Errors map[string]string `json:"errors,omitempty"`
}

// MessageResponse is the body of a successful delete.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Successfully deleted
	Message string `json:"message"`
}

var deleted = MessageResponse{Message: "Successfully deleted"}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError reports err to the client. Unclassified errors become a
// generic 500 and are logged.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var serr *services.Error
	if !errors.As(err, &serr) {
		logger.FromContext(ctx).Errorw("internal server error", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
		return
	}
	writeJSON(w, statusOf(serr.Kind), ErrorResponse{Message: serr.Message, Errors: serr.Errors})
}

func statusOf(kind services.Kind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindForbidden, services.KindBookingConflict, services.KindLimitExceeded:
		return http.StatusForbidden
	case services.KindUnauthenticated:
		return http.StatusUnauthorized
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// pathID parses the {name} URL parameter. A malformed id cannot match any
// row, so it is reported as notFound.
func pathID(w http.ResponseWriter, r *http.Request, name string, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(r.Context(), w, notFound)
		return 0, false
	}
	return id, true
}

// decodeJSON reads the request body into v and reports a malformed body as 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromContext(r.Context()).Infow("failed to decode request body", "error", err)
		writeError(r.Context(), w, services.NewValidationError(map[string]string{"body": "Invalid request body"}))
		return false
	}
	return true
}
