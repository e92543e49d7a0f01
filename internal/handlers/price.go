package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
)

//go:generate mockgen -source=price.go -destination=mock_price.go -package=handlers

// PriceQuoter converts spot prices into other currencies.
type PriceQuoter interface {
	Quote(ctx context.Context, spotID int64, currency string) (*models.PriceQuote, error)
	QuoteAll(ctx context.Context, spotID int64) ([]models.PriceQuote, error)
}

// PriceListResponse lists the spot price in every supported currency.
// swagger:model PriceListResponse
type PriceListResponse struct {
	Prices []models.PriceQuote `json:"Prices"`
}

// NewSpotPriceHandler returns an HTTP handler that quotes a spot's nightly price.
// @Summary Get spot price
// @Description Without a currency the price is quoted in every currency the exchanger knows
// @Tags spots
// @Produce json
// @Param id path int true "Spot ID"
// @Param currency query string false "Target currency" example(EUR)
// @Success 200 {object} models.PriceQuote
// @Success 200 {object} handlers.PriceListResponse
// @Failure 400 {object} handlers.ErrorResponse "Currency is not supported"
// @Failure 404 {object} handlers.ErrorResponse "Spot couldn't be found"
// @Router /spots/{id}/price [get]
func NewSpotPriceHandler(svc PriceQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spotID, ok := pathID(w, r, "id", services.ErrSpotNotFound)
		if !ok {
			return
		}

		currency := r.URL.Query().Get("currency")
		if currency == "" {
			quotes, err := svc.QuoteAll(r.Context(), spotID)
			if err != nil {
				writeError(r.Context(), w, err)
				return
			}
			writeJSON(w, http.StatusOK, PriceListResponse{Prices: quotes})
			return
		}

		quote, err := svc.Quote(r.Context(), spotID, currency)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}
