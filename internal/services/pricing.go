package services

import (
	"context"
	"sort"
	"strings"

	"github.com/sbilibin2017/spotbnb/internal/logger"
	"github.com/sbilibin2017/spotbnb/internal/models"
)

//go:generate mockgen -source=pricing.go -destination=mock_pricing.go -package=services

// ExchangeRateReader retrieves exchange rates from the exchanger service.
type ExchangeRateReader interface {
	GetExchangeRates(ctx context.Context) (map[string]float32, error)
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error)
}

// ExchangeRateCache caches exchange rates.
type ExchangeRateCache interface {
	Get(ctx context.Context, from, to string) (rate float32, found bool, err error)
	Set(ctx context.Context, from, to string, rate float32) error
}

const msgUnsupportedCurrency = "Currency is not supported"

// PricingService quotes nightly spot prices in other currencies.
type PricingService struct {
	spots SpotGetter
	rates ExchangeRateReader
	cache ExchangeRateCache
}

func NewPricingService(spots SpotGetter, rates ExchangeRateReader, cache ExchangeRateCache) *PricingService {
	return &PricingService{spots: spots, rates: rates, cache: cache}
}

// Quote converts the spot's price into currency.
func (svc *PricingService) Quote(ctx context.Context, spotID int64, currency string) (*models.PriceQuote, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, NewValidationError(map[string]string{"currency": "Currency is required"})
	}

	spot, err := svc.spot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	rate, err := svc.rate(ctx, currency)
	if err != nil {
		return nil, err
	}
	return newQuote(spot, currency, rate), nil
}

// QuoteAll converts the spot's price into every currency the exchanger knows.
func (svc *PricingService) QuoteAll(ctx context.Context, spotID int64) ([]models.PriceQuote, error) {
	spot, err := svc.spot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	rates, err := svc.rates.GetExchangeRates(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get exchange rates", "error", err)
		return nil, err
	}

	currencies := make([]string, 0, len(rates))
	for currency := range rates {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	quotes := make([]models.PriceQuote, 0, len(currencies))
	for _, currency := range currencies {
		quotes = append(quotes, *newQuote(spot, currency, rates[currency]))
	}
	return quotes, nil
}

// rate returns the BaseCurrency→currency rate, preferring the cache.
func (svc *PricingService) rate(ctx context.Context, currency string) (float32, error) {
	if currency == models.BaseCurrency {
		return 1, nil
	}

	rate, found, err := svc.cache.Get(ctx, models.BaseCurrency, currency)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to read cached rate", "currency", currency, "error", err)
	}
	if found {
		return rate, nil
	}

	rate, err = svc.rates.GetExchangeRateForCurrency(ctx, models.BaseCurrency, currency)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get exchange rate", "from", models.BaseCurrency, "to", currency, "error", err)
		return 0, err
	}
	if rate <= 0 {
		return 0, NewValidationError(map[string]string{"currency": msgUnsupportedCurrency})
	}

	if err := svc.cache.Set(ctx, models.BaseCurrency, currency, rate); err != nil {
		logger.FromContext(ctx).Errorw("failed to cache exchange rate", "currency", currency, "rate", rate, "error", err)
	}
	return rate, nil
}

func (svc *PricingService) spot(ctx context.Context, id int64) (*models.Spot, error) {
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

func newQuote(spot *models.Spot, currency string, rate float32) *models.PriceQuote {
	return &models.PriceQuote{
		SpotID:    spot.ID,
		Price:     spot.Price,
		Currency:  currency,
		Rate:      rate,
		Converted: roundCents(spot.Price * float64(rate)),
	}
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
