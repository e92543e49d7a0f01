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

func newPricingService(t *testing.T) (*services.PricingService, *services.MockSpotGetter, *services.MockExchangeRateReader, *services.MockExchangeRateCache) {
	ctrl := gomock.NewController(t)
	spots := services.NewMockSpotGetter(ctrl)
	rates := services.NewMockExchangeRateReader(ctrl)
	cache := services.NewMockExchangeRateCache(ctrl)
	return services.NewPricingService(spots, rates, cache), spots, rates, cache
}

func TestPricingService_Quote(t *testing.T) {
	ctx := context.Background()
	spot := &models.Spot{ID: 1, Price: 100}

	t.Run("cache hit", func(t *testing.T) {
		svc, spots, _, cache := newPricingService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(spot, nil)
		cache.EXPECT().Get(ctx, "USD", "EUR").Return(float32(0.5), true, nil)

		quote, err := svc.Quote(ctx, 1, "eur")
		require.NoError(t, err)
		assert.Equal(t, "EUR", quote.Currency)
		assert.Equal(t, 50.0, quote.Converted)
	})

	t.Run("cache miss fetches and stores", func(t *testing.T) {
		svc, spots, rates, cache := newPricingService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(spot, nil)
		cache.EXPECT().Get(ctx, "USD", "RUB").Return(float32(0), false, nil)
		rates.EXPECT().GetExchangeRateForCurrency(ctx, "USD", "RUB").Return(float32(90), nil)
		cache.EXPECT().Set(ctx, "USD", "RUB", float32(90)).Return(errors.New("redis down"))

		quote, err := svc.Quote(ctx, 1, "RUB")
		require.NoError(t, err)
		assert.Equal(t, 9000.0, quote.Converted)
	})

	t.Run("base currency", func(t *testing.T) {
		svc, spots, _, _ := newPricingService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(spot, nil)

		quote, err := svc.Quote(ctx, 1, "USD")
		require.NoError(t, err)
		assert.Equal(t, float32(1), quote.Rate)
		assert.Equal(t, 100.0, quote.Converted)
	})

	t.Run("spot not found", func(t *testing.T) {
		svc, spots, _, _ := newPricingService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(nil, nil)

		_, err := svc.Quote(ctx, 1, "EUR")
		assert.ErrorIs(t, err, services.ErrSpotNotFound)
	})

	t.Run("exchanger error", func(t *testing.T) {
		svc, spots, rates, cache := newPricingService(t)
		spots.EXPECT().GetByID(ctx, int64(1)).Return(spot, nil)
		cache.EXPECT().Get(ctx, "USD", "EUR").Return(float32(0), false, nil)
		rates.EXPECT().GetExchangeRateForCurrency(ctx, "USD", "EUR").Return(float32(0), errors.New("unavailable"))

		_, err := svc.Quote(ctx, 1, "EUR")
		assert.EqualError(t, err, "unavailable")
	})
}

func TestPricingService_QuoteAll(t *testing.T) {
	ctx := context.Background()
	svc, spots, rates, _ := newPricingService(t)
	spots.EXPECT().GetByID(ctx, int64(1)).Return(&models.Spot{ID: 1, Price: 10}, nil)
	rates.EXPECT().GetExchangeRates(ctx).Return(map[string]float32{"USD": 1, "EUR": 0.5}, nil)

	quotes, err := svc.QuoteAll(ctx, 1)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "EUR", quotes[0].Currency)
	assert.Equal(t, 5.0, quotes[0].Converted)
	assert.Equal(t, "USD", quotes[1].Currency)
}
