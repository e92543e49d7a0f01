package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSpotPriceHandler(t *testing.T) {
	tests := []struct {
		name               string
		target             string
		setupMocks         func(m *MockPriceQuoter)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:   "single currency",
			target: "/api/spots/1/price?currency=eur",
			setupMocks: func(m *MockPriceQuoter) {
				m.EXPECT().Quote(gomock.Any(), int64(1), "eur").
					Return(&models.PriceQuote{SpotID: 1, Price: 100, Currency: "EUR", Rate: 0.9, Converted: 90}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "convertedPrice",
		},
		{
			name:   "all currencies",
			target: "/api/spots/1/price",
			setupMocks: func(m *MockPriceQuoter) {
				m.EXPECT().QuoteAll(gomock.Any(), int64(1)).Return([]models.PriceQuote{
					{SpotID: 1, Price: 100, Currency: "EUR", Rate: 0.9, Converted: 90},
					{SpotID: 1, Price: 100, Currency: "USD", Rate: 1, Converted: 100},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "Prices",
		},
		{
			name:   "unsupported currency",
			target: "/api/spots/1/price?currency=XYZ",
			setupMocks: func(m *MockPriceQuoter) {
				m.EXPECT().Quote(gomock.Any(), int64(1), "XYZ").
					Return(nil, services.NewValidationError(map[string]string{"currency": "Currency is not supported"}))
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "errors",
		},
		{
			name:   "exchanger unavailable",
			target: "/api/spots/1/price?currency=EUR",
			setupMocks: func(m *MockPriceQuoter) {
				m.EXPECT().Quote(gomock.Any(), int64(1), "EUR").Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuoter := NewMockPriceQuoter(ctrl)
			tt.setupMocks(mockQuoter)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodGet, tt.target, nil, 0, map[string]string{"id": "1"})
			NewSpotPriceHandler(mockQuoter).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			resp := decodeBody(t, rr)
			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
