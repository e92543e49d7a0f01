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

func TestSpotReviewsHandler(t *testing.T) {
	tests := []struct {
		name               string
		setupMocks         func(m *MockReviewManager)
		expectedStatusCode int
	}{
		{
			name: "listed",
			setupMocks: func(m *MockReviewManager) {
				m.EXPECT().ListReviewsForSpot(gomock.Any(), int64(1)).Return([]models.ReviewDetail{
					{Review: models.Review{ID: 1, SpotID: 1, Stars: 5}, User: &models.UserSummary{ID: 2}, ReviewImages: []models.ReviewImage{}},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "spot missing",
			setupMocks: func(m *MockReviewManager) {
				m.EXPECT().ListReviewsForSpot(gomock.Any(), int64(1)).Return(nil, services.ErrSpotNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReviews := NewMockReviewManager(ctrl)
			tt.setupMocks(mockReviews)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodGet, "/api/spots/1/reviews", nil, 0, map[string]string{"id": "1"})
			NewSpotReviewsHandler(mockReviews).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedStatusCode == http.StatusOK {
				resp := decodeBody(t, rr)
				assert.Len(t, resp["Reviews"], 1)
			}
		})
	}
}

func TestCurrentReviewsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviews := NewMockReviewManager(ctrl)
	mockReviews.EXPECT().ListReviewsForUser(gomock.Any(), int64(2)).Return([]models.ReviewDetail{}, nil)

	rr := httptest.NewRecorder()
	NewCurrentReviewsHandler(mockReviews).ServeHTTP(rr, newRequest(http.MethodGet, "/api/reviews/current", nil, 2, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []interface{}{}, decodeBody(t, rr)["Reviews"])
}

func TestCreateReviewHandler(t *testing.T) {
	input := models.ReviewInput{Review: "Great stay", Stars: 5}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockReviewManager)
		expectedStatusCode int
		expectedMessage    string
	}{
		{
			name:        "created",
			requestBody: input,
			setupMocks: func(m *MockReviewManager) {
				m.EXPECT().CreateReview(gomock.Any(), int64(1), int64(2), input).
					Return(&models.Review{ID: 4, SpotID: 1, UserID: 2, Review: input.Review, Stars: 5}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "already reviewed",
			requestBody: input,
			setupMocks: func(m *MockReviewManager) {
				m.EXPECT().CreateReview(gomock.Any(), int64(1), int64(2), input).Return(nil, services.ErrReviewExists)
			},
			expectedStatusCode: http.StatusConflict,
			expectedMessage:    "User already has a review for this spot",
		},
		{
			name:               "invalid body",
			requestBody:        "nope",
			setupMocks:         func(m *MockReviewManager) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReviews := NewMockReviewManager(ctrl)
			tt.setupMocks(mockReviews)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/api/spots/1/reviews", tt.requestBody, 2, map[string]string{"id": "1"})
			NewCreateReviewHandler(mockReviews).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp["message"])
			} else {
				assert.Equal(t, float64(5), resp["stars"])
			}
		})
	}
}

func TestUpdateReviewHandler(t *testing.T) {
	input := models.ReviewInput{Review: "Changed my mind", Stars: 2}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviews := NewMockReviewManager(ctrl)
	mockReviews.EXPECT().UpdateReview(gomock.Any(), int64(4), int64(2), input).Return(nil, services.ErrForbidden)

	rr := httptest.NewRecorder()
	req := newRequest(http.MethodPut, "/api/reviews/4", input, 2, map[string]string{"id": "4"})
	NewUpdateReviewHandler(mockReviews).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Forbidden", decodeBody(t, rr)["message"])
}

func TestDeleteReviewHandler(t *testing.T) {
	tests := []struct {
		name               string
		id                 string
		setupMocks         func(m *MockReviewManager)
		expectedStatusCode int
	}{
		{
			name: "deleted",
			id:   "4",
			setupMocks: func(m *MockReviewManager) {
				m.EXPECT().DeleteReview(gomock.Any(), int64(4), int64(2)).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "malformed id",
			id:                 "x",
			setupMocks:         func(m *MockReviewManager) {},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReviews := NewMockReviewManager(ctrl)
			tt.setupMocks(mockReviews)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodDelete, "/api/reviews/"+tt.id, nil, 2, map[string]string{"id": tt.id})
			NewDeleteReviewHandler(mockReviews).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
