package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotBookingsHandler(t *testing.T) {
	start := models.NewDate(2030, time.June, 10)
	end := models.NewDate(2030, time.June, 15)

	tests := []struct {
		name               string
		userID             int64
		setupMocks         func(m *MockBookingManager)
		expectedStatusCode int
		expectUser         bool
	}{
		{
			name:   "owner view",
			userID: 5,
			setupMocks: func(m *MockBookingManager) {
				m.EXPECT().ListBookingsForSpot(gomock.Any(), int64(1), int64(5)).Return(models.SpotBookings{
					Owner: true,
					Full: []models.BookingDetail{{
						User:    &models.UserSummary{ID: 7, FirstName: "Guest"},
						Booking: models.Booking{ID: 1, SpotID: 1, UserID: 7, StartDate: start, EndDate: end},
					}},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectUser:         true,
		},
		{
			name:   "guest view",
			userID: 7,
			setupMocks: func(m *MockBookingManager) {
				m.EXPECT().ListBookingsForSpot(gomock.Any(), int64(1), int64(7)).Return(models.SpotBookings{
					Public: []models.BookingPublic{{SpotID: 1, StartDate: start, EndDate: end}},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:   "spot missing",
			userID: 7,
			setupMocks: func(m *MockBookingManager) {
				m.EXPECT().ListBookingsForSpot(gomock.Any(), int64(1), int64(7)).Return(models.SpotBookings{}, services.ErrSpotNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBookings := NewMockBookingManager(ctrl)
			tt.setupMocks(mockBookings)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodGet, "/api/spots/1/bookings", nil, tt.userID, map[string]string{"id": "1"})
			NewSpotBookingsHandler(mockBookings).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedStatusCode != http.StatusOK {
				return
			}

			resp := decodeBody(t, rr)
			bookings := resp["Bookings"].([]interface{})
			require.Len(t, bookings, 1)
			first := bookings[0].(map[string]interface{})
			assert.Equal(t, "2030-06-10", first["startDate"])
			_, hasUser := first["User"]
			assert.Equal(t, tt.expectUser, hasUser)
		})
	}
}

func TestCurrentBookingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := NewMockBookingManager(ctrl)
	mockBookings.EXPECT().ListBookingsForUser(gomock.Any(), int64(7)).Return([]models.BookingWithSpot{
		{Booking: models.Booking{ID: 1, SpotID: 1, UserID: 7}, Spot: &models.SpotPreview{ID: 1, Name: "Cabin"}},
	}, nil)

	rr := httptest.NewRecorder()
	NewCurrentBookingsHandler(mockBookings).ServeHTTP(rr, newRequest(http.MethodGet, "/api/bookings/current", nil, 7, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	bookings := decodeBody(t, rr)["Bookings"].([]interface{})
	require.Len(t, bookings, 1)
	assert.Equal(t, "Cabin", bookings[0].(map[string]interface{})["Spot"].(map[string]interface{})["name"])
}

func TestGetBookingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := NewMockBookingManager(ctrl)
	mockBookings.EXPECT().GetBooking(gomock.Any(), int64(3), int64(9)).Return(nil, services.ErrForbidden)

	rr := httptest.NewRecorder()
	req := newRequest(http.MethodGet, "/api/bookings/3", nil, 9, map[string]string{"id": "3"})
	NewGetBookingHandler(mockBookings).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCreateBookingHandler(t *testing.T) {
	start := models.NewDate(2030, time.June, 10)
	end := models.NewDate(2030, time.June, 15)
	input := models.BookingInput{StartDate: &start, EndDate: &end}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockBookingManager)
		expectedStatusCode int
		expectedMessage    string
		expectedErrors     []string
	}{
		{
			name:        "created",
			requestBody: input,
			setupMocks: func(m *MockBookingManager) {
				m.EXPECT().CreateBooking(gomock.Any(), int64(1), int64(7), input).
					Return(&models.Booking{ID: 3, SpotID: 1, UserID: 7, StartDate: start, EndDate: end}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "dates conflict",
			requestBody: input,
			setupMocks: func(m *MockBookingManager) {
				m.EXPECT().CreateBooking(gomock.Any(), int64(1), int64(7), input).
					Return(nil, &services.Error{
						Kind:    services.KindBookingConflict,
						Message: "Sorry, this spot is already booked for the specified dates",
						Errors: map[string]string{
							"startDate": "Start date conflicts with an existing booking",
							"endDate":   "End date conflicts with an existing booking",
						},
					})
			},
			expectedStatusCode: http.StatusForbidden,
			expectedMessage:    "Sorry, this spot is already booked for the specified dates",
			expectedErrors:     []string{"startDate", "endDate"},
		},
		{
			name:               "malformed date",
			requestBody:        `{"startDate":"06/10/2030","endDate":"2030-06-15"}`,
			setupMocks:         func(m *MockBookingManager) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBookings := NewMockBookingManager(ctrl)
			tt.setupMocks(mockBookings)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/api/spots/1/bookings", tt.requestBody, 7, map[string]string{"id": "1"})
			NewCreateBookingHandler(mockBookings).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedMessage == "" {
				assert.Equal(t, "2030-06-15", resp["endDate"])
				return
			}
			assert.Equal(t, tt.expectedMessage, resp["message"])
			for _, f := range tt.expectedErrors {
				assert.Contains(t, resp["errors"], f)
			}
		})
	}
}

func TestUpdateBookingHandler(t *testing.T) {
	start := models.NewDate(2030, time.July, 1)
	end := models.NewDate(2030, time.July, 3)
	input := models.BookingInput{StartDate: &start, EndDate: &end}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := NewMockBookingManager(ctrl)
	mockBookings.EXPECT().UpdateBooking(gomock.Any(), int64(3), int64(7), input).Return(nil, services.ErrBookingPast)

	rr := httptest.NewRecorder()
	req := newRequest(http.MethodPut, "/api/bookings/3", input, 7, map[string]string{"id": "3"})
	NewUpdateBookingHandler(mockBookings).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Past bookings can't be modified", decodeBody(t, rr)["message"])
}

func TestDeleteBookingHandler(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedMessage    string
	}{
		{"deleted", nil, http.StatusOK, "Successfully deleted"},
		{"started", services.ErrBookingStarted, http.StatusForbidden, "Bookings that have been started can't be deleted"},
		{"missing", services.ErrBookingNotFound, http.StatusNotFound, "Booking couldn't be found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBookings := NewMockBookingManager(ctrl)
			mockBookings.EXPECT().DeleteBooking(gomock.Any(), int64(3), int64(7)).Return(tt.err)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodDelete, "/api/bookings/3", nil, 7, map[string]string{"id": "3"})
			NewDeleteBookingHandler(mockBookings).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.Equal(t, tt.expectedMessage, decodeBody(t, rr)["message"])
		})
	}
}
