package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/spotbnb/internal/jwt"
	"github.com/sbilibin2017/spotbnb/internal/middlewares"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupHandler(t *testing.T) {
	input := models.SignupInput{
		FirstName: "Demo",
		LastName:  "Lition",
		Email:     "demo@user.io",
		Username:  "Demo-lition",
		Password:  "password",
	}
	user := &models.User{ID: 1, FirstName: "Demo", LastName: "Lition", Email: "demo@user.io", Username: "Demo-lition"}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockAuthenticator)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful signup",
			requestBody: input,
			setupMocks: func(m *MockAuthenticator) {
				m.EXPECT().Signup(gomock.Any(), input).Return(user, "token", nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "token",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(m *MockAuthenticator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "errors",
		},
		{
			name:        "user exists",
			requestBody: input,
			setupMocks: func(m *MockAuthenticator) {
				err := &services.Error{Kind: services.KindConflict, Message: "User already exists", Errors: map[string]string{"email": "User with that email already exists"}}
				m.EXPECT().Signup(gomock.Any(), input).Return(nil, "", err)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "errors",
		},
		{
			name:        "internal error",
			requestBody: input,
			setupMocks: func(m *MockAuthenticator) {
				m.EXPECT().Signup(gomock.Any(), input).Return(nil, "", assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuth := NewMockAuthenticator(ctrl)
			tt.setupMocks(mockAuth)

			rr := httptest.NewRecorder()
			NewSignupHandler(mockAuth).ServeHTTP(rr, newRequest(http.MethodPost, "/api/users", tt.requestBody, 0, nil))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			resp := decodeBody(t, rr)
			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	input := models.LoginInput{Credential: "demo@user.io", Password: "password"}
	user := &models.User{ID: 1, Email: "demo@user.io", Username: "Demo-lition"}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockAuthenticator)
		expectedStatusCode int
		expectedMessage    string
	}{
		{
			name:        "successful login",
			requestBody: input,
			setupMocks: func(m *MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), input).Return(user, "token", nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "invalid credentials",
			requestBody: input,
			setupMocks: func(m *MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), input).Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Invalid credentials",
		},
		{
			name:               "invalid request body",
			requestBody:        "{",
			setupMocks:         func(m *MockAuthenticator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuth := NewMockAuthenticator(ctrl)
			tt.setupMocks(mockAuth)

			rr := httptest.NewRecorder()
			NewLoginHandler(mockAuth).ServeHTTP(rr, newRequest(http.MethodPost, "/api/session", tt.requestBody, 0, nil))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp["message"])
				return
			}
			assert.Equal(t, "token", resp["token"])
			assert.Equal(t, "Demo-lition", resp["user"].(map[string]interface{})["username"])
		})
	}
}

func TestCurrentSessionHandler(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rr := httptest.NewRecorder()
		NewCurrentSessionHandler(NewMockAuthenticator(ctrl)).ServeHTTP(rr, newRequest(http.MethodGet, "/api/session", nil, 0, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody(t, rr)
		require.Contains(t, resp, "user")
		assert.Nil(t, resp["user"])
	})

	t.Run("signed in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuth := NewMockAuthenticator(ctrl)
		mockAuth.EXPECT().CurrentUser(gomock.Any(), int64(7)).Return(&models.User{ID: 7, Username: "guest"}, nil)

		rr := httptest.NewRecorder()
		NewCurrentSessionHandler(mockAuth).ServeHTTP(rr, newRequest(http.MethodGet, "/api/session", nil, 7, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "guest", decodeBody(t, rr)["user"].(map[string]interface{})["username"])
	})
}

func TestLogoutHandler(t *testing.T) {
	t.Run("revokes current token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		claims := &jwt.Claims{
			UserID: 7,
			RegisteredClaims: gjwt.RegisteredClaims{
				ID:        "token-id",
				ExpiresAt: gjwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}

		mockAuth := NewMockAuthenticator(ctrl)
		mockAuth.EXPECT().Logout(gomock.Any(), "token-id", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.Greater(t, ttl, 59*time.Minute)
				return nil
			})

		req := newRequest(http.MethodDelete, "/api/session", nil, 0, nil)
		req = req.WithContext(middlewares.WithClaims(req.Context(), claims))
		rr := httptest.NewRecorder()
		NewLogoutHandler(mockAuth).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Success", decodeBody(t, rr)["message"])
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rr := httptest.NewRecorder()
		NewLogoutHandler(NewMockAuthenticator(ctrl)).ServeHTTP(rr, newRequest(http.MethodDelete, "/api/session", nil, 0, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
