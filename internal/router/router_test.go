package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/spotbnb/internal/handlers"
	"github.com/sbilibin2017/spotbnb/internal/jwt"
	"github.com/sbilibin2017/spotbnb/internal/middlewares"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/stretchr/testify/assert"
)

type routerMocks struct {
	auth     *handlers.MockAuthenticator
	reader   *handlers.MockSpotReader
	writer   *handlers.MockSpotWriter
	bookings *handlers.MockBookingManager
	tokener  *middlewares.MockTokener
	revoked  *middlewares.MockRevocationChecker
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	ctrl := gomock.NewController(t)
	m := routerMocks{
		auth:     handlers.NewMockAuthenticator(ctrl),
		reader:   handlers.NewMockSpotReader(ctrl),
		writer:   handlers.NewMockSpotWriter(ctrl),
		bookings: handlers.NewMockBookingManager(ctrl),
		tokener:  middlewares.NewMockTokener(ctrl),
		revoked:  middlewares.NewMockRevocationChecker(ctrl),
	}

	h := New(Deps{
		Auth:         m.auth,
		SpotReader:   m.reader,
		SpotWriter:   m.writer,
		SpotImages:   handlers.NewMockSpotImageManager(ctrl),
		Reviews:      handlers.NewMockReviewManager(ctrl),
		ReviewImages: handlers.NewMockReviewImageManager(ctrl),
		Bookings:     m.bookings,
		Prices:       handlers.NewMockPriceQuoter(ctrl),
		Tokener:      m.tokener,
		Revocations:  m.revoked,
		SwaggerURL:   "/swagger/doc.json",
	})
	return h, m
}

func TestRouter_PublicRouteIsAnonymous(t *testing.T) {
	h, m := newTestRouter(t)

	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing)
	m.reader.EXPECT().ListSpots(gomock.Any(), gomock.Any()).Return([]models.SpotSummary{}, nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/spots", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_ProtectedRouteRequiresAuth(t *testing.T) {
	h, m := newTestRouter(t)

	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/bookings/current", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, rr.Body.String())
}

func TestRouter_ProtectedRouteWithToken(t *testing.T) {
	h, m := newTestRouter(t)

	claims := &jwt.Claims{UserID: 4}
	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	m.tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
	m.revoked.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
	m.reader.EXPECT().ListSpotsByOwner(gomock.Any(), int64(4)).Return([]models.SpotSummary{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/spots/current", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Spots":[]}`, rr.Body.String())
}

func TestRouter_RevokedToken(t *testing.T) {
	h, m := newTestRouter(t)

	claims := &jwt.Claims{UserID: 4}
	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	m.tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
	m.revoked.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/spots", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	h, m := newTestRouter(t)

	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing).AnyTimes()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/spots/{id}/bookings")
}
