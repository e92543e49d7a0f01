package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/spotbnb/internal/middlewares"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

// Authenticator defines the account operations used by the session handlers.
type Authenticator interface {
	Signup(ctx context.Context, in models.SignupInput) (*models.User, string, error)
	Login(ctx context.Context, in models.LoginInput) (*models.User, string, error)
	Logout(ctx context.Context, tokenID string, ttl time.Duration) error
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// SessionResponse carries the signed in user and their token.
// swagger:model SessionResponse
type SessionResponse struct {
	User *models.User `json:"user"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token,omitempty"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Sign up
// @Description Register a new user and log them in
// @Tags session
// @Accept json
// @Produce json
// @Param request body models.SignupInput true "Sign up request"
// @Success 201 {object} handlers.SessionResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Failure 409 {object} handlers.ErrorResponse "User already exists"
// @Router /users [post]
func NewSignupHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupInput
		if !decodeJSON(w, r, &req) {
			return
		}

		user, token, err := svc.Signup(r.Context(), req)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, SessionResponse{User: user, Token: token})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticate by username or email and return a JWT token
// @Tags session
// @Accept json
// @Produce json
// @Param request body models.LoginInput true "Login request"
// @Success 200 {object} handlers.SessionResponse
// @Failure 400 {object} handlers.ErrorResponse "Bad Request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /session [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginInput
		if !decodeJSON(w, r, &req) {
			return
		}

		user, token, err := svc.Login(r.Context(), req)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{User: user, Token: token})
	}
}

// NewCurrentSessionHandler returns the signed in user, or a null user for anonymous requests.
// @Summary Current user
// @Tags session
// @Produce json
// @Success 200 {object} handlers.SessionResponse
// @Router /session [get]
// @Security BearerAuth
func NewCurrentSessionHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		if userID == 0 {
			writeJSON(w, http.StatusOK, SessionResponse{})
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, SessionResponse{User: user})
	}
}

// NewLogoutHandler returns an HTTP handler that revokes the current token.
// @Summary Log out
// @Tags session
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /session [delete]
// @Security BearerAuth
func NewLogoutHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(r.Context(), w, services.ErrUnauthenticated)
			return
		}

		if err := svc.Logout(r.Context(), claims.TokenID(), claims.TTL()); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Success"})
	}
}
