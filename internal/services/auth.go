package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/spotbnb/internal/logger"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/sbilibin2017/spotbnb/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByCredential(ctx context.Context, credential string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// TokenGenerator issues access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// TokenRevoker remembers logged out tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

var signupMessages = validation.Messages{
	"firstName":    "First Name is required",
	"lastName":     "Last Name is required",
	"email":        "Invalid email",
	"username":     "Username is required",
	"username.min": "Username must be 4 characters or more",
	"password":     "Password is required",
	"password.min": "Password must be 6 characters or more",
}

var loginMessages = validation.Messages{
	"credential": "Email or username is required",
	"password":   "Password is required",
}

// AuthService handles sign up, log in and log out.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	tokens  TokenGenerator
	revoker TokenRevoker
}

func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		tokens:  tokens,
		revoker: revoker,
	}
}

// Signup registers a new user and logs them in.
func (svc *AuthService) Signup(ctx context.Context, in models.SignupInput) (*models.User, string, error) {
	if fields := validation.Struct(in, signupMessages); fields != nil {
		return nil, "", NewValidationError(fields)
	}

	taken := map[string]string{}
	for _, field := range [...]struct{ name, value string }{{"email", in.Email}, {"username", in.Username}} {
		existing, err := svc.reader.GetByCredential(ctx, field.value)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to check user exists", "field", field.name, "error", err)
			return nil, "", err
		}
		if existing != nil {
			taken[field.name] = "User with that " + field.name + " already exists"
		}
	}
	if len(taken) > 0 {
		return nil, "", &Error{Kind: KindConflict, Message: msgUserExists, Errors: taken}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "error", err)
		return nil, "", err
	}

	user := &models.UserDB{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: string(hashed),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, "", &Error{Kind: KindConflict, Message: msgUserExists, Errors: userConstraintField(err)}
		}
		logger.FromContext(ctx).Errorw("failed to save user", "username", in.Username, "error", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}
	return user.Public(), token, nil
}

func userConstraintField(err error) map[string]string {
	var cerr *models.ConstraintError
	if errors.As(err, &cerr) && cerr.Constraint == "users_username_key" {
		return map[string]string{"username": "User with that username already exists"}
	}
	return map[string]string{"email": "User with that email already exists"}
}

// Login checks the credential (username or email) and password and issues a token.
func (svc *AuthService) Login(ctx context.Context, in models.LoginInput) (*models.User, string, error) {
	if fields := validation.Struct(in, loginMessages); fields != nil {
		return nil, "", NewValidationError(fields)
	}

	user, err := svc.reader.GetByCredential(ctx, in.Credential)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "error", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		logger.FromContext(ctx).Infow("invalid credentials", "user_id", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}
	return user.Public(), token, nil
}

// Logout revokes the token until it expires.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := svc.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		logger.FromContext(ctx).Errorw("failed to revoke token", "error", err)
		return err
	}
	return nil
}

// CurrentUser returns the account behind userID. A deleted account is
// reported as unauthenticated.
func (svc *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user.Public(), nil
}
