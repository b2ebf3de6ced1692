package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/auth"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// UserRepository is the storage surface the auth service needs
type UserRepository interface {
	FindActiveByUsername(ctx context.Context, username string) (*models.User, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

// TokenService signs and inspects bearer tokens
type TokenService interface {
	GenerateToken(input auth.GenerateTokenInput) (string, error)
	TokenExpiration() time.Duration
}

// LoginInput carries the login credentials
type LoginInput struct {
	Username string
	Password string
}

// UserInfo is the identity payload returned to callers, never including the
// password hash
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

// LoginResult carries a freshly minted token and the authenticated identity
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expires_in"`
	User      UserInfo  `json:"user"`
	IssuedAt  time.Time `json:"-"`
}

// AuthService implements login, token validation, and refresh
type AuthService struct {
	users  UserRepository
	tokens TokenService
	logger *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserRepository, tokens TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Login authenticates a user and mints a token. An unknown username and a
// wrong password both come back as INVALID_CREDENTIALS; callers cannot tell
// which check failed.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.users.FindActiveByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, shared.ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is informational.
		s.logger.Warn("failed to update last_login",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	token, err := s.tokens.GenerateToken(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(s.tokens.TokenExpiration().Seconds()),
		User:      userInfo(user),
		IssuedAt:  time.Now(),
	}, nil
}

// Validate re-checks that the user behind a verified claim still exists and is
// active. Deactivating a user invalidates their outstanding tokens here.
func (s *AuthService) Validate(ctx context.Context, claims *auth.Claims) (*UserInfo, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.users.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	info := userInfo(user)
	return &info, nil
}

// Refresh mints a new token for the user behind a still-valid claim
func (s *AuthService) Refresh(ctx context.Context, claims *auth.Claims) (*LoginResult, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.users.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	token, err := s.tokens.GenerateToken(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(s.tokens.TokenExpiration().Seconds()),
		User:      userInfo(user),
		IssuedAt:  time.Now(),
	}, nil
}

// Logout is intentionally a no-op. Tokens are stateless and expire on their
// own; there is no server-side session to tear down.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	return nil
}

func userInfo(user *models.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
}
