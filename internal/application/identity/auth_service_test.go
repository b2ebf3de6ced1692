package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/auth"
	"github.com/rmc/backend/internal/infrastructure/config"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func testTokenService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "unit-test-signing-secret-0123456789",
		TokenExpiration: 24 * time.Hour,
		Issuer:          "rmc-backend-test",
	})
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Username:     "admin",
		PasswordHash: hash,
		Email:        "admin@rmc.example",
		FullName:     "Site Admin",
		Role:         "admin",
		IsActive:     1,
	}
	user.ID = uuid.New()
	return user
}

func TestAuthService_Login(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testTokenService(t), zap.NewNop())

	user := testUser(t, "s3cret-pass")
	repo.On("FindActiveByUsername", mock.Anything, "admin").Return(user, nil)
	repo.On("TouchLastLogin", mock.Anything, user.ID).Return(nil)

	result, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64((24 * time.Hour).Seconds()), result.ExpiresIn)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "admin", result.User.Username)
	repo.AssertExpectations(t)
}

func TestAuthService_LoginFailuresLookAlike(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testTokenService(t), zap.NewNop())

	user := testUser(t, "s3cret-pass")
	repo.On("FindActiveByUsername", mock.Anything, "admin").Return(user, nil)
	repo.On("FindActiveByUsername", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

	_, wrongPassword := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong"})
	_, unknownUser := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "s3cret-pass"})

	// Same error either way; callers cannot probe for valid usernames.
	assert.ErrorIs(t, wrongPassword, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, shared.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestAuthService_LoginSurvivesLastLoginFailure(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testTokenService(t), zap.NewNop())

	user := testUser(t, "s3cret-pass")
	repo.On("FindActiveByUsername", mock.Anything, "admin").Return(user, nil)
	repo.On("TouchLastLogin", mock.Anything, user.ID).Return(assert.AnError)

	result, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_Validate(t *testing.T) {
	repo := new(mockUserRepo)
	tokens := testTokenService(t)
	svc := NewAuthService(repo, tokens, zap.NewNop())

	user := testUser(t, "s3cret-pass")
	repo.On("FindActiveByID", mock.Anything, user.ID).Return(user, nil)

	claims := &auth.Claims{UserID: user.ID.String(), Username: user.Username}
	info, err := svc.Validate(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, info.ID)
}

func TestAuthService_ValidateDeactivatedUser(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testTokenService(t), zap.NewNop())

	id := uuid.New()
	repo.On("FindActiveByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Validate(context.Background(), &auth.Claims{UserID: id.String()})
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestAuthService_Refresh(t *testing.T) {
	repo := new(mockUserRepo)
	tokens := testTokenService(t)
	svc := NewAuthService(repo, tokens, zap.NewNop())

	user := testUser(t, "s3cret-pass")
	repo.On("FindActiveByID", mock.Anything, user.ID).Return(user, nil)

	result, err := svc.Refresh(context.Background(), &auth.Claims{UserID: user.ID.String()})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	claims, err := tokens.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
}

func TestAuthService_LogoutIsNoOp(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testTokenService(t), zap.NewNop())

	err := svc.Logout(context.Background(), &auth.Claims{UserID: uuid.NewString()})
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "FindActiveByID")
}
