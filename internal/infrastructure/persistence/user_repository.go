package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements user storage using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindActiveByUsername finds an active user by username
func (r *GormUserRepository) FindActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = 1", username).
		First(&user).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	return &user, nil
}

// FindActiveByID finds an active user by ID
func (r *GormUserRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = 1", id).
		First(&user).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	return &user, nil
}

// Create inserts a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return TranslateError(r.db.WithContext(ctx).Create(user).Error)
}

// TouchLastLogin records a successful login
func (r *GormUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return TranslateError(r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).Error)
}
