package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// GormCustomerRepository implements customer storage using GORM. It layers
// search and soft-delete semantics over the generic CRUD mechanics.
type GormCustomerRepository struct {
	*CRUDRepository[models.Customer]
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{
		CRUDRepository: NewCRUDRepository[models.Customer](db),
	}
}

// Search returns one page of customers, optionally filtered by a search term
// matched against name, contact person, phone, and email.
func (r *GormCustomerRepository) Search(ctx context.Context, search string, page, limit int) ([]models.Customer, int64, error) {
	query := r.DB().WithContext(ctx).Model(&models.Customer{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"customer_name LIKE ? OR contact_person LIKE ? OR phone LIKE ? OR email LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, TranslateError(err)
	}

	var customers []models.Customer
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&customers).Error
	if err != nil {
		return nil, 0, TranslateError(err)
	}

	return customers, total, nil
}

// SoftDelete marks a customer inactive instead of removing the row
func (r *GormCustomerRepository) SoftDelete(ctx context.Context, id uuid.UUID, by uuid.UUID) error {
	result := r.DB().WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  0,
			"updated_by": by,
		})
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
