package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rmc/backend/internal/domain/shared"
)

// CRUDRepository provides storage for resources that have no business logic
// beyond persistence (mix designs, recipes, cube tests, weight-bridge
// reports, and the other lookup tables). Each resource keeps its typed gorm
// model; the repository supplies the shared list/get/create/update/delete
// mechanics.
type CRUDRepository[T any] struct {
	db *gorm.DB
}

// NewCRUDRepository creates a CRUDRepository for the model type T
func NewCRUDRepository[T any](db *gorm.DB) *CRUDRepository[T] {
	return &CRUDRepository[T]{db: db}
}

// DB exposes the underlying gorm handle for bespoke queries
func (r *CRUDRepository[T]) DB() *gorm.DB {
	return r.db
}

// List returns one page of rows ordered by creation time descending, plus the
// total row count. Rows and count are independent queries; neither depends on
// the other's result.
func (r *CRUDRepository[T]) List(ctx context.Context, page, limit int) ([]T, int64, error) {
	var rows []T
	var total int64

	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, TranslateError(err)
	}

	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, TranslateError(err)
	}

	return rows, total, nil
}

// FindByID fetches one row by primary key
func (r *CRUDRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &row, nil
}

// Exists reports whether a row with the given primary key exists
func (r *CRUDRepository[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, TranslateError(err)
	}
	return count > 0, nil
}

// Create inserts a new row
func (r *CRUDRepository[T]) Create(ctx context.Context, row *T) error {
	return TranslateError(r.db.WithContext(ctx).Create(row).Error)
}

// Update applies a full-column overwrite of the row. Callers are responsible
// for carrying over creation audit fields; this is not a partial patch.
func (r *CRUDRepository[T]) Update(ctx context.Context, row *T) error {
	return TranslateError(r.db.WithContext(ctx).Save(row).Error)
}

// Delete removes the row by primary key (hard delete). Resources with
// soft-delete semantics override this at the repository or handler level.
func (r *CRUDRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
