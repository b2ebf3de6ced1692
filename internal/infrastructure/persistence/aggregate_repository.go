package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// VendorTotal is one row of the per-vendor aggregate rollup
type VendorTotal struct {
	VendorName    string          `json:"vendor_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// GormAggregateRepository implements aggregate purchase storage using GORM
type GormAggregateRepository struct {
	*CRUDRepository[models.Aggregate]
}

// NewGormAggregateRepository creates a new GormAggregateRepository
func NewGormAggregateRepository(db *gorm.DB) *GormAggregateRepository {
	return &GormAggregateRepository{
		CRUDRepository: NewCRUDRepository[models.Aggregate](db),
	}
}

// TotalsByVendor sums purchased quantity and amount per vendor
func (r *GormAggregateRepository) TotalsByVendor(ctx context.Context) ([]VendorTotal, error) {
	var totals []VendorTotal
	err := r.DB().WithContext(ctx).
		Model(&models.Aggregate{}).
		Select("vendor_name, COALESCE(SUM(quantity), 0) AS total_quantity, COALESCE(SUM(amount), 0) AS total_amount").
		Group("vendor_name").
		Order("vendor_name ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	return totals, nil
}

// PaymentPending lists entries whose payment is still outstanding. A missing
// payment status counts as pending.
func (r *GormAggregateRepository) PaymentPending(ctx context.Context) ([]models.Aggregate, error) {
	var entries []models.Aggregate
	err := r.DB().WithContext(ctx).
		Where("payment_status = ? OR payment_status IS NULL", models.PaymentStatusPending).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	return entries, nil
}
