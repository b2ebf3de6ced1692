package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// DashboardStats carries the headline numbers for the landing dashboard
type DashboardStats struct {
	ActiveCustomers int64           `json:"active_customers"`
	InvoicesYTD     int64           `json:"invoices_ytd"`
	RevenueYTD      decimal.Decimal `json:"revenue_ytd"`
	PendingOrders   int64           `json:"pending_orders"`
}

// QuantityStats carries delivered concrete volume over the trailing day, week,
// and month
type QuantityStats struct {
	Today     decimal.Decimal `json:"today"`
	ThisWeek  decimal.Decimal `json:"this_week"`
	ThisMonth decimal.Decimal `json:"this_month"`
}

// DashboardSummary carries the recent-activity panels
type DashboardSummary struct {
	RecentInvoices []models.SalesInvoice `json:"recent_invoices"`
	RecentOrders   []models.SalesOrder   `json:"recent_orders"`
}

// GormDashboardRepository computes dashboard rollups straight from the
// operational tables. Date windows are computed in Go so the SQL stays
// portable across postgres and sqlite.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// Stats returns the headline counters. Year-to-date windows run from Jan 1 of
// the current year in local time.
func (r *GormDashboardRepository) Stats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("is_active = 1").
		Count(&stats.ActiveCustomers).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	err = r.db.WithContext(ctx).
		Model(&models.SalesInvoice{}).
		Where("invoice_date >= ?", yearStart).
		Count(&stats.InvoicesYTD).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	var revenue struct {
		Total decimal.Decimal
	}
	err = r.db.WithContext(ctx).
		Model(&models.SalesInvoice{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("invoice_date >= ?", yearStart).
		Scan(&revenue).Error
	if err != nil {
		return nil, TranslateError(err)
	}
	stats.RevenueYTD = revenue.Total

	err = r.db.WithContext(ctx).
		Model(&models.SalesOrder{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	return stats, nil
}

// Quantity sums delivered challan volume for today, the last 7 days, and the
// last 30 days
func (r *GormDashboardRepository) Quantity(ctx context.Context, now time.Time) (*QuantityStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -6)
	monthStart := dayStart.AddDate(0, 0, -29)

	stats := &QuantityStats{}
	windows := []struct {
		since time.Time
		dest  *decimal.Decimal
	}{
		{dayStart, &stats.Today},
		{weekStart, &stats.ThisWeek},
		{monthStart, &stats.ThisMonth},
	}
	for _, w := range windows {
		var row struct {
			Total decimal.Decimal
		}
		err := r.db.WithContext(ctx).
			Model(&models.DeliveryChallan{}).
			Select("COALESCE(SUM(quantity), 0) AS total").
			Where("delivery_date >= ?", w.since).
			Scan(&row).Error
		if err != nil {
			return nil, TranslateError(err)
		}
		*w.dest = row.Total
	}

	return stats, nil
}

// Summary returns the five most recent invoices and sales orders
func (r *GormDashboardRepository) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	err := r.db.WithContext(ctx).
		Model(&models.SalesInvoice{}).
		Select("sales_invoices.*, customers.customer_name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = sales_invoices.customer_id").
		Order("sales_invoices.created_at DESC").
		Limit(5).
		Find(&summary.RecentInvoices).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	err = r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(5).
		Find(&summary.RecentOrders).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	return summary, nil
}
