package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// CashBookSummary carries the rolled-up credit, debit, and net balance of the
// cash book over a date window
type CashBookSummary struct {
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	Balance     decimal.Decimal `json:"balance"`
}

// GormCashBookRepository implements cash book storage using GORM
type GormCashBookRepository struct {
	*CRUDRepository[models.CashBookEntry]
}

// NewGormCashBookRepository creates a new GormCashBookRepository
func NewGormCashBookRepository(db *gorm.DB) *GormCashBookRepository {
	return &GormCashBookRepository{
		CRUDRepository: NewCRUDRepository[models.CashBookEntry](db),
	}
}

// Summary totals credits and debits, optionally bounded by transaction date.
// Nil bounds leave that side of the window open.
func (r *GormCashBookRepository) Summary(ctx context.Context, start, end *time.Time) (*CashBookSummary, error) {
	query := r.DB().WithContext(ctx).Model(&models.CashBookEntry{})
	if start != nil {
		query = query.Where("transaction_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("transaction_date <= ?", *end)
	}

	var row struct {
		TotalCredit decimal.Decimal
		TotalDebit  decimal.Decimal
	}
	err := query.
		Select(
			"COALESCE(SUM(CASE WHEN transaction_type = ? THEN amount ELSE 0 END), 0) AS total_credit, "+
				"COALESCE(SUM(CASE WHEN transaction_type = ? THEN amount ELSE 0 END), 0) AS total_debit",
			models.TransactionTypeCredit, models.TransactionTypeDebit,
		).
		Scan(&row).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	return &CashBookSummary{
		TotalCredit: row.TotalCredit,
		TotalDebit:  row.TotalDebit,
		Balance:     row.TotalCredit.Sub(row.TotalDebit),
	}, nil
}
