package finance

import (
	"context"
	"time"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// dateLayout is the wire format for the cash book summary window
const dateLayout = "2006-01-02"

// CashBookRepository is the storage surface the cash book service needs
type CashBookRepository interface {
	Summary(ctx context.Context, start, end *time.Time) (*persistence.CashBookSummary, error)
}

// AggregateRepository is the storage surface the aggregate service needs
type AggregateRepository interface {
	TotalsByVendor(ctx context.Context) ([]persistence.VendorTotal, error)
	PaymentPending(ctx context.Context) ([]models.Aggregate, error)
}

// CashBookService rolls up the cash book
type CashBookService struct {
	entries CashBookRepository
}

// NewCashBookService creates a new CashBookService
func NewCashBookService(entries CashBookRepository) *CashBookService {
	return &CashBookService{entries: entries}
}

// Summary totals credits and debits over an optional date window. Dates arrive
// as YYYY-MM-DD strings; empty strings leave that bound open, and the end date
// is inclusive of the whole day.
func (s *CashBookService) Summary(ctx context.Context, startDate, endDate string) (*persistence.CashBookSummary, error) {
	var start, end *time.Time

	if startDate != "" {
		parsed, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return nil, shared.ValidationError("start_date must be in YYYY-MM-DD format")
		}
		start = &parsed
	}
	if endDate != "" {
		parsed, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return nil, shared.ValidationError("end_date must be in YYYY-MM-DD format")
		}
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		end = &endOfDay
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, shared.ValidationError("end_date cannot be before start_date")
	}

	return s.entries.Summary(ctx, start, end)
}

// AggregateService rolls up raw-material purchases
type AggregateService struct {
	aggregates AggregateRepository
}

// NewAggregateService creates a new AggregateService
func NewAggregateService(aggregates AggregateRepository) *AggregateService {
	return &AggregateService{aggregates: aggregates}
}

// TotalsByVendor sums purchased quantity and amount per vendor
func (s *AggregateService) TotalsByVendor(ctx context.Context) ([]persistence.VendorTotal, error) {
	return s.aggregates.TotalsByVendor(ctx)
}

// PaymentPending lists purchases whose payment is outstanding
func (s *AggregateService) PaymentPending(ctx context.Context) ([]models.Aggregate, error) {
	return s.aggregates.PaymentPending(ctx)
}
