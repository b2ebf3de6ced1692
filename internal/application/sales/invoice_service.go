package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// InvoiceRepository is the storage surface the invoice service needs
type InvoiceRepository interface {
	List(ctx context.Context, page, limit int) ([]models.SalesInvoice, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.SalesInvoice, error)
	Create(ctx context.Context, invoice *models.SalesInvoice) error
	Update(ctx context.Context, invoice *models.SalesInvoice, replaceItems bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceService manages the sales invoice aggregate. Header and line items
// move together: creation and item replacement are all-or-nothing at the
// repository level.
type InvoiceService struct {
	invoices InvoiceRepository
	logger   *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoices InvoiceRepository, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{invoices: invoices, logger: logger}
}

// List returns one page of invoices plus the total count
func (s *InvoiceService) List(ctx context.Context, page, limit int) ([]models.SalesInvoice, int64, error) {
	return s.invoices.List(ctx, page, limit)
}

// Get fetches one invoice with its items
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*models.SalesInvoice, error) {
	return s.invoices.FindByID(ctx, id)
}

// Create persists a new invoice and its items, stamped with the caller.
// Zero header totals are derived from the items so partial payloads stay
// consistent.
func (s *InvoiceService) Create(ctx context.Context, invoice *models.SalesInvoice, by uuid.UUID) error {
	if invoice.InvoiceNumber == "" {
		return shared.ValidationError("invoice_number is required")
	}
	if invoice.CustomerID == uuid.Nil {
		return shared.ValidationError("customer_id is required")
	}

	deriveTotals(invoice)
	invoice.StampCreated(by)

	if err := s.invoices.Create(ctx, invoice); err != nil {
		return err
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber))
	return nil
}

// Update overwrites an invoice. The stored creation audit fields are carried
// over; when the payload carries items, the stored item set is replaced
// wholesale.
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, invoice *models.SalesInvoice, by uuid.UUID) error {
	existing, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}

	invoice.ID = existing.ID
	invoice.CreatedAt = existing.CreatedAt
	invoice.CreatedBy = existing.CreatedBy
	invoice.StampUpdated(by)
	deriveTotals(invoice)

	return s.invoices.Update(ctx, invoice, invoice.Items != nil)
}

// Delete removes an invoice and its items
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.invoices.Delete(ctx, existing.ID)
}

// deriveTotals fills zero header amounts from the line items. Explicit header
// amounts win; the original records kept them caller-supplied.
func deriveTotals(invoice *models.SalesInvoice) {
	if len(invoice.Items) == 0 {
		return
	}

	if invoice.Subtotal.IsZero() {
		subtotal := decimal.Zero
		for _, item := range invoice.Items {
			subtotal = subtotal.Add(item.Amount)
		}
		invoice.Subtotal = subtotal
	}
	if invoice.TotalAmount.IsZero() {
		invoice.TotalAmount = invoice.Subtotal.
			Add(invoice.TaxAmount).
			Sub(invoice.DiscountAmount)
	}
}
