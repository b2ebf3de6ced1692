package sales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) List(ctx context.Context, page, limit int) ([]models.SalesInvoice, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]models.SalesInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *mockInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.SalesInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalesInvoice), args.Error(1)
}

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *models.SalesInvoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *mockInvoiceRepo) Update(ctx context.Context, invoice *models.SalesInvoice, replaceItems bool) error {
	return m.Called(ctx, invoice, replaceItems).Error(0)
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestInvoiceService_CreateStampsAndDerivesTotals(t *testing.T) {
	repo := new(mockInvoiceRepo)
	svc := NewInvoiceService(repo, zap.NewNop())
	by := uuid.New()

	invoice := &models.SalesInvoice{
		CustomerID:    uuid.New(),
		InvoiceNumber: "INV-2026-001",
		InvoiceDate:   time.Now(),
		TaxAmount:     decimal.NewFromInt(1800),
		Items: []models.SalesInvoiceItem{
			{ItemDescription: "M25 RMC", Amount: decimal.NewFromInt(8000)},
			{ItemDescription: "Pump charges", Amount: decimal.NewFromInt(2000)},
		},
	}
	repo.On("Create", mock.Anything, invoice).Return(nil)

	require.NoError(t, svc.Create(context.Background(), invoice, by))

	require.NotNil(t, invoice.CreatedBy)
	assert.Equal(t, by, *invoice.CreatedBy)
	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromInt(11800)))
	repo.AssertExpectations(t)
}

func TestInvoiceService_CreateKeepsExplicitTotals(t *testing.T) {
	repo := new(mockInvoiceRepo)
	svc := NewInvoiceService(repo, zap.NewNop())

	invoice := &models.SalesInvoice{
		CustomerID:    uuid.New(),
		InvoiceNumber: "INV-2026-002",
		Subtotal:      decimal.NewFromInt(9500),
		TotalAmount:   decimal.NewFromInt(9500),
		Items: []models.SalesInvoiceItem{
			{ItemDescription: "M25 RMC", Amount: decimal.NewFromInt(8000)},
		},
	}
	repo.On("Create", mock.Anything, invoice).Return(nil)

	require.NoError(t, svc.Create(context.Background(), invoice, uuid.New()))
	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(9500)))
	assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromInt(9500)))
}

func TestInvoiceService_CreateValidation(t *testing.T) {
	repo := new(mockInvoiceRepo)
	svc := NewInvoiceService(repo, zap.NewNop())
	ctx := context.Background()

	err := svc.Create(ctx, &models.SalesInvoice{CustomerID: uuid.New()}, uuid.New())
	require.Error(t, err)
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "VALIDATION_ERROR", derr.Code)

	err = svc.Create(ctx, &models.SalesInvoice{InvoiceNumber: "INV-X"}, uuid.New())
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "VALIDATION_ERROR", derr.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestInvoiceService_UpdateCarriesCreationAudit(t *testing.T) {
	repo := new(mockInvoiceRepo)
	svc := NewInvoiceService(repo, zap.NewNop())

	creator := uuid.New()
	updater := uuid.New()
	existing := &models.SalesInvoice{InvoiceNumber: "INV-2026-003"}
	existing.ID = uuid.New()
	existing.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	existing.CreatedBy = &creator

	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything, true).Return(nil)

	incoming := &models.SalesInvoice{
		CustomerID:    uuid.New(),
		InvoiceNumber: "INV-2026-003",
		Items:         []models.SalesInvoiceItem{{ItemDescription: "M30 RMC", Amount: decimal.NewFromInt(5000)}},
	}
	require.NoError(t, svc.Update(context.Background(), existing.ID, incoming, updater))

	assert.Equal(t, existing.ID, incoming.ID)
	assert.Equal(t, existing.CreatedAt, incoming.CreatedAt)
	assert.Equal(t, &creator, incoming.CreatedBy)
	require.NotNil(t, incoming.UpdatedBy)
	assert.Equal(t, updater, *incoming.UpdatedBy)
}

func TestInvoiceService_UpdateWithoutItemsKeepsStoredOnes(t *testing.T) {
	repo := new(mockInvoiceRepo)
	svc := NewInvoiceService(repo, zap.NewNop())

	existing := &models.SalesInvoice{InvoiceNumber: "INV-2026-004"}
	existing.ID = uuid.New()
	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything, false).Return(nil)

	incoming := &models.SalesInvoice{CustomerID: uuid.New(), InvoiceNumber: "INV-2026-004"}
	require.NoError(t, svc.Update(context.Background(), existing.ID, incoming, uuid.New()))
	repo.AssertCalled(t, "Update", mock.Anything, mock.Anything, false)
}

func TestInvoiceService_UpdateNotFound(t *testing.T) {
	repo := new(mockInvoiceRepo)
	svc := NewInvoiceService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	err := svc.Update(context.Background(), id, &models.SalesInvoice{}, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Update")
}

func TestInvoiceService_DeleteNotFound(t *testing.T) {
	repo := new(mockInvoiceRepo)
	svc := NewInvoiceService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Delete")
}
