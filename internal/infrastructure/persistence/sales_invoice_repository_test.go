package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

func seedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{CustomerName: name, IsActive: 1}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func invoiceFixture(customerID uuid.UUID, number string) *models.SalesInvoice {
	return &models.SalesInvoice{
		CustomerID:    customerID,
		InvoiceNumber: number,
		InvoiceDate:   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Subtotal:      decimal.NewFromInt(10000),
		TaxAmount:     decimal.NewFromInt(1800),
		TotalAmount:   decimal.NewFromInt(11800),
		Items: []models.SalesInvoiceItem{
			{ItemDescription: "M25 RMC", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(1000), Amount: decimal.NewFromInt(10000)},
		},
	}
}

func TestSalesInvoiceRepository_CreateWithItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSalesInvoiceRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Apex Constructions")
	invoice := invoiceFixture(customer.ID, "INV-2026-001")
	require.NoError(t, repo.Create(ctx, invoice))

	found, err := repo.FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-001", found.InvoiceNumber)
	assert.Equal(t, "Apex Constructions", found.CustomerName)
	require.Len(t, found.Items, 1)
	assert.Equal(t, invoice.ID, found.Items[0].InvoiceID)
}

func TestSalesInvoiceRepository_CreateRollsBackOnItemFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSalesInvoiceRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Apex Constructions")
	invoice := invoiceFixture(customer.ID, "INV-2026-002")

	// Two items with the same preset primary key make the item insert fail
	// after the header insert succeeded.
	dup := uuid.New()
	invoice.Items = []models.SalesInvoiceItem{
		{ID: dup, ItemDescription: "M25 RMC", Amount: decimal.NewFromInt(5000)},
		{ID: dup, ItemDescription: "Pump charges", Amount: decimal.NewFromInt(2000)},
	}
	err := repo.Create(ctx, invoice)
	require.Error(t, err)

	// Neither the header nor any item survives.
	var headers, items int64
	require.NoError(t, db.Model(&models.SalesInvoice{}).Count(&headers).Error)
	require.NoError(t, db.Model(&models.SalesInvoiceItem{}).Count(&items).Error)
	assert.Zero(t, headers)
	assert.Zero(t, items)
}

func TestSalesInvoiceRepository_UpdateReplacesItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSalesInvoiceRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Apex Constructions")
	invoice := invoiceFixture(customer.ID, "INV-2026-003")
	require.NoError(t, repo.Create(ctx, invoice))
	originalItemID := invoice.Items[0].ID

	invoice.Notes = "revised"
	invoice.Items = []models.SalesInvoiceItem{
		{ItemDescription: "M30 RMC", Quantity: decimal.NewFromInt(8), UnitPrice: decimal.NewFromInt(1200), Amount: decimal.NewFromInt(9600)},
		{ItemDescription: "Pump charges", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1500), Amount: decimal.NewFromInt(1500)},
	}
	require.NoError(t, repo.Update(ctx, invoice, true))

	found, err := repo.FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "revised", found.Notes)
	require.Len(t, found.Items, 2)
	for _, item := range found.Items {
		assert.NotEqual(t, originalItemID, item.ID)
	}
}

func TestSalesInvoiceRepository_UpdateKeepsItemsWhenNotReplacing(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSalesInvoiceRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Apex Constructions")
	invoice := invoiceFixture(customer.ID, "INV-2026-004")
	require.NoError(t, repo.Create(ctx, invoice))

	invoice.Notes = "header only"
	invoice.Items = nil
	require.NoError(t, repo.Update(ctx, invoice, false))

	found, err := repo.FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "header only", found.Notes)
	assert.Len(t, found.Items, 1)
}

func TestSalesInvoiceRepository_DeleteRemovesItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSalesInvoiceRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Apex Constructions")
	invoice := invoiceFixture(customer.ID, "INV-2026-005")
	require.NoError(t, repo.Create(ctx, invoice))

	require.NoError(t, repo.Delete(ctx, invoice.ID))

	_, err := repo.FindByID(ctx, invoice.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var items int64
	require.NoError(t, db.Model(&models.SalesInvoiceItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestSalesInvoiceRepository_ListJoinsCustomerName(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSalesInvoiceRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Apex Constructions")
	require.NoError(t, repo.Create(ctx, invoiceFixture(customer.ID, "INV-2026-006")))

	later := invoiceFixture(customer.ID, "INV-2026-007")
	later.InvoiceDate = time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, later))

	invoices, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV-2026-007", invoices[0].InvoiceNumber)
	assert.Equal(t, "Apex Constructions", invoices[0].CustomerName)
}

func TestSalesInvoiceRepository_DuplicateNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormSalesInvoiceRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Apex Constructions")
	require.NoError(t, repo.Create(ctx, invoiceFixture(customer.ID, "INV-2026-008")))

	err := repo.Create(ctx, invoiceFixture(customer.ID, "INV-2026-008"))
	assert.ErrorIs(t, err, shared.ErrDuplicateEntry)
}
