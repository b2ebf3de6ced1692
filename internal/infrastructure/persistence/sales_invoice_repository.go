package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// GormSalesInvoiceRepository implements sales invoice storage using GORM.
// The invoice header and its line items form one aggregate: writes touching
// both happen in a single transaction, and items are replaced wholesale on
// update rather than diffed.
type GormSalesInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSalesInvoiceRepository creates a new GormSalesInvoiceRepository
func NewGormSalesInvoiceRepository(db *gorm.DB) *GormSalesInvoiceRepository {
	return &GormSalesInvoiceRepository{db: db}
}

// List returns one page of invoice headers with the customer name joined in,
// newest invoice date first, plus the total count.
func (r *GormSalesInvoiceRepository) List(ctx context.Context, page, limit int) ([]models.SalesInvoice, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SalesInvoice{}).Count(&total).Error; err != nil {
		return nil, 0, TranslateError(err)
	}

	var invoices []models.SalesInvoice
	err := r.db.WithContext(ctx).
		Model(&models.SalesInvoice{}).
		Select("sales_invoices.*, customers.customer_name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = sales_invoices.customer_id").
		Order("sales_invoices.invoice_date DESC, sales_invoices.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, TranslateError(err)
	}

	return invoices, total, nil
}

// FindByID fetches one invoice with its line items and customer name
func (r *GormSalesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.SalesInvoice, error) {
	var invoice models.SalesInvoice
	err := r.db.WithContext(ctx).
		Model(&models.SalesInvoice{}).
		Select("sales_invoices.*, customers.customer_name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = sales_invoices.customer_id").
		Where("sales_invoices.id = ?", id).
		First(&invoice).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	err = r.db.WithContext(ctx).
		Where("invoice_id = ?", invoice.ID).
		Find(&invoice.Items).Error
	if err != nil {
		return nil, TranslateError(err)
	}

	return &invoice, nil
}

// Exists reports whether an invoice header exists
func (r *GormSalesInvoiceRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SalesInvoice{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, TranslateError(err)
	}
	return count > 0, nil
}

// Create inserts the invoice header and all line items in one transaction.
// If any item insert fails, the header does not persist.
func (r *GormSalesInvoiceRepository) Create(ctx context.Context, invoice *models.SalesInvoice) error {
	items := invoice.Items
	invoice.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	invoice.Items = items
	return TranslateError(err)
}

// Update overwrites the invoice header and, when items are supplied, replaces
// the full item set, all within one transaction.
func (r *GormSalesInvoiceRepository) Update(ctx context.Context, invoice *models.SalesInvoice, replaceItems bool) error {
	items := invoice.Items
	invoice.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(invoice).Error; err != nil {
			return err
		}
		if !replaceItems {
			return nil
		}
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.SalesInvoiceItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.Nil
			items[i].InvoiceID = invoice.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	invoice.Items = items
	return TranslateError(err)
}

// Delete removes the line items and then the header (hard delete)
func (r *GormSalesInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.SalesInvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SalesInvoice{}, "id = ?", id).Error
	})
	return TranslateError(err)
}
