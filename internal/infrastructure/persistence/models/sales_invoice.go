package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesInvoice is the invoice header. Line items form a one-to-many aggregate
// and are replaced wholesale on update rather than diffed.
type SalesInvoice struct {
	AuditModel
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	InvoiceNumber  string             `gorm:"type:varchar(50);not null;uniqueIndex" json:"invoice_number"`
	InvoiceDate    time.Time          `gorm:"not null;index" json:"invoice_date"`
	DueDate        *time.Time         `json:"due_date,omitempty"`
	Subtotal       decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0" json:"subtotal"`
	TaxAmount      decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0" json:"tax_amount"`
	DiscountAmount decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0" json:"discount_amount"`
	TotalAmount    decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Notes          string             `gorm:"type:text" json:"notes"`
	Items          []SalesInvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`

	// Filled by list/get queries via join; scan-only, not a column.
	CustomerName string `gorm:"->;-:migration" json:"customer_name,omitempty"`
}

// TableName returns the table name for GORM
func (SalesInvoice) TableName() string {
	return "sales_invoices"
}

// SalesInvoiceItem is one line of a sales invoice
type SalesInvoiceItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ItemDescription string          `gorm:"type:varchar(500);not null" json:"item_description"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"unit_price"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amount"`
}

// TableName returns the table name for GORM
func (SalesInvoiceItem) TableName() string {
	return "sales_invoice_items"
}

// BeforeCreate assigns a primary key when none was set
func (i *SalesInvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
