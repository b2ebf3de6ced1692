package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order lifecycle states shared by sales and purchase orders
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// SalesOrder is a confirmed concrete supply order from a customer
type SalesOrder struct {
	AuditModel
	OrderNumber     string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	DeliveryDate    *time.Time      `json:"delivery_date,omitempty"`
	Grade           string          `gorm:"type:varchar(20)" json:"grade"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	Rate            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"rate"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	DeliveryAddress string          `gorm:"type:varchar(500)" json:"delivery_address"`
	Notes           string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// PurchaseOrder is a raw-material order placed with a vendor
type PurchaseOrder struct {
	AuditModel
	PONumber     string          `gorm:"column:po_number;type:varchar(50);not null;uniqueIndex" json:"po_number"`
	VendorName   string          `gorm:"type:varchar(200);not null" json:"vendor_name"`
	OrderDate    time.Time       `gorm:"not null" json:"order_date"`
	Material     string          `gorm:"type:varchar(100)" json:"material"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	Rate         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"rate"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	ExpectedDate *time.Time      `json:"expected_date,omitempty"`
	Notes        string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// Quotation is a priced offer sent to a customer before an order
type Quotation struct {
	AuditModel
	QuotationNumber string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"quotation_number"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	QuotationDate   time.Time       `gorm:"not null" json:"quotation_date"`
	ValidUntil      *time.Time      `json:"valid_until,omitempty"`
	Grade           string          `gorm:"type:varchar(20)" json:"grade"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	Rate            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"rate"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	Status          string          `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Notes           string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Quotation) TableName() string {
	return "quotations"
}
