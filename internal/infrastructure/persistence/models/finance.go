package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Aggregate payment states. A nil PaymentStatus counts as pending.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Aggregate is a raw-material (sand/gravel) purchase entry from a vendor
type Aggregate struct {
	AuditModel
	VendorName    string          `gorm:"type:varchar(200);not null" json:"vendor_name" binding:"required"`
	Material      string          `gorm:"type:varchar(100)" json:"material"`
	PurchaseDate  *time.Time      `json:"purchase_date,omitempty"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	Rate          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"rate"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amount"`
	PaymentStatus *string         `gorm:"type:varchar(20);index" json:"payment_status,omitempty"`
	Notes         string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Aggregate) TableName() string {
	return "aggregates"
}

// Cash book transaction types
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// CashBookEntry is a single credit or debit in the vendor's cash book
type CashBookEntry struct {
	AuditModel
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	TransactionType string          `gorm:"type:varchar(10);not null" json:"transaction_type" binding:"required,oneof=credit debit"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amount"`
	Description     string          `gorm:"type:varchar(500)" json:"description"`
	Reference       string          `gorm:"type:varchar(100)" json:"reference"`
}

// TableName returns the table name for GORM
func (CashBookEntry) TableName() string {
	return "cash_book"
}
