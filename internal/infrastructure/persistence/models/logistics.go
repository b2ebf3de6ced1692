package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryChallan records one truckload of concrete delivered to a site
type DeliveryChallan struct {
	AuditModel
	ChallanNumber   string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"challan_number"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	SalesOrderID    *uuid.UUID      `gorm:"type:uuid;index" json:"sales_order_id,omitempty"`
	DeliveryDate    time.Time       `gorm:"not null;index" json:"delivery_date"`
	VehicleNumber   string          `gorm:"type:varchar(50)" json:"vehicle_number"`
	DriverName      string          `gorm:"type:varchar(100)" json:"driver_name"`
	Grade           string          `gorm:"type:varchar(20)" json:"grade"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	DeliveryAddress string          `gorm:"type:varchar(500)" json:"delivery_address"`
	Notes           string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (DeliveryChallan) TableName() string {
	return "delivery_challans"
}

// WeightBridgeReport is a weigh-bridge ticket for a vehicle entering or
// leaving the plant
type WeightBridgeReport struct {
	AuditModel
	TicketNumber  string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"ticket_number"`
	VehicleNumber string          `gorm:"type:varchar(50);not null" json:"vehicle_number"`
	Material      string          `gorm:"type:varchar(100)" json:"material"`
	GrossWeight   decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"gross_weight"`
	TareWeight    decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"tare_weight"`
	NetWeight     decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"net_weight"`
	WeighDate     time.Time       `gorm:"not null" json:"weigh_date"`
	Notes         string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (WeightBridgeReport) TableName() string {
	return "weight_bridge_reports"
}
