package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MixDesign defines a concrete grade and its target properties
type MixDesign struct {
	AuditModel
	DesignCode     string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"design_code"`
	Grade          string          `gorm:"type:varchar(20);not null" json:"grade"`
	Description    string          `gorm:"type:varchar(500)" json:"description"`
	TargetStrength decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0" json:"target_strength"`
	Slump          decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0" json:"slump"`
}

// TableName returns the table name for GORM
func (MixDesign) TableName() string {
	return "mix_designs"
}

// Recipe is the per-cubic-metre material proportioning for a mix design
type Recipe struct {
	AuditModel
	RecipeName     string          `gorm:"type:varchar(100);not null" json:"recipe_name"`
	MixDesignID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"mix_design_id"`
	Cement         decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"cement"`
	Sand           decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"sand"`
	Aggregate20mm  decimal.Decimal `gorm:"column:aggregate_20mm;type:decimal(10,3);not null;default:0" json:"aggregate_20mm"`
	Aggregate10mm  decimal.Decimal `gorm:"column:aggregate_10mm;type:decimal(10,3);not null;default:0" json:"aggregate_10mm"`
	Water          decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"water"`
	Admixture      decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"admixture"`
	WaterCementRatio decimal.Decimal `gorm:"type:decimal(5,3);not null;default:0" json:"water_cement_ratio"`
}

// TableName returns the table name for GORM
func (Recipe) TableName() string {
	return "recipes"
}

// CubeTest is a compressive-strength test of cast concrete cubes
type CubeTest struct {
	AuditModel
	MixDesignID uuid.UUID       `gorm:"type:uuid;not null;index" json:"mix_design_id"`
	ChallanID   *uuid.UUID      `gorm:"type:uuid;index" json:"challan_id,omitempty"`
	CastingDate time.Time       `gorm:"not null" json:"casting_date"`
	TestingDate *time.Time      `json:"testing_date,omitempty"`
	AgeDays     int             `gorm:"not null;default:28" json:"age_days"`
	Strength    decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0" json:"strength"`
	Result      string          `gorm:"type:varchar(20)" json:"result"`
	Notes       string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (CubeTest) TableName() string {
	return "cube_tests"
}

// BatchList records one production batch from the batching plant
type BatchList struct {
	AuditModel
	BatchNumber string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"batch_number"`
	BatchDate   time.Time       `gorm:"not null" json:"batch_date"`
	MixDesignID uuid.UUID       `gorm:"type:uuid;not null;index" json:"mix_design_id"`
	ChallanID   *uuid.UUID      `gorm:"type:uuid;index" json:"challan_id,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0" json:"quantity"`
	Notes       string          `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (BatchList) TableName() string {
	return "batch_lists"
}
