package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditModel provides the common persistence fields shared by every resource.
// created_by/created_at and updated_by/updated_at are stamped by the CRUD core,
// never supplied by callers.
type AuditModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
}

// BeforeCreate assigns a primary key when none was set
func (m *AuditModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// AuditFields exposes the embedded audit columns to the generic CRUD core
func (m *AuditModel) AuditFields() *AuditModel {
	return m
}

// StampCreated records the creating caller
func (m *AuditModel) StampCreated(by uuid.UUID) {
	m.CreatedBy = &by
}

// StampUpdated records the updating caller
func (m *AuditModel) StampUpdated(by uuid.UUID) {
	m.UpdatedBy = &by
}

// Auditable is implemented by every resource model through AuditModel
type Auditable interface {
	AuditFields() *AuditModel
}
