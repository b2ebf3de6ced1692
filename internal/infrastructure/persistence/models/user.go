package models

import "time"

// User is an application account able to authenticate
type User struct {
	AuditModel
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"type:varchar(100);not null" json:"-"`
	Email        string     `gorm:"type:varchar(200)" json:"email"`
	FullName     string     `gorm:"type:varchar(200)" json:"full_name"`
	Role         string     `gorm:"type:varchar(50);not null;default:'user'" json:"role"`
	IsActive     int        `gorm:"not null;default:1" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}
