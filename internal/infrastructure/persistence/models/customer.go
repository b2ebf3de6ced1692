package models

// Customer is a buyer of ready-mix concrete. Customers are soft-deleted:
// delete marks is_active=0 instead of removing the row.
type Customer struct {
	AuditModel
	CustomerName  string `gorm:"type:varchar(200);not null" json:"customer_name" binding:"required"`
	ContactPerson string `gorm:"type:varchar(100)" json:"contact_person"`
	Phone         string `gorm:"type:varchar(50)" json:"phone"`
	Email         string `gorm:"type:varchar(200)" json:"email" binding:"omitempty,email"`
	GSTNumber     string `gorm:"type:varchar(50)" json:"gst_number"`
	Address       string `gorm:"type:varchar(500)" json:"address"`
	City          string `gorm:"type:varchar(100)" json:"city"`
	State         string `gorm:"type:varchar(100)" json:"state"`
	Pincode       string `gorm:"type:varchar(20)" json:"pincode"`
	IsActive      int    `gorm:"not null;default:1" json:"is_active"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}
