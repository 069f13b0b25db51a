package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Employee struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID uuid.UUID `gorm:"type:uuid;not null;index"`

	EmployeeCode string `gorm:"type:varchar(40);not null"`
	LoginID      string `gorm:"type:varchar(40);not null;uniqueIndex"`

	Name        string     `gorm:"type:varchar(120);not null"`
	Phone       string     `gorm:"type:varchar(15);not null"`
	Email       string     `gorm:"type:varchar(120)"`
	Designation string     `gorm:"type:varchar(80);not null"`
	JoiningDate *time.Time `gorm:"type:date"`

	PasswordHash string `gorm:"type:varchar(100);not null"`
	TempPassword string `gorm:"type:varchar(40)"`

	// Employees are never hard-deleted, only flipped to Inactive.
	Status string `gorm:"type:varchar(20);not null;default:'Active';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
