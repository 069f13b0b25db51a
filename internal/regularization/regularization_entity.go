package regularization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

type Request struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	// AttendanceID references the record whose punch pair the request wants
	// corrected; nil when no record exists for the day.
	AttendanceID *uuid.UUID `gorm:"type:uuid"`
	Date         time.Time  `gorm:"type:date;not null;index"`
	Reason       string     `gorm:"type:text;not null"`

	// Snapshot of the punch pair at request time, so the review screen shows
	// what the employee was looking at even if the ledger moves later.
	OriginalPunchIn  *time.Time `gorm:"type:timestamptz"`
	OriginalPunchOut *time.Time `gorm:"type:timestamptz"`

	RequestedPunchIn  time.Time `gorm:"type:timestamptz;not null"`
	RequestedPunchOut time.Time `gorm:"type:timestamptz;not null"`

	Status  string `gorm:"type:varchar(20);not null;default:'Pending';index"`
	Remarks string `gorm:"type:text"`

	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Request) TableName() string {
	return "regularization_requests"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
