package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Leave struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`

	FromDate time.Time `gorm:"type:date;not null"`
	ToDate   time.Time `gorm:"type:date;not null"`
	Days     int       `gorm:"not null"`
	Reason   string    `gorm:"type:text;not null"`

	Status  string `gorm:"type:varchar(20);not null;default:'Pending';index"`
	Remarks string `gorm:"type:text"`

	// DecidedBy holds the org principal that approved or rejected.
	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	LeaveType *LeaveType   `gorm:"foreignKey:LeaveTypeID;references:ID"`
	Employee  *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

type LeaveType struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID uuid.UUID `gorm:"type:uuid;not null;index"`

	Code        string `gorm:"type:varchar(20);not null"`
	Name        string `gorm:"type:varchar(80);not null"`
	AnnualQuota int    `gorm:"not null"`
	IsPaid      bool   `gorm:"not null;default:true"`
	IsActive    bool   `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// LeaveBalance carries explicit allocated/used/remaining counters. The
// remaining column is only ever moved by the allocation and decide paths,
// never recomputed from history.
type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`

	Allocated int `gorm:"not null;default:0"`
	Used      int `gorm:"not null;default:0"`
	Remaining int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
