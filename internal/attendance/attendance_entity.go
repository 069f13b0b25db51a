package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
)

type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID      uuid.UUID `gorm:"column:org_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`

	// Date is the civil day of PunchIn in the org's zone.
	Date    time.Time  `gorm:"column:date;type:date;not null;index"`
	PunchIn time.Time  `gorm:"column:punch_in;type:timestamptz;not null"`
	// PunchOut is NULL while the record is open. At most one open record
	// exists per employee.
	PunchOut *time.Time `gorm:"column:punch_out;type:timestamptz"`

	// Each punch carries its own geolocation; closing a record must never
	// touch the punch-in triple.
	PunchInLat     *float64 `gorm:"column:punch_in_lat"`
	PunchInLng     *float64 `gorm:"column:punch_in_lng"`
	PunchInAddress string   `gorm:"column:punch_in_address;type:text"`

	PunchOutLat     *float64 `gorm:"column:punch_out_lat"`
	PunchOutLng     *float64 `gorm:"column:punch_out_lng"`
	PunchOutAddress string   `gorm:"column:punch_out_address;type:text"`

	Status string `gorm:"column:status;type:varchar(20);not null;default:'Present'"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"column:name"`
	Status string    `gorm:"column:status"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
