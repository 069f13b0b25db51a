package organization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name  string    `gorm:"type:varchar(120);not null"`
	Email string    `gorm:"type:varchar(120);uniqueIndex"`

	// Attendance policy knobs. Shift start and half-day threshold vary per
	// organization, so nothing here is hardcoded in the classifier.
	Timezone                string  `gorm:"type:varchar(64);not null;default:'Asia/Kolkata'"`
	ShiftStart              string  `gorm:"type:varchar(5);not null;default:'09:30'"`
	HalfDayHours            float64 `gorm:"type:numeric;not null;default:4"`
	WeeklyOffDay            int     `gorm:"type:smallint;not null;default:0"` // 0 = Sunday
	IsRegularizationEnabled bool    `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Organization) TableName() string {
	return "organizations"
}

// ShiftConfig is the classifier-facing view of the policy knobs.
type ShiftConfig struct {
	ShiftStart   string
	HalfDayHours float64
	WeeklyOffDay time.Weekday
	Timezone     string
}

func (o Organization) ShiftConfig() ShiftConfig {
	return ShiftConfig{
		ShiftStart:   o.ShiftStart,
		HalfDayHours: o.HalfDayHours,
		WeeklyOffDay: time.Weekday(o.WeeklyOffDay),
		Timezone:     o.Timezone,
	}
}
