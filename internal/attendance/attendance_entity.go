package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusOnTime = "on_time"
	StatusLate   = "late"

	SourceManual    = "manual"
	SourceBiometric = "biometric"
)

type Attendance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	ClockIn  time.Time  `gorm:"type:timestamptz;not null"`
	ClockOut *time.Time `gorm:"type:timestamptz"`

	// Punch coordinates as reported by the client; absent for terminal
	// punches, which carry a device id instead.
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`

	Status   string `gorm:"type:varchar(20);not null"`
	Source   string `gorm:"type:varchar(20);not null"`
	DeviceID string `gorm:"type:varchar(100);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef is the slice of the employees table the biometric webhook
// needs to resolve a cedula into an identity and a tenant.
type EmployeeRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid"`
	Cedula    string
}

func (EmployeeRef) TableName() string {
	return "employees"
}
