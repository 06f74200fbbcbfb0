package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LicenseActive    = "active"
	LicenseSuspended = "suspended"
)

type Company struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(150);not null"`
	Email         string         `gorm:"type:varchar(255);index"`
	LicenseStatus string         `gorm:"column:license_status;type:varchar(20);not null;default:'active'"`
	CreatedAt     time.Time      `gorm:"not null;default:now()"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}
