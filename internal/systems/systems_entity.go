package systems

import (
	"time"

	"github.com/google/uuid"
)

type SoftwareLicense struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string     `gorm:"type:varchar(120);not null"`
	Vendor      string     `gorm:"type:varchar(120)"`
	SeatCount   int        `gorm:"not null;default:1"`
	MonthlyCost float64    `gorm:"type:numeric(14,4);not null"`
	RenewalDate *time.Time `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SoftwareLicense) TableName() string {
	return "software_licenses"
}
