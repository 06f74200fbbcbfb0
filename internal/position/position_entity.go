package position

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Position carries the base monthly salary the payroll engine runs against.
type Position struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name       string         `gorm:"size:255;not null"`
	BaseSalary float64        `gorm:"column:base_salary;type:numeric(14,4);not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
