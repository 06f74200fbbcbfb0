package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	PositionID   uuid.UUID  `gorm:"type:uuid;not null;index"`

	FirstName  string    `gorm:"type:varchar(120);not null"`
	LastName   string    `gorm:"type:varchar(120);not null"`
	Cedula     string    `gorm:"type:varchar(20);not null;index"`
	HiringDate time.Time `gorm:"type:date;not null"`
	Location   string    `gorm:"type:varchar(20);not null"`

	// Payout details; the account number arrives encrypted from the client
	// and is stored opaque.
	BankName               *string `gorm:"type:varchar(120)"`
	AccountType            *string `gorm:"type:varchar(30)"`
	EncryptedAccountNumber *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
