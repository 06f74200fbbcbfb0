package payroll

import (
	"time"

	"github.com/google/uuid"
)

// PayrollResult is one computed payroll entry for an employee and period.
// Rows are never deleted; the only mutation after insert is the single
// pending -> approved transition performed by Approve.
type PayrollResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_payroll_company_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	// Statutory amounts carry the engine's fractional precision; net_salary
	// is always gross minus the employee-side deductions, recomputed at
	// creation and never accepted from a caller.
	GrossSalary  float64 `gorm:"type:numeric(14,4);not null"`
	SFSDeduction float64 `gorm:"column:sfs_deduction;type:numeric(14,4);not null"`
	AFPDeduction float64 `gorm:"column:afp_deduction;type:numeric(14,4);not null"`
	ISRDeduction float64 `gorm:"column:isr_deduction;type:numeric(14,4);not null"`
	NetSalary    float64 `gorm:"type:numeric(14,4);not null"`
	EmployerSFS  float64 `gorm:"column:employer_sfs;type:numeric(14,4);not null"`
	EmployerAFP  float64 `gorm:"column:employer_afp;type:numeric(14,4);not null"`
	EmployerSRL  float64 `gorm:"column:employer_srl;type:numeric(14,4);not null"`
	Infotep      float64 `gorm:"column:infotep;type:numeric(14,4);not null"`

	Status      string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_payroll_company_status"`
	OTPVerified bool       `gorm:"column:otp_verified;not null;default:false"`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollResult) TableName() string {
	return "payroll_results"
}
