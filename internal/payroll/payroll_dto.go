package payroll

type CreatePayrollRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

type ApprovePayrollRequest struct {
	OTP string `json:"otp" binding:"required"`
}

type PayrollResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	EmployeeID   string  `json:"employee_id"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`
	GrossSalary  float64 `json:"gross_salary"`
	SFSDeduction float64 `json:"sfs_deduction"`
	AFPDeduction float64 `json:"afp_deduction"`
	ISRDeduction float64 `json:"isr_deduction"`
	NetSalary    float64 `json:"net_salary"`
	EmployerSFS  float64 `json:"employer_sfs"`
	EmployerAFP  float64 `json:"employer_afp"`
	EmployerSRL  float64 `json:"employer_srl"`
	Infotep      float64 `json:"infotep"`
	Status       string  `json:"status"`
	OTPVerified  bool    `json:"otp_verified"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
}

type PayrollDeductionsBreakdown struct {
	SFS float64 `json:"sfs"`
	AFP float64 `json:"afp"`
	ISR float64 `json:"isr"`
}

type PayrollEmployerBreakdown struct {
	SFS     float64 `json:"sfs"`
	AFP     float64 `json:"afp"`
	SRL     float64 `json:"srl"`
	Infotep float64 `json:"infotep"`
}

type PayrollBreakdownResponse struct {
	ID                    string                     `json:"id"`
	Gross                 float64                    `json:"gross"`
	Deductions            PayrollDeductionsBreakdown `json:"deductions"`
	Net                   float64                    `json:"net"`
	EmployerContributions PayrollEmployerBreakdown   `json:"employer_contributions"`
}
