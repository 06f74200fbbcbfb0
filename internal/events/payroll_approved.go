package events

import "time"

const PayrollApprovedTopic = "hr.payroll.approved.v1"

// PayrollApprovedEvent is published after a payroll passes the OTP gate.
// Downstream disbursement systems consume it; this service never talks to
// banking rails itself.
type PayrollApprovedEvent struct {
	EventType  string    `json:"event_type"`
	PayrollID  string    `json:"payroll_id"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	NetSalary  float64   `json:"net_salary"`
	ApprovedBy string    `json:"approved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
