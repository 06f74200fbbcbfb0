package employee

type CreateEmployeeRequest struct {
	FirstName              string  `json:"first_name" binding:"required"`
	LastName               string  `json:"last_name" binding:"required"`
	Cedula                 string  `json:"cedula" binding:"required"`
	HiringDate             string  `json:"hiring_date" binding:"required"`
	DepartmentID           *string `json:"department_id" binding:"omitempty,uuid"`
	PositionID             string  `json:"position_id" binding:"required,uuid"`
	Location               string  `json:"location" binding:"required,oneof=Central Norte Remoto"`
	BankName               *string `json:"bank_name"`
	AccountType            *string `json:"account_type"`
	EncryptedAccountNumber *string `json:"encrypted_account_number"`
}

type EmployeeFilter struct {
	DepartmentID string `form:"department"`
	PositionID   string `form:"position"`
	Location     string `form:"location"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	DepartmentID *string `json:"department_id,omitempty"`
	PositionID   string  `json:"position_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Cedula       string  `json:"cedula"`
	HiringDate   string  `json:"hiring_date"`
	Location     string  `json:"location"`
	BankName     *string `json:"bank_name,omitempty"`
	AccountType  *string `json:"account_type,omitempty"`
}
