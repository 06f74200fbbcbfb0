package position

type CreatePositionRequest struct {
	Name       string  `json:"name" binding:"required"`
	BaseSalary float64 `json:"base_salary" binding:"required,gt=0"`
}

type PositionResponse struct {
	ID         string  `json:"id"`
	CompanyID  string  `json:"company_id"`
	Name       string  `json:"name"`
	BaseSalary float64 `json:"base_salary"`
}
