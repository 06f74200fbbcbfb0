package systems

type SoftwareLicenseResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Vendor      string  `json:"vendor"`
	SeatCount   int     `json:"seat_count"`
	MonthlyCost float64 `json:"monthly_cost"`
	RenewalDate *string `json:"renewal_date,omitempty"`
}

type SoftwareBudgetResponse struct {
	MonthlySpend float64 `json:"monthly_spend"`
	AnnualSpend  float64 `json:"annual_spend"`
	TotalApps    int64   `json:"total_apps"`
}
