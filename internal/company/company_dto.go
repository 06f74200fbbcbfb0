package company

type UpdateLicenseRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

type CompanyResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	LicenseStatus string `json:"license_status"`
}
