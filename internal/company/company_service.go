package company

import (
	"context"

	companyerrors "kamila-hrm/internal/company/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	UpdateLicense(ctx context.Context, id string, req UpdateLicenseRequest) (CompanyResponse, error)
}

type service struct {
	repo    Repository
	checker *LicenseChecker
}

func NewService(repo Repository, checker *LicenseChecker) Service {
	return &service{repo: repo, checker: checker}
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrCompanyNotFound
	}

	return mapToResponse(*company), nil
}

// UpdateLicense is the admin kill-switch: flipping a tenant to suspended
// blocks every authenticated route for that tenant at the license guard.
func (s *service) UpdateLicense(ctx context.Context, id string, req UpdateLicenseRequest) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	if req.Status != LicenseActive && req.Status != LicenseSuspended {
		return CompanyResponse{}, companyerrors.ErrInvalidLicenseStatus
	}

	updated, err := s.repo.UpdateLicenseStatus(ctx, id, req.Status)
	if err != nil {
		return CompanyResponse{}, err
	}
	if !updated {
		return CompanyResponse{}, companyerrors.ErrCompanyNotFound
	}

	if s.checker != nil {
		s.checker.Invalidate(ctx, id)
	}

	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrCompanyNotFound
	}

	return mapToResponse(*company), nil
}

func mapToResponse(company Company) CompanyResponse {
	return CompanyResponse{
		ID:            company.ID.String(),
		Name:          company.Name,
		Email:         company.Email,
		LicenseStatus: company.LicenseStatus,
	}
}
