package systems

import (
	"context"
	"net/http"

	"kamila-hrm/internal/shared/apperror"

	"github.com/google/uuid"
)

var errInvalidCompanyID = apperror.New(
	apperror.CodeInvalidInput,
	"invalid company id",
	http.StatusBadRequest,
)

type Service interface {
	GetInventory(ctx context.Context, companyID string) ([]SoftwareLicenseResponse, error)
	GetBudget(ctx context.Context, companyID string) (*SoftwareBudgetResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetInventory(ctx context.Context, companyID string) ([]SoftwareLicenseResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, errInvalidCompanyID
	}

	licenses, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]SoftwareLicenseResponse, 0, len(licenses))
	for i := range licenses {
		responses = append(responses, mapToResponse(&licenses[i]))
	}
	return responses, nil
}

func (s *service) GetBudget(ctx context.Context, companyID string) (*SoftwareBudgetResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, errInvalidCompanyID
	}

	budget, err := s.repo.BudgetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &SoftwareBudgetResponse{
		MonthlySpend: budget.MonthlySpend,
		AnnualSpend:  budget.AnnualSpend,
		TotalApps:    budget.TotalApps,
	}, nil
}

func mapToResponse(l *SoftwareLicense) SoftwareLicenseResponse {
	resp := SoftwareLicenseResponse{
		ID:          l.ID.String(),
		CompanyID:   l.CompanyID.String(),
		Name:        l.Name,
		Vendor:      l.Vendor,
		SeatCount:   l.SeatCount,
		MonthlyCost: l.MonthlyCost,
	}
	if l.RenewalDate != nil {
		d := l.RenewalDate.Format("2006-01-02")
		resp.RenewalDate = &d
	}
	return resp
}
