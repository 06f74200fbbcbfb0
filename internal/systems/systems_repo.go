package systems

import (
	"context"

	"kamila-hrm/internal/tenant"

	"gorm.io/gorm"
)

type SoftwareBudget struct {
	MonthlySpend float64
	AnnualSpend  float64
	TotalApps    int64
}

//go:generate mockgen -source=systems_repo.go -destination=mock/systems_repo_mock.go -package=mock
type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]SoftwareLicense, error)
	BudgetByCompany(ctx context.Context, companyID string) (*SoftwareBudget, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]SoftwareLicense, error) {
	var licenses []SoftwareLicense
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&licenses).Error
	return licenses, err
}

func (r *repository) BudgetByCompany(ctx context.Context, companyID string) (*SoftwareBudget, error) {
	var budget SoftwareBudget
	err := r.db.WithContext(ctx).
		Model(&SoftwareLicense{}).
		Select("COALESCE(SUM(monthly_cost), 0) AS monthly_spend, COALESCE(SUM(monthly_cost * 12), 0) AS annual_spend, COUNT(*) AS total_apps").
		Scopes(tenant.Scope(companyID)).
		Scan(&budget).Error
	if err != nil {
		return nil, err
	}
	return &budget, nil
}
