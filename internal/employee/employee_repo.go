package employee

import (
	"context"

	"kamila-hrm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, employee *Employee) error
	FindAllByCompany(ctx context.Context, companyID string, filter EmployeeFilter) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	PositionBelongsToCompany(ctx context.Context, companyID string, positionID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter EmployeeFilter) ([]Employee, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID))

	if filter.DepartmentID != "" {
		db = db.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.PositionID != "" {
		db = db.Where("position_id = ?", filter.PositionID)
	}
	if filter.Location != "" {
		db = db.Where("location = ?", filter.Location)
	}

	var employees []Employee
	err := db.Order("last_name ASC, first_name ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var employee Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&employee, "id = ?", id).Error
	return &employee, err
}

func (r *repository) PositionBelongsToCompany(ctx context.Context, companyID string, positionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("positions").
		Where("id = ?", positionID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
