package attendance

import (
	"context"

	"kamila-hrm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindOpenByEmployee(ctx context.Context, companyID string, employeeID string) (*Attendance, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	FindEmployeeByCedula(ctx context.Context, cedula string) (*EmployeeRef, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindOpenByEmployee returns the newest punch that has not been closed yet.
func (r *repository) FindOpenByEmployee(ctx context.Context, companyID string, employeeID string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.EmployeeScope(companyID, employeeID)).
		Where("clock_out IS NULL").
		Order("clock_in DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("clock_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// FindEmployeeByCedula resolves a terminal's employee code. Cedulas are
// nationally unique, so the lookup is the one query in this package that
// runs without a tenant scope; the matched row supplies the tenant.
func (r *repository) FindEmployeeByCedula(ctx context.Context, cedula string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Where("cedula = ?", cedula).
		Where("deleted_at IS NULL").
		First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
