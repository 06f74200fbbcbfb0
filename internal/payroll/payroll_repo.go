package payroll

import (
	"context"
	"database/sql"
	"time"

	"kamila-hrm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, result *PayrollResult) error
	FindAllByCompany(ctx context.Context, companyID string) ([]PayrollResult, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollResult, error)
	FindBaseSalary(ctx context.Context, companyID string, employeeID string) (float64, error)
	MarkApproved(ctx context.Context, companyID string, id string, approverID string, approvedAt time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, result *PayrollResult) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(result).Error
	}

	query := `
INSERT INTO payroll_results (
	id, company_id, employee_id, period_start, period_end,
	gross_salary, sfs_deduction, afp_deduction, isr_deduction, net_salary,
	employer_sfs, employer_afp, employer_srl, infotep,
	status, otp_verified, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())
`
	_, err := r.tx.ExecContext(
		ctx, query,
		result.ID, result.CompanyID, result.EmployeeID, result.PeriodStart, result.PeriodEnd,
		result.GrossSalary, result.SFSDeduction, result.AFPDeduction, result.ISRDeduction, result.NetSalary,
		result.EmployerSFS, result.EmployerAFP, result.EmployerSRL, result.Infotep,
		result.Status, result.OTPVerified,
	)
	return err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]PayrollResult, error) {
	var results []PayrollResult
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("period_start DESC, created_at DESC").
		Find(&results).Error
	return results, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollResult, error) {
	var result PayrollResult
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&result, "id = ?", id).Error
	return &result, err
}

// FindBaseSalary resolves the gross monthly salary for an employee through
// its position, scoped to the tenant. A miss means the caller cannot run
// payroll for that employee.
func (r *repository) FindBaseSalary(ctx context.Context, companyID string, employeeID string) (float64, error) {
	query := `
SELECT p.base_salary
FROM employees e
JOIN positions p ON p.id = e.position_id
WHERE e.id = ?
	AND e.company_id = ?
	AND e.deleted_at IS NULL
`
	var baseSalary float64
	res := r.db.WithContext(ctx).Raw(query, employeeID, companyID).Scan(&baseSalary)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return baseSalary, nil
}

// MarkApproved performs the compare-and-swap transition. The status guard in
// the WHERE clause is what makes two concurrent approvals mutually exclusive:
// whichever update runs second matches zero rows. The approval timestamp is
// bound rather than taken from the database clock so the row matches what
// the caller reports back.
func (r *repository) MarkApproved(ctx context.Context, companyID string, id string, approverID string, approvedAt time.Time) (bool, error) {
	query := `
UPDATE payroll_results
SET
	status = $1,
	otp_verified = TRUE,
	approved_by = $2,
	approved_at = $3,
	updated_at = now()
WHERE id = $4
	AND company_id = $5
	AND status = $6
`

	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx, query, StatusApproved, approverID, approvedAt, id, companyID, StatusPending)
		if err != nil {
			return false, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return false, err
		}
		return affected > 0, nil
	}

	res := r.db.WithContext(ctx).Exec(
		"UPDATE payroll_results SET status = ?, otp_verified = TRUE, approved_by = ?, approved_at = ?, updated_at = now() WHERE id = ? AND company_id = ? AND status = ?",
		StatusApproved, approverID, approvedAt, id, companyID, StatusPending,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
