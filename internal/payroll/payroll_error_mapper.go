package payroll

import (
	"errors"

	payrollerrors "kamila-hrm/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage-level failures into the package's
// stable error kinds. A foreign-key violation on employee_id means the
// employee disappeared between lookup and insert.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23503" && pgErr.ConstraintName == "fk_payroll_results_employee" {
			return payrollerrors.ErrEmployeeNotFound
		}
	}

	return err
}
