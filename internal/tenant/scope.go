package tenant

import "gorm.io/gorm"

// Scope constrains a query to one tenant. Every repository query on a
// tenant-owned table goes through it; a missing scope is a data leak.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// EmployeeScope narrows a tenant scope to one employee. The company
// predicate stays even though employee ids are unique; it keeps a stale
// or forged employee id from crossing tenants.
func EmployeeScope(companyID string, employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("company_id = ?", companyID).
			Where("employee_id = ?", employeeID)
	}
}
