package middleware

import (
	"context"
	"net/http"

	"kamila-hrm/internal/shared/apperror"
	"kamila-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// LicenseChecker is a local interface satisfied by company.LicenseChecker.
type LicenseChecker interface {
	IsActive(ctx context.Context, companyID string) (bool, error)
}

// LicenseGuard rejects requests for suspended tenants before they reach any
// feature handler. The payroll core itself never consults the license flag;
// it assumes it only runs for active tenants.
func LicenseGuard(checker LicenseChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetString("company_id")
		if companyID == "" {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Company ID is required", nil)
			c.Abort()
			return
		}

		active, err := checker.IsActive(c.Request.Context(), companyID)
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "License check unavailable", nil)
			c.Abort()
			return
		}

		if !active {
			response.Error(c, http.StatusForbidden, apperror.CodeLicenseLocked,
				"Global suspension: payment pending or administrator revoked access.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
