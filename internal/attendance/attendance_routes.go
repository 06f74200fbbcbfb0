package attendance

import (
	"kamila-hrm/internal/middleware"
	"kamila-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	license middleware.LicenseChecker,
) {
	// Terminals carry no bearer token; the cedula lookup is the only
	// identity the device provides.
	r.POST("/attendances/webhook/hikvision", handler.HikvisionWebhook)

	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(), middleware.LicenseGuard(license))
	{
		attendances.GET("",
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetAll,
		)
		attendances.POST("/punch",
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			handler.Punch,
		)
	}
}
