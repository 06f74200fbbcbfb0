package systems

import (
	"kamila-hrm/internal/middleware"
	"kamila-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, license middleware.LicenseChecker) {
	systems := r.Group("/systems")
	systems.Use(middleware.AuthMiddleware(), middleware.LicenseGuard(license))
	{
		systems.GET("/software", middleware.RBACAuthorize(rbacService, "systems", "read"), handler.GetInventory)
		systems.GET("/software/budget", middleware.RBACAuthorize(rbacService, "systems", "read"), handler.GetBudget)
	}
}
