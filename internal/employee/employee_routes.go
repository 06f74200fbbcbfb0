package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.LicenseGuard(license))
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.GetById)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employee", "create"), handler.Create)
	}
}
