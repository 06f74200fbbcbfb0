package position

import (
	"kamila-hrm/internal/middleware"
	"kamila-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, license middleware.LicenseChecker) {
	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware(), middleware.LicenseGuard(license))
	{
		positions.GET("", middleware.RBACAuthorize(rbacService, "position", "read"), handler.GetAll)
		positions.GET("/:id", middleware.RBACAuthorize(rbacService, "position", "read"), handler.GetById)
		positions.POST("", middleware.RBACAuthorize(rbacService, "position", "create"), handler.Create)
	}
}
