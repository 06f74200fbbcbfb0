package company

import (
	"kamila-hrm/internal/middleware"
	"kamila-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("/me", handler.GetMine)
	}

	// The kill-switch route deliberately skips the license guard: a
	// suspended tenant could otherwise never be re-activated.
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/companies/:id/license", middleware.RBACAuthorize(rbacService, "company", "lock"), handler.UpdateLicense)
	}
}
