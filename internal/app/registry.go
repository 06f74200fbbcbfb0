package app

import (
	"database/sql"
	"path/filepath"

	"kamila-hrm/internal/attendance"
	"kamila-hrm/internal/auth"
	"kamila-hrm/internal/company"
	"kamila-hrm/internal/employee"
	"kamila-hrm/internal/messaging/kafka"
	"kamila-hrm/internal/otp"
	"kamila-hrm/internal/payroll"
	"kamila-hrm/internal/position"
	"kamila-hrm/internal/rbac"
	"kamila-hrm/internal/rbac/infra"
	"kamila-hrm/internal/systems"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	systemsRepo := systems.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Cross-cutting ---
	licenseChecker := company.NewLicenseChecker(companyRepo, rdb)
	otpVerifier := otp.NewRedisVerifier(rdb)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService, licenseChecker)
	companyService := company.NewService(companyRepo, licenseChecker)
	employeeService := employee.NewService(employeeRepo)
	positionService := position.NewService(positionRepo)
	systemsService := systems.NewService(systemsRepo)
	attendanceService := attendance.NewService(attendanceRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, otpVerifier, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	employeeHandler := employee.NewHandler(employeeService)
	positionHandler := position.NewHandler(positionService)
	systemsHandler := systems.NewHandler(systemsService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb, otpVerifier)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, licenseChecker)
		position.RegisterRoutes(api, positionHandler, rbacService, licenseChecker)
		systems.RegisterRoutes(api, systemsHandler, rbacService, licenseChecker)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, licenseChecker)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, licenseChecker, rdb)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
