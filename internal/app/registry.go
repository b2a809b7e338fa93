package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-hrpay/internal/department"
	"go-hrpay/internal/employee"
	"go-hrpay/internal/messaging/kafka"
	"go-hrpay/internal/middleware"
	"go-hrpay/internal/payperiod"
	"go-hrpay/internal/payslip"
	"go-hrpay/internal/position"
	"go-hrpay/internal/salary"
	"go-hrpay/internal/shared/audit"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()
	clock := audit.SystemClock{}

	router.Use(middleware.RequestID())

	// --- Repositories ---
	departmentRepo := department.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	payPeriodRepo := payperiod.NewRepository(db)
	payslipRepo := payslip.NewRepository(db)
	positionRepo := position.NewRepository(db)
	salaryRepo := salary.NewRepository(db)

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, clock)
	payPeriodService := payperiod.NewService(db, payPeriodRepo)
	payslipService := payslip.NewService(db, payslipRepo)
	positionService := position.NewService(db, positionRepo)
	salaryService := salary.NewService(db, salaryRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	payPeriodHandler := payperiod.NewHandler(payPeriodService)
	payslipHandler := payslip.NewHandler(payslipService)
	positionHandler := position.NewHandler(positionService)
	salaryHandler := salary.NewHandler(salaryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, logger)
		payperiod.RegisterRoutes(api, payPeriodHandler, logger)
		payslip.RegisterRoutes(api, payslipHandler, logger)
		position.RegisterRoutes(api, positionHandler, logger)
		salary.RegisterRoutes(api, salaryHandler, logger)
	}

	return nil
}
