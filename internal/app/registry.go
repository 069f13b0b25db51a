package app

import (
	"database/sql"

	"github.com/tech1210/empthics-backend/internal/attendance"
	"github.com/tech1210/empthics-backend/internal/employee"
	"github.com/tech1210/empthics-backend/internal/holiday"
	"github.com/tech1210/empthics-backend/internal/leave"
	"github.com/tech1210/empthics-backend/internal/messaging/kafka"
	"github.com/tech1210/empthics-backend/internal/middleware"
	"github.com/tech1210/empthics-backend/internal/organization"
	"github.com/tech1210/empthics-backend/internal/regularization"
	"github.com/tech1210/empthics-backend/internal/report"
	"github.com/tech1210/empthics-backend/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	orgRepo := organization.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	regularizationRepo := regularization.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	orgService := organization.NewService(orgRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	holidayService := holiday.NewService(holidayRepo, orgService)
	attendanceService := attendance.NewService(db, attendanceRepo, orgService)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, orgService, outboxRepo)
	regularizationService := regularization.NewService(db, regularizationRepo, attendanceRepo, orgService)
	reportService := report.NewService(employeeRepo, attendanceRepo, leaveRepo, holidayService, orgService)

	// --- Handlers ---
	orgHandler := organization.NewHandler(orgService)
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	regularizationHandler := regularization.NewHandler(regularizationService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		organization.RegisterRoutes(api, orgHandler)
		employee.RegisterRoutes(api, employeeHandler)
		holiday.RegisterRoutes(api, holidayHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		leave.RegisterRoutes(api, leaveHandler)
		regularization.RegisterRoutes(api, regularizationHandler)
		report.RegisterRoutes(api, reportHandler)
	}

	return nil
}
