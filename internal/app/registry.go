package app

import (
	"database/sql"

	"hr-dashboard/internal/auth"
	"hr-dashboard/internal/department"
	"hr-dashboard/internal/employee"
	"hr-dashboard/internal/messaging/kafka"
	"hr-dashboard/internal/user"

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
	logger := zap.L()

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(userRepo)
	departmentService := department.NewService(departmentRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
	}

	return nil
}
