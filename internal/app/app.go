package app

import (
	"context"
	"net/http"

	"go-erp/internal/auth"
	"go-erp/internal/backup"
	"go-erp/internal/bootstrap"
	"go-erp/internal/dashboard"
	"go-erp/internal/employee"
	"go-erp/internal/equipment"
	"go-erp/internal/events"
	"go-erp/internal/middleware"
	"go-erp/internal/seed"
	"go-erp/internal/serviceorder"
	"go-erp/internal/shared/counter"
	"go-erp/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildApp wires storage, repositories, services and routes onto the
// router. Collections are loaded eagerly so corrupt data is detected
// and recovered at startup, not on first request.
func BuildApp(router *gin.Engine, logger *zap.Logger, audit bootstrap.AuditLogger) error {
	ctx := context.Background()

	channel, err := storage.Open(ctx, logger)
	if err != nil {
		return err
	}

	bus := events.NewBus()
	bus.Subscribe(events.TopicStatsChanged, func(change events.Change) {
		logger.Debug("statistics invalidated",
			zap.String("collection", change.Collection),
			zap.String("action", change.Action),
		)
	})

	counters := counter.NewRepository(channel)

	employeeRepo := employee.NewRepository(channel, bus, seed.Employees, logger)
	equipmentRepo := equipment.NewRepository(channel, bus, seed.Equipment, logger)
	orderRepo := serviceorder.NewRepository(channel, bus, seed.ServiceOrders, logger)
	userRepo := auth.NewRepository(channel, bus, seed.Users, logger)

	type loadable struct {
		name string
		load func(context.Context) (bool, error)
	}
	for _, l := range []loadable{
		{"employees", employeeRepo.Load},
		{"equipment", equipmentRepo.Load},
		{"service orders", orderRepo.Load},
		{"users", userRepo.Load},
	} {
		recovered, err := l.load(ctx)
		if err != nil {
			return err
		}
		if recovered {
			logger.Warn("collection was corrupt and has been reseeded", zap.String("collection", l.name))
		}
	}

	enforcer, err := auth.NewEnforcer()
	if err != nil {
		return err
	}

	employeeService := employee.NewService(employeeRepo, counters, logger)
	equipmentService := equipment.NewService(equipmentRepo, counters, logger)
	orderService := serviceorder.NewService(orderRepo, counters, logger)
	authService := auth.NewService(userRepo, logger)
	dashboardService := dashboard.NewService(employeeService, equipmentService, orderService, logger)
	backupService := backup.NewService(employeeRepo, equipmentRepo, orderRepo, channel, audit, logger)

	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	api := router.Group("/api/v1")
	auth.RegisterRoutes(api, auth.NewHandler(authService, logger), enforcer, logger)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService, logger), enforcer, logger)
	equipment.RegisterRoutes(api, equipment.NewHandler(equipmentService, logger), enforcer, logger)
	serviceorder.RegisterRoutes(api, serviceorder.NewHandler(orderService, logger), enforcer, logger)
	dashboard.RegisterRoutes(api, dashboard.NewHandler(dashboardService, logger), enforcer, logger)
	backup.RegisterRoutes(api, backup.NewHandler(backupService, logger), enforcer, logger)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return nil
}
