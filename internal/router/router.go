package router

import (
	"time"

	"tindahan/internal/config"
	"tindahan/internal/handler"
	"tindahan/internal/middleware"
	"tindahan/internal/repository"
	"tindahan/internal/service"
	"tindahan/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Handlers depend on services, services on repositories, repositories on DB/Redis.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	stockRequestRepo := repository.NewStockRequestRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg)
	itemSvc := service.NewItemService(itemRepo)
	orderSvc := service.NewOrderService(orderRepo, dispatcher)
	stockRequestSvc := service.NewStockRequestService(stockRequestRepo, dispatcher, cfg.AlertEmail)
	reportSvc := service.NewReportService(reportRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	ordersH := handler.NewOrdersHandler(orderSvc, cfg.ReceiptStoragePath)
	stockRequestsH := handler.NewStockRequestsHandler(stockRequestSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	usersH := handler.NewUsersHandler(authSvc)

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Orders: staff record sales; the ledger is append-only.
		v1.POST("/orders", middleware.RequireRole("staff", "admin"), ordersH.Record)
		v1.GET("/orders", middleware.RequireRole("staff", "admin"), ordersH.List)
		v1.GET("/orders/:id", middleware.RequireRole("staff", "admin"), ordersH.GetByID)
		v1.GET("/orders/:id/receipt", middleware.RequireRole("staff", "admin"), ordersH.DownloadReceipt)

		// Items: everyone reads, admin writes.
		v1.GET("/items", middleware.RequireRole("staff", "admin"), itemsH.List)
		v1.GET("/items/:id", middleware.RequireRole("staff", "admin"), itemsH.GetByID)
		items := v1.Group("/items", middleware.RequireRole("admin"))
		{
			items.POST("", itemsH.Create)
			items.PUT("/:id", itemsH.Update)
			items.PATCH("/:id/archive", itemsH.Archive)
			items.PATCH("/:id/restore", itemsH.Restore)
		}

		// Stock requests: staff file them, admins triage.
		v1.POST("/stock-requests", middleware.RequireRole("staff", "admin"), stockRequestsH.Submit)
		v1.GET("/stock-requests", middleware.RequireRole("staff", "admin"), stockRequestsH.List)
		requests := v1.Group("/stock-requests", middleware.RequireRole("admin"))
		{
			requests.PATCH("/:id/approve", stockRequestsH.Approve)
			requests.PATCH("/:id/reject", stockRequestsH.Reject)
		}

		// Sales reports are admin only.
		reports := v1.Group("/reports", middleware.RequireRole("admin"))
		{
			reports.POST("", reportsH.Create)
			reports.GET("", reportsH.List)
			reports.GET("/:id", reportsH.GetByID)
			reports.PUT("/:id", reportsH.Update)
		}

		// User management is admin only.
		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	return r
}
