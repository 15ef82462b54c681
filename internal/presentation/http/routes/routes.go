package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/laundrypro/laundry-api/internal/config"
	domainRepo "github.com/laundrypro/laundry-api/internal/domain/repository"
	"github.com/laundrypro/laundry-api/internal/presentation/http/handler"
	"github.com/laundrypro/laundry-api/internal/presentation/http/middleware"
	"github.com/laundrypro/laundry-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Discount  *handler.DiscountHandler
	Order     *handler.OrderHandler
	Payment   *handler.PaymentHandler
	Customer  *handler.CustomerHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
	Settings  *handler.SettingsHandler
	Retention *handler.RetentionHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Uploaded payment proofs and images
	router.Static("/uploads", deps.Cfg.Storage.Path)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter on everything under /api/v1
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerPublicRoutes(v1, h, deps)

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(deps.JWTManager))
		registerAdminRoutes(admin, h)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Catalog and discounts shown on the website
	v1.GET("/services", h.Catalog.ListPublic)
	v1.GET("/discounts", h.Discount.ListActive)
	v1.POST("/discounts/validate", h.Discount.Validate)

	// Order intake and tracking. Submission is deduplicated per client
	// through the Idempotency-Key header.
	v1.POST("/orders", middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}), h.Order.Create)
	v1.GET("/orders/track", h.Order.Track)
	v1.GET("/orders/history", h.Order.History)
	v1.POST("/orders/:id/payment-proof", h.Payment.UploadProof)

	// Shop details and contact form
	v1.GET("/payment-info", h.Settings.PaymentInfo)
	v1.POST("/contact", h.Settings.Contact)
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	// Dashboard
	admin.GET("/dashboard/stats", h.Dashboard.Stats)
	admin.GET("/dashboard/recent-orders", h.Dashboard.RecentOrders)

	// Services and prices
	services := admin.Group("/services")
	{
		services.GET("", h.Catalog.List)
		services.POST("", h.Catalog.Create)
		services.GET("/:id", h.Catalog.Get)
		services.PUT("/:id", h.Catalog.Update)
		services.DELETE("/:id", h.Catalog.Delete)
		services.GET("/:id/prices", h.Catalog.ListPrices)
		services.POST("/:id/prices", h.Catalog.SetPrice)
	}

	// Orders
	orders := admin.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
	}

	// Customers
	customers := admin.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Payments
	payments := admin.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.PUT("/:id", h.Payment.Update)
	}

	// Discounts
	discounts := admin.Group("/discounts")
	{
		discounts.GET("", h.Discount.List)
		discounts.POST("", h.Discount.Create)
		discounts.PUT("/:id", h.Discount.Update)
		discounts.DELETE("/:id", h.Discount.Delete)
	}

	// Settings
	admin.GET("/settings", h.Settings.Get)
	admin.PUT("/settings", h.Settings.Update)

	// Reports
	admin.GET("/reports", h.Report.Get)

	// Data management
	admin.GET("/data-management", h.Retention.Preview)
	admin.DELETE("/data-management", h.Retention.Purge)
}
