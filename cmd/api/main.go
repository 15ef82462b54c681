package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/laundrypro/laundry-api/internal/application/service"
	"github.com/laundrypro/laundry-api/internal/config"
	"github.com/laundrypro/laundry-api/internal/infrastructure/database"
	"github.com/laundrypro/laundry-api/internal/infrastructure/repository"
	"github.com/laundrypro/laundry-api/internal/presentation/http/handler"
	"github.com/laundrypro/laundry-api/internal/presentation/http/routes"
	"github.com/laundrypro/laundry-api/pkg/email"
	"github.com/laundrypro/laundry-api/pkg/oauth"
	"github.com/laundrypro/laundry-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Ensure the upload directory exists
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		log.Fatalf("Failed to create storage directory: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	serviceRepo := repository.NewServiceRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	retentionRepo := repository.NewRetentionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:          cfg.OAuth.GoogleClientID,
		ClientSecret:      cfg.OAuth.GoogleClientSecret,
		RedirectURL:       cfg.OAuth.GoogleRedirectURL,
		DashboardURL:      cfg.OAuth.DashboardURL,
		DashboardErrorURL: cfg.OAuth.DashboardErrorURL,
	})

	// Initialize services
	pricingService := service.NewPricingService(serviceRepo, priceRepo, discountRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo, serviceRepo, paymentRepo, pricingService)
	catalogService := service.NewCatalogService(serviceRepo, priceRepo, pricingService)
	discountService := service.NewDiscountService(discountRepo)
	customerService := service.NewCustomerService(customerRepo)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, orderRepo)
	reportService := service.NewReportService(orderRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	contactService := service.NewContactService(emailService, settingsRepo)
	retentionService := service.NewRetentionService(retentionRepo)
	authService := service.NewAuthService(settingsRepo, jwtManager, googleOAuthService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, cfg.OAuth.DashboardURL, cfg.OAuth.DashboardErrorURL),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Discount:  handler.NewDiscountHandler(discountService, pricingService),
		Order:     handler.NewOrderHandler(orderService),
		Payment:   handler.NewPaymentHandler(paymentService, cfg.Storage.Path, cfg.Storage.UploadMaxSize),
		Customer:  handler.NewCustomerHandler(customerService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
		Settings:  handler.NewSettingsHandler(settingsService, contactService),
		Retention: handler.NewRetentionHandler(retentionService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
