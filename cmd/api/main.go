package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/totalpharma/pdv-api/internal/application/service"
	"github.com/totalpharma/pdv-api/internal/config"
	"github.com/totalpharma/pdv-api/internal/infrastructure/database"
	"github.com/totalpharma/pdv-api/internal/infrastructure/repository"
	"github.com/totalpharma/pdv-api/internal/presentation/http/handler"
	"github.com/totalpharma/pdv-api/internal/presentation/http/routes"
	"github.com/totalpharma/pdv-api/pkg/printer"
	"github.com/totalpharma/pdv-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	checkoutService := service.NewCheckoutService(checkoutRepo, customerRepo, settingsRepo)
	customerService := service.NewCustomerService(customerRepo, settingsRepo)
	orderService := service.NewOrderService(orderRepo)
	reminderService := service.NewReminderService(reminderRepo, settingsRepo)
	reportService := service.NewReportService(reportRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	userService := service.NewUserService(userRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
		cfg.Printer.SpoolDir,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(
		thermalPrinter,
		orderRepo,
		customerRepo,
		settingsRepo,
		cfg.Printer.Type,
		cfg.Printer.Width,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Checkout: handler.NewCheckoutHandler(checkoutService, printerService),
		Customer: handler.NewCustomerHandler(customerService, orderService),
		Order:    handler.NewOrderHandler(orderService),
		Reminder: handler.NewReminderHandler(reminderService),
		Report:   handler.NewReportHandler(reportService),
		Printer:  handler.NewPrinterHandler(printerService),
		Settings: handler.NewSettingsHandler(settingsService),
		User:     handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
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
