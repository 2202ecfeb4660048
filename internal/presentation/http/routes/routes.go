package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/totalpharma/pdv-api/internal/config"
	domainRepo "github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/internal/presentation/http/handler"
	"github.com/totalpharma/pdv-api/internal/presentation/http/middleware"
	"github.com/totalpharma/pdv-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Checkout *handler.CheckoutHandler
	Customer *handler.CustomerHandler
	Order    *handler.OrderHandler
	Reminder *handler.ReminderHandler
	Report   *handler.ReportHandler
	Printer  *handler.PrinterHandler
	Settings *handler.SettingsHandler
	User     *handler.UserHandler
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

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings (reads are open to any attendant, writes are admin-only)
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", middleware.RequireRole("admin"), h.Settings.UpdateSettings)

	// Checkout
	registerCheckoutRoutes(protected, h, deps)

	// Customers
	registerCustomerRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h)

	// Reminders
	registerReminderRoutes(protected, h)

	// Reports
	registerReportRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	checkout := protected.Group("/checkout")
	{
		checkout.POST("/quote", h.Checkout.Quote)
		// Finalizing a sale writes the order, so duplicates from a flaky
		// terminal must be caught with an idempotency key
		checkout.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Checkout.Finalize)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/lookup", h.Customer.Lookup)
		customers.GET("/:phone", h.Customer.Get)
		customers.PUT("/:phone", h.Customer.Update)
		customers.GET("/:phone/address-history", h.Customer.AddressHistory)
		customers.GET("/:phone/orders", h.Customer.Orders)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/export", h.Order.Export)
		orders.GET("/:id", h.Order.Get)
		// Reprint the thermal receipt for a past order
		orders.POST("/:id/print", h.Printer.PrintReceipt)
	}
}

func registerReminderRoutes(protected *gin.RouterGroup, h *Handlers) {
	reminders := protected.Group("/reminders")
	{
		reminders.GET("", h.Reminder.List)
		reminders.POST("", h.Reminder.Create)
		reminders.GET("/due", h.Reminder.Due)
		reminders.GET("/upcoming", h.Reminder.Upcoming)
		reminders.POST("/:id/conclude", h.Reminder.Conclude)
		reminders.GET("/:id/message", h.Reminder.Message)
		reminders.DELETE("/:id", h.Reminder.Delete)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/daily", h.Report.Daily)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/orders/:id/receipt", h.Printer.PrintReceipt)
		printerGroup.POST("/orders/:id/label", h.Printer.PrintLabel)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
