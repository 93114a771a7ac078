package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ledgerapp "github.com/adagency/backoffice/internal/application/ledger"
	partnerapp "github.com/adagency/backoffice/internal/application/partner"
	"github.com/adagency/backoffice/internal/infrastructure/config"
	"github.com/adagency/backoffice/internal/infrastructure/event"
	"github.com/adagency/backoffice/internal/infrastructure/logger"
	"github.com/adagency/backoffice/internal/infrastructure/persistence"
	"github.com/adagency/backoffice/internal/interfaces/http/handler"
	"github.com/adagency/backoffice/internal/interfaces/http/middleware"
	"github.com/adagency/backoffice/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting backoffice",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	accountTypeRepo := persistence.NewGormAccountTypeRepository(db.DB)
	budgetRepo := persistence.NewGormBudgetRepository(db.DB)

	// Transaction scope for ledger write operations
	ledgerScope := persistence.NewGormLedgerTransactionScope(db.DB)

	// Initialize event bus with audit trail
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditHandler(log))

	// Initialize application services
	contractService := ledgerapp.NewContractService(ledgerScope, budgetRepo, eventBus, log)
	paymentService := ledgerapp.NewPaymentService(ledgerScope, eventBus, log)
	billService := ledgerapp.NewBillService(ledgerScope, eventBus, log)
	customerService := partnerapp.NewCustomerService(customerRepo, accountTypeRepo, log)
	supplierService := partnerapp.NewSupplierService(supplierRepo, log)
	accountTypeService := partnerapp.NewAccountTypeService(accountTypeRepo, log)
	budgetService := partnerapp.NewBudgetService(budgetRepo, supplierRepo, accountTypeRepo, log)

	// Initialize HTTP handlers
	contractHandler := handler.NewContractHandler(contractService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	billHandler := handler.NewBillHandler(billService)
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	accountTypeHandler := handler.NewAccountTypeHandler(accountTypeService)
	budgetHandler := handler.NewBudgetHandler(budgetService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and logging can tag entries
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Ledger domain (contracts, bills, payments)
	contractRoutes := router.NewDomainGroup("contracts", "/contracts")
	contractRoutes.POST("", contractHandler.Create)
	contractRoutes.GET("", contractHandler.List)
	contractRoutes.GET("/:id", contractHandler.Get)
	contractRoutes.PATCH("/:id", contractHandler.Update)
	contractRoutes.DELETE("/:id", contractHandler.Delete)

	billRoutes := router.NewDomainGroup("bills", "/bills")
	billRoutes.GET("", billHandler.List)
	billRoutes.GET("/:id", billHandler.Get)
	billRoutes.GET("/:id/payments", paymentHandler.ListForBill)
	billRoutes.PATCH("/:id", billHandler.Update)
	billRoutes.DELETE("/:id", billHandler.Delete)

	paymentRoutes := router.NewDomainGroup("payments", "/payments")
	paymentRoutes.POST("", paymentHandler.Create)
	paymentRoutes.PATCH("/:id", paymentHandler.Update)
	paymentRoutes.DELETE("/:id", paymentHandler.Delete)

	// Partner domain (customers, suppliers, account types, budgets)
	customerRoutes := router.NewDomainGroup("customers", "/customers")
	customerRoutes.POST("", customerHandler.Create)
	customerRoutes.GET("", customerHandler.List)
	customerRoutes.GET("/:id", customerHandler.Get)
	customerRoutes.PATCH("/:id", customerHandler.Update)
	customerRoutes.DELETE("/:id", customerHandler.Delete)

	supplierRoutes := router.NewDomainGroup("suppliers", "/suppliers")
	supplierRoutes.POST("", supplierHandler.Create)
	supplierRoutes.GET("", supplierHandler.List)
	supplierRoutes.GET("/:id", supplierHandler.Get)
	supplierRoutes.PATCH("/:id", supplierHandler.Update)
	supplierRoutes.DELETE("/:id", supplierHandler.Delete)

	accountTypeRoutes := router.NewDomainGroup("account-types", "/account-types")
	accountTypeRoutes.POST("", accountTypeHandler.Create)
	accountTypeRoutes.GET("", accountTypeHandler.List)
	accountTypeRoutes.GET("/:id", accountTypeHandler.Get)
	accountTypeRoutes.PATCH("/:id", accountTypeHandler.Update)
	accountTypeRoutes.DELETE("/:id", accountTypeHandler.Delete)

	budgetRoutes := router.NewDomainGroup("budgets", "/budgets")
	budgetRoutes.POST("", budgetHandler.Create)
	budgetRoutes.GET("", budgetHandler.List)
	budgetRoutes.GET("/:id", budgetHandler.Get)
	budgetRoutes.PATCH("/:id", budgetHandler.Update)
	budgetRoutes.DELETE("/:id", budgetHandler.Delete)

	r.Register(contractRoutes).
		Register(billRoutes).
		Register(paymentRoutes).
		Register(customerRoutes).
		Register(supplierRoutes).
		Register(accountTypeRoutes).
		Register(budgetRoutes)

	r.Setup()

	// Simple ping for basic liveness checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports server and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
