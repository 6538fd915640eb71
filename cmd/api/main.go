package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jangbu/jangbu-server/internal/config"
	"github.com/jangbu/jangbu-server/internal/handler"
	"github.com/jangbu/jangbu-server/internal/kv"
	"github.com/jangbu/jangbu-server/internal/middleware"
	"github.com/jangbu/jangbu-server/internal/repository/kvstore"
	"github.com/jangbu/jangbu-server/internal/service"
	"github.com/jangbu/jangbu-server/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Open the local document store
	var store kv.Store
	sqliteStore, err := kv.OpenSQLite(cfg.DataPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DataPath).Msg("Failed to open document store, running without persistence")
		store = kv.NewNoopStore()
	} else {
		defer sqliteStore.Close()
		store = sqliteStore
		log.Info().Str("path", cfg.DataPath).Msg("Opened document store")
	}

	// Initialize repositories
	configRepo := kvstore.NewConfigRepository(store)
	transactionRepo := kvstore.NewTransactionRepository(store)
	settingsRepo := kvstore.NewSettingsRepository(store)
	receiptRepo := kvstore.NewReceiptRepository(store)

	// Initialize services
	registryService := service.NewRegistryService(configRepo, transactionRepo, settingsRepo)
	receiptService := service.NewReceiptService(receiptRepo)
	transactionService := service.NewTransactionService(transactionRepo, receiptService)
	settingsService := service.NewSettingsService(settingsRepo)
	summaryService := service.NewSummaryService(transactionRepo, settingsRepo)
	exportService := service.NewExportService(registryService, configRepo, transactionRepo, settingsRepo)

	// Bring the registry up to date for this session
	if _, err := registryService.EnsureCurrentYearDatabase(); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare database registry")
	}
	if err := registryService.MigrateLegacyLayout(); err != nil {
		log.Warn().Err(err).Msg("Failed to migrate legacy documents")
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub()

	// Initialize handlers
	databaseHandler := handler.NewDatabaseHandler(registryService, hub)
	transactionHandler := handler.NewTransactionHandler(transactionService, registryService, hub)
	settingsHandler := handler.NewSettingsHandler(settingsService, registryService, hub)
	dashboardHandler := handler.NewDashboardHandler(summaryService, registryService)
	reportHandler := handler.NewReportHandler(summaryService, registryService)
	exportHandler := handler.NewExportHandler(exportService, registryService, hub)
	receiptHandler := handler.NewReceiptHandler(receiptService)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Rate limiting middleware
	rateLimiter := middleware.NewRateLimiter()
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// WebSocket endpoint
	e.GET("/ws", wsHandler.HandleWS)

	// Register API routes
	handler.RegisterRoutes(e, databaseHandler, transactionHandler, settingsHandler, dashboardHandler, reportHandler, exportHandler, receiptHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
