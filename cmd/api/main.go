package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RohanBhoge/whatsapp-api/config"
	"github.com/RohanBhoge/whatsapp-api/internal/handlers"
	"github.com/RohanBhoge/whatsapp-api/internal/middleware"
	"github.com/RohanBhoge/whatsapp-api/internal/repository"
	"github.com/RohanBhoge/whatsapp-api/internal/services"
	"github.com/RohanBhoge/whatsapp-api/pkg/httpclient"
	"github.com/RohanBhoge/whatsapp-api/pkg/logger"
	"github.com/RohanBhoge/whatsapp-api/pkg/metrics"
	gsheets "github.com/RohanBhoge/whatsapp-api/pkg/sheets"
	"github.com/RohanBhoge/whatsapp-api/pkg/tracing"
	"github.com/RohanBhoge/whatsapp-api/pkg/whatsapp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting WhatsApp certificate-notification bridge",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize the Google Sheets client. A missing credential is not fatal:
	// sheet-backed routes report the source as unavailable per request, and
	// the webhook route keeps working.
	var sheetsClient repository.SheetsAPI
	if cfg.Sheets.CredentialsJSON != "" {
		client, err := gsheets.NewClient(context.Background(), []byte(cfg.Sheets.CredentialsJSON))
		if err != nil {
			logger.Fatal("Failed to initialize Google Sheets client", zap.Error(err))
		}
		sheetsClient = client
	} else {
		logger.Warn("GOOGLE_CREDENTIALS not set: sheet-backed routes will report the source as unavailable")
	}

	recordSource := repository.NewSheetsRecordSource(sheetsClient, cfg.Sheets)

	// Initialize HTTP client and dispatcher for the messaging providers
	httpClient := httpclient.NewStandardClient()
	sender := whatsapp.NewClient(httpClient)

	// Initialize services
	broadcastService := services.NewBroadcastService(recordSource, sender, cfg)
	webhookService := services.NewWebhookService(sender, cfg)
	submitService := services.NewSubmitService(recordSource, cfg)

	// Initialize handlers
	sheetUpdateHandler := handlers.NewSheetUpdateHandler(broadcastService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)
	submitHandler := handlers.NewSubmitHandler(submitService)
	healthHandler := handlers.NewHealthHandler(func() bool { return sheetsClient != nil })

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"}
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// Rate limiters: the bulk route fans out one provider call per sheet row,
	// so it gets a much tighter budget than the single-record routes
	generalRateLimiter := middleware.NewRateLimiter(100, 200)
	bulkRateLimiter := middleware.NewRateLimiter(0.2, 2) // ~1 run / 5s, burst of 2
	webhookRateLimiter := middleware.NewRateLimiter(10, 20)

	// Utility endpoints
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// Bridge routes (paths are a contract with the Apps Script triggers)
	router.POST("/sheet-update", bulkRateLimiter.Middleware(), sheetUpdateHandler.HandleSheetUpdate)
	router.POST("/webhook", webhookRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), webhookHandler.HandleRowUpdate)
	router.POST("/submit-data", webhookRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), submitHandler.HandleSubmitData)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second, // bulk runs dispatch sequentially and can be slow
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
