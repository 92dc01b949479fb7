package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-quote-backend/config"
	_ "go-quote-backend/docs" // Important for Swagger
	v1 "go-quote-backend/internal/delivery/http/v1"
	"go-quote-backend/internal/domain"
	"go-quote-backend/internal/notification"
	"go-quote-backend/internal/repository/postgres"
	"go-quote-backend/internal/usecase"
	"go-quote-backend/pkg/database"
	"go-quote-backend/pkg/logger"
	"go-quote-backend/pkg/mail"
	"go-quote-backend/pkg/redis"
)

// @title           Quote Request Backend API
// @version         1.0
// @description     Quote-request intake: service catalog, submission persistence, email notifications.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting quote request backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err.Error())
	}
	defer redis.Close()

	// 5. Setup Repository
	quoteRepo := postgres.NewQuoteRepository(dbPool)

	// 6. Setup Notification Pipeline
	mailClient := mail.NewClient(cfg.ResendAPIKey, mail.WithBaseURL(cfg.ResendBaseURL))
	if !mailClient.IsConfigured() {
		logger.Log.Warn("Mail client not configured - quote notifications will be skipped")
	}
	notifier := notification.NewPipeline(mailClient, cfg.MailFrom, cfg.AdminEmail)

	// 7. Setup UseCases
	catalog := domain.DefaultCatalog()
	quoteUC := usecase.NewQuoteUsecase(quoteRepo, notifier, catalog)
	catalogUC := usecase.NewCatalogUsecase(catalog)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		QuoteUC:   quoteUC,
		CatalogUC: catalogUC,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
