package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"helpcenter/internal/config"
	"helpcenter/internal/handler"
	"helpcenter/internal/infrastructure/database"
	"helpcenter/internal/logger"
	"helpcenter/internal/metrics"
	"helpcenter/internal/middleware"
	"helpcenter/internal/repository"
	"helpcenter/internal/service"
	"helpcenter/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Apply migrations
	if err := database.Migrate(cfg.MigrationsPath, poolCfg.URL()); err != nil {
		logger.Fatal("Failed to apply migrations",
			slog.String("error", err.Error()))
	}

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	portalRepo := repository.NewPostgresPortalRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	accountRepo := repository.NewPostgresAccountRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, v, cfg.PageSize, cfg.DefaultLocale)
	portalService := service.NewPortalService(portalRepo, categoryRepo, v, cfg.DefaultLocale)
	accountService := service.NewAccountService(accountRepo, v, cfg.PageSize, cfg.DefaultLocale)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, portalService)
	portalHandler := handler.NewPortalHandler(portalService)
	accountHandler := handler.NewAccountHandler(accountService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		accounts := v1.Group("/accounts/:account_id")
		accounts.Use(middleware.AccountScope())
		{
			accounts.GET("/portals", portalHandler.ListPortals)
			accounts.POST("/portals", portalHandler.CreatePortal)

			portal := accounts.Group("/portals/:portal_slug")
			{
				portal.GET("/articles", articleHandler.Index)
				portal.POST("/articles", articleHandler.Create)
				portal.POST("/articles/reorder", articleHandler.Reorder)
				portal.GET("/articles/:id", articleHandler.Show)
				portal.PATCH("/articles/:id", articleHandler.Update)
				portal.DELETE("/articles/:id", articleHandler.Destroy)

				portal.GET("/categories", portalHandler.ListCategories)
				portal.POST("/categories", portalHandler.CreateCategory)
				portal.DELETE("/categories/:id", portalHandler.DeleteCategory)
			}
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/accounts", accountHandler.List)
			admin.POST("/accounts", accountHandler.Create)
			admin.GET("/accounts/schema", accountHandler.Schema)
			admin.GET("/accounts/:id", accountHandler.Show)
			admin.PATCH("/accounts/:id", accountHandler.Update)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
