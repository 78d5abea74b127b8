package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"catalog-service/internal/catalog"
	"catalog-service/internal/config"
	"catalog-service/internal/handlers"
	"catalog-service/internal/middleware"
	"catalog-service/internal/repository"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize Redis client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
		redisOpts = &redis.Options{Addr: "localhost:6379"}
	}
	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
		redisClient = nil
	} else {
		log.Println("✓ Redis connected successfully")
	}
	cancel()

	// Initialize repository and load snapshots
	classifier := catalog.KeywordClassifier{
		Include: cfg.FoodKeywords,
		Exclude: cfg.NonFoodKeywords,
	}
	repo := repository.NewSnapshotRepository(
		cfg.DataDir, cfg.IndexFile, redisClient, logger,
		catalog.ParsePolicy(cfg.SelectionPolicy), classifier,
	)
	if err := repo.Load(context.Background()); err != nil {
		// Serve an empty catalog rather than refusing to start; sources can
		// be dropped in and reloaded later.
		log.Printf("WARNING: Failed to load snapshot sources: %v", err)
	} else {
		log.Printf("✓ Loaded %d snapshot source(s)", len(repo.Sources()))
	}

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(repo, logger, cfg.DefaultSource)
	stateHandler := handlers.NewStateHandler(logger)
	linksHandler := handlers.NewLinksHandler(repo, logger)
	analysisHandler := handlers.NewAnalysisHandler(cfg.DataDir, cfg.ReportFile, logger)
	exportHandler := handlers.NewExportHandler(repo, logger, cfg.DefaultSource)

	// Initialize Prometheus metrics
	metrics := middleware.InitMetrics("agravity", "catalog_service")
	log.Println("✓ Prometheus metrics initialized")

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check endpoints
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)
	router.GET("/metrics", middleware.Handler())

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/sources", catalogHandler.GetSources)
		v1.GET("/products", catalogHandler.GetProducts)
		v1.GET("/products/lookup", catalogHandler.LookupProduct)
		v1.GET("/categories", catalogHandler.GetCategoryTree)
		v1.POST("/state/transition", stateHandler.Transition)
		v1.POST("/links/resolve", linksHandler.Resolve)
		v1.GET("/export", exportHandler.Export)
		v1.GET("/analysis", analysisHandler.GetReport)
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Catalog service starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down catalog-service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Catalog service stopped")
}
