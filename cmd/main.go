package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"shoplite/internal/caching"
	"shoplite/internal/handlers"
	"shoplite/internal/jobs/background"
	"shoplite/internal/metrics"
	"shoplite/internal/repositories"
	"shoplite/internal/services"
	"shoplite/pkg/database"
)

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	cacheTTL := 300 * time.Second
	if ttlStr := os.Getenv("CACHE_TTL_SECONDS"); ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil && ttl > 0 {
			cacheTTL = time.Duration(ttl) * time.Second
		}
	}

	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)

	// Metrics
	orderMetrics := metrics.NewOrderMetrics()

	// Services
	authService := services.NewAuthService(userRepo)
	catalogService := services.NewCatalogService(productRepo, cacheSvc, cacheTTL)
	orderService := services.NewOrderService(orderRepo, orderMetrics)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authService)
	productHandlers := handlers.NewProductHandlers(catalogService)
	orderHandlers := handlers.NewOrderHandlers(orderService)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background jobs
	scheduler, err := background.NewJobScheduler(cacheSvc, productRepo, cacheTTL)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Errorf("Failed to stop job scheduler: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Routes
	api := e.Group("/api")
	api.POST("/auth/register", authHandlers.Register)
	api.POST("/auth/login", authHandlers.Login)
	api.GET("/products", productHandlers.ListProducts)
	api.GET("/products/:id", productHandlers.GetProduct)
	api.POST("/orders", orderHandlers.PlaceOrder)
	api.GET("/orders/:userId", orderHandlers.GetUserOrders)
	api.GET("/order-items/:orderId", orderHandlers.GetOrderItems)

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Infof("Server running on port %s", port)
	if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
		e.Logger.Fatal(err)
	}
}
