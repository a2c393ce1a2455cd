package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"websync/config"
	"websync/database"
	"websync/database/repository"
	"websync/handlers"
	"websync/middleware"
	"websync/routes"
	"websync/services/booking"
	"websync/services/catalog"
	"websync/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
		}
	}()
	db := client.Database(database.Name)

	// The catalog cache is optional; the server runs uncached when Redis
	// is unconfigured or unreachable.
	var cacheClient *redis.Client
	if config.AppConfig.RedisAddr != "" {
		cacheClient, err = utils.NewCacheClient(
			config.AppConfig.RedisAddr,
			config.AppConfig.RedisPassword,
			config.AppConfig.RedisCacheDB,
		)
		if err != nil {
			logger.Sugar().Warnf("main: catalog cache disabled: %v", err)
			cacheClient = nil
		}
	}

	// repositories.
	catalogRepository := repository.NewMongoCatalogRepo(db)
	bookingRepository := repository.NewMongoBookingRepo(db)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  catalogRepository,
		Cache: cacheClient,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:    bookingRepository,
		Catalog: catalogService,
	}

	seeded, err := catalogService.Seed(ctx)
	switch {
	case err != nil:
		logger.Sugar().Errorf("main: failed to seed service catalog: %v", err)
	case seeded > 0:
		logger.Sugar().Infof("main: seeded service catalog with %d services", seeded)
	default:
		logger.Sugar().Info("main: services already exist, skipping seed")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Booking: handlers.NewBookingHandler(bookingService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle, client)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
