package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"orderup/internal/config"
	"orderup/internal/database"
	"orderup/internal/handlers"
	"orderup/internal/logging"
	"orderup/internal/migrations"
	"orderup/internal/redis"
	"orderup/internal/repository"
	"orderup/internal/router"
	"orderup/internal/services"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.Initialize(cfg.DBDriver, cfg.DatabaseURL, cfg.DBLogSQL, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := migrations.RunMigrations(db, cfg.SeedDemoData, logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Redis is optional; without it the menu is always read from the database.
	var menuCache services.MenuCache
	if cfg.RedisURL != "" {
		redisClient, err := redis.Initialize(cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		menuCache = redisClient
	} else {
		logger.Info("REDIS_URL not set, menu cache disabled")
	}

	store := repository.NewStore(db)

	// Initialize services
	menuService := services.NewMenuService(store, menuCache, time.Duration(cfg.MenuCacheTTL)*time.Second, logger)
	cartService := services.NewCartService(store, logger)
	orderService := services.NewOrderService(store, logger)
	placementService := services.NewPlacementService(store, logger)

	// Setup routes
	engine := router.New(router.Handlers{
		Menu:  handlers.NewMenuHandler(menuService, logger),
		Cart:  handlers.NewCartHandler(cartService, placementService, logger),
		Order: handlers.NewOrderHandler(orderService, logger),
	}, logger, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("server stopped")
}
