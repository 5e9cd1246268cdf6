package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/leadradar/leadgen-api/internal/api"
	"github.com/leadradar/leadgen-api/internal/logger"
	"github.com/leadradar/leadgen-api/internal/middleware"
	"github.com/leadradar/leadgen-api/internal/store"
	"github.com/leadradar/leadgen-api/pkg/config"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize structured logging
	appLogger := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)

	if !cfg.HasGoogleMapsCredentials() {
		appLogger.Warn("GOOGLE_MAPS_API_KEY is not set, lead searches will fail")
	}

	// All lead data lives in memory and is lost on restart
	st := store.NewMemory()

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()

	// Add middleware
	r.Use(middleware.LoggingMiddleware(appLogger))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.RequestSizeMiddleware(cfg.MaxRequestSize))
	r.Use(gin.Recovery())

	// Setup API routes
	api.SetupRoutes(r, cfg, st, appLogger)

	// Start server
	appLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		appLogger.Error("server stopped", zap.Error(err))
	}
}
