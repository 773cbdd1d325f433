package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mpaterson/souschef/config"
	"github.com/mpaterson/souschef/internal/api"
	"github.com/mpaterson/souschef/internal/client"
	"github.com/mpaterson/souschef/internal/database"
	"github.com/mpaterson/souschef/internal/middleware"
	"github.com/mpaterson/souschef/internal/pantry"
	"github.com/mpaterson/souschef/internal/router"
	"github.com/mpaterson/souschef/internal/server"
	"github.com/mpaterson/souschef/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	spoonacular := client.NewSpoonacular(cfg.SpoonacularAPIKey, cfg.SpoonacularAPIURL, logger)
	openFoodFacts := client.NewOpenFoodFacts(cfg.OpenFoodFactsAPIURL, logger)

	store := pantry.NewStore()
	assistant := service.NewAssistantService(store, spoonacular, openFoodFacts, logger)
	ai := service.NewAIService(cfg.GeminiAPIKey, cfg.GeminiAPIURL, logger)

	// Rate limiting is optional; without Redis the search endpoints run
	// unthrottled.
	var searchLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled() {
		redisClient, err := database.NewRedisClient(cfg, logger)
		if err != nil {
			logger.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			searchLimiter = middleware.NewSearchRateLimiter(redisClient)
			defer redisClient.Close()
		}
	}

	pantryHandler := api.NewPantryHandler(assistant, logger)
	recipeHandler := api.NewRecipeHandler(assistant, ai, logger)

	engine := router.SetupRouter(pantryHandler, recipeHandler, searchLimiter, cfg.AllowedOrigins)

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	srv := server.New(engine, addr, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("Received signal", zap.String("signal", sig.String()))
	}

	logger.Info("Shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Fatal("Server shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
