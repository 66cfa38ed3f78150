package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/ai"
	"github.com/01moynul/stockdash/internal/config"
	"github.com/01moynul/stockdash/internal/handlers"
	"github.com/01moynul/stockdash/internal/inventory"
	"github.com/01moynul/stockdash/internal/logger"
	"github.com/01moynul/stockdash/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	cfg := config.LoadEnv()

	// 1. --- Logger ---
	appLogger, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. --- Forecaster ---
	// Without a Gemini key the server still answers /predict from simple stock rules.
	var forecaster ai.Forecaster = ai.RuleForecaster{LowWater: inventory.DefaultThreshold}
	if cfg.Gemini.APIKey != "" {
		gemini, err := ai.NewGeminiForecaster(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini forecaster", zap.Error(err))
		}
		defer gemini.Close()
		forecaster = gemini
		appLogger.Info("Gemini forecaster enabled", zap.String("model", gemini.ModelName))
	} else {
		appLogger.Warn("GEMINI_API_KEY not set, using rule-based forecasts")
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Repo:       inventory.NewRepository(),
		Forecaster: forecaster,
		Logger:     appLogger,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, cfg.Server.CORSOrigin)

	port := cfg.Server.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	srv := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Start Server ---
	go func() {
		appLogger.Info("Starting inventory dashboard API", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
