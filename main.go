package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/go-tripplanner/internal/pkg/config"
	"github.com/FACorreiaa/go-tripplanner/internal/pkg/logger"
	"github.com/FACorreiaa/go-tripplanner/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	// Initialize logger
	if err := logger.Init(zapcore.InfoLevel, zap.String("service", "go-tripplanner")); err != nil {
		return err
	}
	defer logger.Log.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize observability
	otelShutdown, err := server.InitObservability("go-tripplanner", ":"+cfg.MetricsPort, logger.Log)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	// Create server
	srv := server.New(cfg, logger.Log)

	// Setup router
	router, err := server.SetupRouter(cfg, logger.Log)
	if err != nil {
		return err
	}

	// Setup assets
	if err := SetupAssets(router); err != nil {
		logger.Log.Error("Failed to setup assets", zap.Error(err))
		return err
	}

	// Set the router on the server
	srv.SetRouter(router)

	// Start pprof server (on separate port, not exposed publicly)
	server.StartPprofServer(":6060")

	// Create HTTP server
	httpServer := srv.HTTPServer()

	// Setup graceful shutdown
	done := make(chan bool, 1)
	go server.GracefulShutdown(httpServer, logger.Log, done)

	// Start server
	logger.Log.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Error("Server error", zap.Error(err))
	}

	// Wait for graceful shutdown to complete
	<-done
	logger.Log.Info("Graceful shutdown complete")

	return nil
}
