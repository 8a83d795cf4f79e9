// File: wanderlust/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderlust/config"
	"wanderlust/handlers"
	"wanderlust/middleware"
	"wanderlust/routes"
	"wanderlust/services"
	"wanderlust/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		// Missing credentials are fatal before anything else starts.
		utils.GetLogger().Fatal("main: invalid configuration", zap.Error(err))
	}
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	plannerService, release, err := services.NewPlannerService(context.Background(), config.AppConfig, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize planner: %v", err)
	}
	defer release()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	chatHandler := handlers.NewChatHandler(plannerService, config.AppConfig.RequestTimeout)
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(chatHandler))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (completion provider: %s)...", srv.Addr, config.AppConfig.CompletionProvider)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
