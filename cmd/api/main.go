package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"axle-assist/config"
	_ "axle-assist/docs" // Swagger docs
	chatHTTP "axle-assist/internal/chat/delivery/http"
	chatUC "axle-assist/internal/chat/usecase"
	"axle-assist/internal/httpserver"
	axleRepo "axle-assist/internal/loads/repository/axle"
	"axle-assist/internal/middleware"
	"axle-assist/internal/router"
	pkgAxle "axle-assist/pkg/axle"
	"axle-assist/pkg/gemini"
	"axle-assist/pkg/log"
)

// @title       Axle AI Assist API
// @description Conversational load-search backend: intent routing over Gemini, sanitized load search against the Axle transaction API.
// @version     1
// @host        localhost:8787
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Axle AI assist...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Upstream: %s", cfg.Axle.BaseURL)

	// 3. Collaborator clients
	axleClient := pkgAxle.NewClient(cfg.Axle.BaseURL, cfg.Axle.BearerToken)
	axleClient.SetTimeout(cfg.Axle.Timeout)

	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is empty; chat turns will fail until it is set")
	}
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)

	// 4. Chat domain
	intentRouter := router.New(geminiClient, logger)
	loadRepo := axleRepo.New(axleClient, logger)
	chatUsecase := chatUC.New(intentRouter, loadRepo, logger)
	chatHandler := chatHTTP.New(logger, chatUsecase, axleClient)

	mw := middleware.New(logger, cfg.Chat.RateLimitPerMin)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
