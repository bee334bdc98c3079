package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nanoclaw-bridges/config"
	_ "nanoclaw-bridges/docs" // Swagger docs
	"nanoclaw-bridges/internal/bookmark"
	bookmarkHTTP "nanoclaw-bridges/internal/bookmark/delivery/http"
	bookmarkUC "nanoclaw-bridges/internal/bookmark/usecase"
	"nanoclaw-bridges/internal/httpserver"
	"nanoclaw-bridges/internal/middleware"
	"nanoclaw-bridges/internal/model"
	"nanoclaw-bridges/pkg/log"
	"nanoclaw-bridges/pkg/sprite"
)

// @title       Bookmark Relay API
// @description Relays bookmark intake and extractor queries into the sprite sandbox.
// @version     1
// @host        localhost:9999
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting bookmark relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Sandbox: %s/%s", cfg.Sprite.Org, cfg.Sprite.Sandbox)

	// 3. Intake directory
	if err := os.MkdirAll(cfg.Intake.Dir, 0o755); err != nil {
		logger.Errorf(ctx, "Failed to create intake directory %s: %v", cfg.Intake.Dir, err)
		os.Exit(1)
	}

	// 4. Bookmark domain
	spriteClient := sprite.New(sprite.Config{
		Bin:         cfg.Sprite.Bin,
		Org:         cfg.Sprite.Org,
		Sandbox:     cfg.Sprite.Sandbox,
		ExecTimeout: cfg.Sprite.ExecTimeout,
		CatTimeout:  cfg.Sprite.CatTimeout,
	}, nil)

	bookmarkUseCase := bookmarkUC.New(logger, spriteClient, bookmark.Config{
		ExtractorURL: cfg.Sprite.ExtractorURL,
		VaultRoot:    cfg.Sprite.VaultRoot,
		MetaDir:      cfg.Sprite.MetaDir,
		IntakeDir:    cfg.Intake.Dir,
	})
	bookmarkHandler := bookmarkHTTP.New(logger, bookmarkUseCase)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		IntakeDir:       cfg.Intake.Dir,
		BookmarkHandler: bookmarkHandler,
		Middleware: middleware.New(logger, middleware.Config{
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
			RateLimitPerMin: cfg.Intake.RateLimitPerMin,
		}),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	if model.Environment(cfg.Environment.Name) == model.EnvironmentDevelopment {
		logger.Infof(ctx, "Swagger UI: http://localhost:%d/swagger/index.html", cfg.HTTPServer.Port)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
