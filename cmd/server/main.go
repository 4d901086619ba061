package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cogaint/velocity-demo/internal/config"
	"github.com/cogaint/velocity-demo/internal/engine"
	"github.com/cogaint/velocity-demo/internal/llm"

	httphandler "github.com/cogaint/velocity-demo/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Bootstrap the AI client. Failure is never fatal: the demo keeps
	// running on heuristic fallbacks and reports the reason on /ai/status.
	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 15*time.Second)
	result := llm.Bootstrap(bootCtx, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	cancelBoot()

	// Initialize demo engine
	var ai engine.AIAnalyzer
	if result.Enabled {
		ai = result.Client
	}
	eng := engine.New(ai, result.Reason)
	slog.Info("Initialized demo engine", "ai_enabled", result.Enabled)

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(eng)

	// Create router
	r := httphandler.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
