package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"hirebridge/internal/api/routes"
	"hirebridge/internal/catalog"
	"hirebridge/internal/config"
	"hirebridge/internal/dispatch"
	"hirebridge/internal/interview/session"
	"hirebridge/internal/llm"
	"hirebridge/internal/logging"
	"hirebridge/internal/matcher"
	"hirebridge/internal/profile"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting HireBridge", map[string]interface{}{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	})

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Error("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize session store
	store, err := session.NewStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize session store", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize job catalog
	cat := catalog.New(cfg)
	if cfg.Catalog.LoadOnStartup && cfg.Catalog.Source != "" {
		if count, err := cat.Load(cfg.Catalog.Source); err != nil {
			// Startup continues; the catalog can be loaded later via the API
			logger.Error("Startup catalog load failed", map[string]interface{}{
				"source": cfg.Catalog.Source,
				"error":  err.Error(),
			})
		} else {
			logger.Info("Startup catalog loaded", map[string]interface{}{
				"source": cfg.Catalog.Source,
				"count":  count,
			})
		}
	}

	extractor := profile.NewExtractor()
	m := matcher.New(cfg, cat)
	d := dispatch.New(cfg, dispatch.NewHTTPMailer(cfg))

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, extractor, llmManager, store, cat, m, d)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Closing session store...")
		if err := store.Close(); err != nil {
			logger.Error("Error closing session store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
