package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"

	"github.com/tendant/notion-content/pkg/notioncontent/api"
	"github.com/tendant/notion-content/pkg/notioncontent/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	logger := httplog.NewLogger("notion-content", httplog.Options{
		LogLevel: level,
		JSON:     cfg.Environment == "production",
		Concise:  cfg.Environment != "production",
	})

	handler := api.NewHandler(api.Config{
		NotionBaseURL: cfg.NotionBaseURL,
		FallbackToken: cfg.NotionToken,
		DatabaseID:    cfg.DatabaseID,
		Frontmatter:   cfg.Frontmatter,
		Logger:        logger.Logger,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Mount("/", handler.Routes())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Printf("Notion content gateway starting on port %s (env: %s)", cfg.Port, cfg.Environment)
		if cfg.DatabaseID != "" {
			log.Printf("Default database: %s", cfg.DatabaseID)
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
