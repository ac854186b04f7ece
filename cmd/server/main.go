package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/okadachi/portfolio-api/internal/api"
	"github.com/okadachi/portfolio-api/internal/config"
	"github.com/okadachi/portfolio-api/internal/github"
	"github.com/okadachi/portfolio-api/internal/portfolio"
	"github.com/okadachi/portfolio-api/internal/skills"

	_ "github.com/okadachi/portfolio-api/docs"
)

// @title Portfolio API
// @version 1.0
// @description API serving derived GitHub portfolio data
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.GitHub.Token == "" {
		logger.Warn("GITHUB_TOKEN not set, using unauthenticated GitHub API limits")
	}

	// Initialize services
	client := github.NewGitHubClient(cfg.GitHub.Token, logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithTimeout(cfg.GitHub.Timeout),
	)
	categorizer, err := skills.NewCategorizer()
	if err != nil {
		logger.Fatalf("Failed to load skill catalog: %v", err)
	}
	store := portfolio.NewMemoryStore()
	service := portfolio.NewService(client, store, categorizer, cfg.GitHubUsername, cfg.Refresh, logger)
	scheduler := portfolio.NewScheduler(service, cfg.Refresh.Interval, logger)
	apiHandler := api.NewHandler(service, scheduler, logger)

	// Setup router with middleware
	router := api.SetupRouter(apiHandler)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Start background refresh loop
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.Start(ctx)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()
	scheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
