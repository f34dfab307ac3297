package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pathfinderhq/pathfinder/api"
	dbfs "github.com/pathfinderhq/pathfinder/db"
	"github.com/pathfinderhq/pathfinder/internal/cache"
	"github.com/pathfinderhq/pathfinder/internal/config"
	"github.com/pathfinderhq/pathfinder/internal/db"
	"github.com/pathfinderhq/pathfinder/internal/maintenance"
	"github.com/pathfinderhq/pathfinder/internal/repository/sqlite"
	"github.com/pathfinderhq/pathfinder/pkg/ollama"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Starting pathfinder server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection and apply migrations + seed schemas
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Migrate(ctx, database, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	// Cache is optional: no redis URL means every read goes to the store
	var listCache *cache.ListCache
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Redis unavailable, running without cache: %v", err)
		} else {
			listCache = cache.NewListCache(rdb, cfg.CacheTTL)
			defer rdb.Close()
		}
	}

	// Collaborator is optional: without it the chat/resume surface serves
	// local fallbacks only
	var llm *ollama.Client
	if cfg.Engine.BaseURL != "" {
		llm, err = ollama.NewDefaultClient(ollama.Config{
			BaseURL:                 cfg.Engine.BaseURL,
			Timeout:                 cfg.Engine.Timeout,
			Retries:                 cfg.Engine.Retries,
			Backoff:                 cfg.Engine.Backoff,
			CircuitFailureThreshold: cfg.Engine.CircuitFailureThreshold,
			CircuitReset:            cfg.Engine.CircuitReset,
		})
		if err != nil {
			log.Printf("Collaborator client unavailable, using fallbacks: %v", err)
			llm = nil
		} else {
			defer llm.Close()
		}
	}

	handler, err := api.SetupRoutes(ctx, cfg, version, buildTime, api.Deps{
		DB:     database,
		Cache:  listCache,
		Ollama: llm,
	})
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Stale posting sweep
	var sweeper *maintenance.Sweeper
	if cfg.Maintenance.Spec != "" && cfg.Maintenance.MaxJobAgeDays > 0 {
		repo := sqlite.New(database, nil)
		maxAge := time.Duration(cfg.Maintenance.MaxJobAgeDays) * 24 * time.Hour
		sweeper = maintenance.New(repo, listCache, cfg.Maintenance.Spec, maxAge, nil)
		if err := sweeper.Start(ctx); err != nil {
			log.Fatalf("Failed to start maintenance scheduler: %v", err)
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if sweeper != nil {
		sweeper.Stop()
	}

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
