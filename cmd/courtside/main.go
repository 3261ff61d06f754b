package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fortuna/courtside/internal/api/rest"
	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/store"
)

const (
	serviceName    = "courtside"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - NBA Matchup & Props Service", serviceName, serviceVersion)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := store.NewDatabase(cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to database")

	// Initialize Redis cache (optional; the service runs without it)
	var redisCache *cache.RedisCache
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable: %v (running without cache)", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
			log.Println("✓ Connected to Redis")
		}
	}

	// Initialize REST API server
	port := strconv.Itoa(cfg.RESTPort)
	restServer := rest.NewServer(port, db, redisCache, rest.Options{
		TopPicksLimit:  cfg.TopPicksLimit,
		LeagueTableTTL: cfg.LeagueTableTTL,
	})
	go func() {
		log.Printf("Starting REST API server on port %s", port)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", port)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}
