package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tweet-timeline-cache/internal/config"
	"tweet-timeline-cache/internal/handler"
	"tweet-timeline-cache/internal/router"
	"tweet-timeline-cache/internal/service"
	"tweet-timeline-cache/internal/store"
	"tweet-timeline-cache/internal/upstream"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting tweet-timeline-cache...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	if cfg.Upstream.BearerToken == "" {
		log.Println("Warning: TWITTER_BEARER_TOKEN is not set; upstream requests will be rejected")
	}

	// Initialize object store based on config
	var objectStore store.ObjectStore
	switch cfg.Cache.StoreType {
	case "redis":
		redisStore, err := store.NewRedisObjectStore(store.RedisConfig{
			Addr:      cfg.Cache.RedisAddress(),
			Password:  cfg.Cache.RedisPassword,
			DB:        cfg.Cache.RedisDB,
			KeyPrefix: cfg.Cache.RedisPrefix,
		})
		if err != nil {
			log.Fatalf("Failed to initialize Redis store: %v", err)
		}
		objectStore = redisStore
		log.Println("Redis object store initialized")
	case "sqlite":
		sqliteStore, err := store.NewSQLiteObjectStore(cfg.Cache.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite store: %v", err)
		}
		objectStore = sqliteStore
		log.Println("SQLite object store initialized")
	case "mysql":
		db, err := sql.Open("mysql", cfg.Cache.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to open MySQL connection: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping MySQL: %v", err)
		}

		mysqlStore, err := store.NewMySQLObjectStore(db)
		if err != nil {
			log.Fatalf("Failed to initialize MySQL store: %v", err)
		}
		objectStore = mysqlStore
		log.Println("MySQL object store initialized")
	default: // memory
		objectStore = store.NewMemoryObjectStore()
		log.Println("In-memory object store initialized")
	}
	defer objectStore.Close()

	// Initialize upstream client
	client, err := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.BearerToken, cfg.Upstream.Timeout)
	if err != nil {
		log.Fatalf("Failed to initialize upstream client: %v", err)
	}

	// Initialize service and handlers
	timelineService := service.NewTimelineService(objectStore, client, cfg.Cache.FreshnessWindow)
	timelineHandler := handler.NewTimelineHandler(timelineService)
	healthHandler := handler.NewHealthHandler(cfg.Cache.StoreType, cfg.Cache.FreshnessWindow, cfg.App.Version)

	// Create router
	r := router.New(router.Config{
		TimelineHandler: timelineHandler,
		HealthHandler:   healthHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s (store=%s, window=%s)",
			cfg.Server.Address(), cfg.Cache.StoreType, cfg.Cache.FreshnessWindow)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
