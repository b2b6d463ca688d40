package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactmansi/Recipe-Box/config"
	"github.com/contactmansi/Recipe-Box/internal/database"
	"github.com/contactmansi/Recipe-Box/internal/server"
	"github.com/contactmansi/Recipe-Box/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	opts := server.Options{
		DB:     db,
		Config: cfg,
	}

	// Rate limiting is skipped when redis is not reachable; the API works
	// without it.
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	} else {
		opts.RedisClient = redisClient
	}

	if s3Cfg, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to initialize S3 storage: %v", err)
	} else if s3Cfg != nil {
		opts.ImageStore = service.NewS3ImageStore(s3Cfg)
	}

	srv := server.New(opts)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
