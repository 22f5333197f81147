package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resortfront/internal/api"
	"resortfront/internal/config"
	"resortfront/internal/handlers"
	"resortfront/internal/services"
	"resortfront/internal/utils/crypto"
	"resortfront/internal/utils/logger"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {

	logger := logger.New("resortfront")

	// check if .env file exists
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		logger.Info("No .env file found, skipping environment variable loading")
	} else {
		logger.Info("Loading environment variables from .env file")
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize keys
	if err := crypto.InitializeKeys(cfg.Crypto.SealKey); err != nil {
		log.Fatalf("Failed to initialize keys: %v", err)
	}

	// Connect to redis (sessions and notifications)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("Failed to close redis connection", err)
		}
	}()

	// Initialize S3 service for resort image uploads
	if cfg.Storage.S3.BucketName != "" {
		s3Service, err := services.NewS3Service(
			cfg.Storage.S3.BucketName,
			cfg.Storage.S3.Endpoint,
			cfg.Storage.S3.Region,
			cfg.Storage.S3.AccessKey,
			cfg.Storage.S3.SecretKey,
			cfg.Storage.Provider,
		)
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		handlers.RegisterStorageHandler(s3Service)
	} else {
		logger.Warn("S3 storage not configured, image uploads disabled")
	}

	// Initialize API server
	apiServer, err := api.NewServer(cfg, rdb)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	go func() {
		logger.Success("Server started on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := apiServer.Start(); err != nil {
			logger.Error("Server error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Create a deadline for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", err)
	}

	logger.Info("Server shutdown gracefully")
}
