package main

import (
	"filmoteka/internal/app"
	"filmoteka/pkg/cache"
	"filmoteka/pkg/config"
	"filmoteka/pkg/database"
	"filmoteka/pkg/logger"
	"filmoteka/pkg/queue"
	"filmoteka/pkg/storage"
)

// @title           Filmoteka API
// @version         1.0
// @description     Movie catalog with favorites, reviews and watch history.

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	storageClient, err := storage.NewClient(cfg)
	if err != nil {
		log.Warn("File storage unavailable, avatar and poster uploads disabled: %v", err)
		storageClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, activity events will not be published: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, storageClient, queueClient, redisClient)
}
