package main

import (
	"portfolio-backend/internal/app"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/config"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/logger"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Content-management backend for a personal portfolio site: public reads for projects, blogs and testimonials; admin-gated mutations.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Browser clients use the auth cookie instead.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Missing secrets are a fatal startup condition, never a runtime one.
	if err := cfg.Validate(); err != nil {
		panic(err)
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

	app.Run(cfg, log, db, redisClient)
}
