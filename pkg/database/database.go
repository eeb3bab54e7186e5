package database

import (
	"fmt"

	"portfolio-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB opens the process-lifetime connection pool. Schema changes are
// handled by goose - see cmd/migrate/main.go.
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey so
		// the slug collision path can be told apart from other write errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
