package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"film-platform/studio-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for projects and executions.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Project{},
		&entities.Execution{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
