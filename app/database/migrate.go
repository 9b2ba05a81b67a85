package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/silkline/catalog/models"
)

func allModels() []any {
	return append(models.TaxonomyModels(), &models.Product{})
}

// Migrate creates any missing tables, columns and indexes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Reset drops every catalog table and recreates the schema from scratch.
// All existing data is lost.
func Reset(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Migrator().DropTable(allModels()...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return Migrate(ctx, db)
}
