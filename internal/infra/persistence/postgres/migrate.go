package postgres

import (
	"medlink/internal/errors"
	"medlink/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table, index and foreign key of the schema.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
