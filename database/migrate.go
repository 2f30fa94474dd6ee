package database

import (
	"houselyzer/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Property{},
		&models.PropertyComment{},
		&models.Settings{},
	)
}
