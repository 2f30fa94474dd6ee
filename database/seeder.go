package database

import (
	"houselyzer/models"

	"gorm.io/gorm"
)

// SeedSettings проверяет таблицу settings и, если она пуста,
// создаёт строку с настройками по умолчанию
func SeedSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // настройки уже есть, ничего не делаем
	}
	settings := models.DefaultSettings()
	return db.Create(&settings).Error
}
