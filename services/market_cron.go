package services

import (
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"houselyzer/models"
	"houselyzer/utils"
)

// StartMarketCron раз в сутки увеличивает days_on_market у всех объявлений
func StartMarketCron(db *gorm.DB) {
	c := cron.New()
	c.AddFunc("0 0 * * *", func() { // каждый день в полночь
		if err := IncrementDaysOnMarket(db); err != nil {
			utils.LogError(err, "days on market cron")
		}
	})
	c.Start()
	utils.LogInfo("market cron started")
}

// IncrementDaysOnMarket добавляет день всем объявлениям. UpdateColumn,
// чтобы не трогать updated_at: суточный тик - не пользовательская правка.
func IncrementDaysOnMarket(db *gorm.DB) error {
	return db.Model(&models.Property{}).
		Where("1 = 1").
		UpdateColumn("days_on_market", gorm.Expr("days_on_market + 1")).Error
}
