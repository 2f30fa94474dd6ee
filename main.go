package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"houselyzer/config"
	"houselyzer/database"
	"houselyzer/routes"
	"houselyzer/services"
	"houselyzer/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Printf("failed to init file logger: %v", err)
	}

	// Подключение к PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	utils.SetDB(db)

	// Миграция
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	// Настройки по умолчанию при первом запуске
	if err := database.SeedSettings(db); err != nil {
		log.Fatalf("failed to seed settings: %v", err)
	}
	log.Println("Settings seeded (if needed)")

	// Redis не обязателен: без него отключаются трекинг прогресса импорта и кэш скрейпа
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unavailable (%v), import progress tracking disabled", err)
	} else {
		utils.SetRedis(rdb)
		log.Println("Connected to Redis")
	}

	// Суточный тик days_on_market
	go services.StartMarketCron(db)

	r := routes.SetupRouter()
	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
