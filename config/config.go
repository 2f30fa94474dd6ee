package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	Port string

	// Внешний сервис извлечения (scrape-property). Пусто - работаем
	// только через локальный шаблонный fallback.
	ScrapeServiceURL string
	ScrapeServiceKey string

	// ScraperAPI - прокси с рендерингом JS для страниц, которые не отдаются напрямую
	ScraperAPIKey string

	// OpenAI - извлечение полей объявления из HTML
	OpenAIAPIKey string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:     getenvOr("DB_HOST", "localhost"),
		DBPort:     getenvOr("DB_PORT", "5432"),
		DBUser:     getenvOr("DB_USER", "houselyzer"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenvOr("DB_NAME", "houselyzer"),

		RedisAddr:     getenvOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		Port: getenvOr("PORT", "8080"),

		ScrapeServiceURL: os.Getenv("SCRAPE_SERVICE_URL"),
		ScrapeServiceKey: os.Getenv("SCRAPE_SERVICE_KEY"),
		ScraperAPIKey:    os.Getenv("SCRAPER_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
	}
}

func getenvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
