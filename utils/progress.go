package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"houselyzer/models"
)

const (
	importProgressTTL = 10 * time.Minute
	scrapeCacheTTL    = time.Hour
)

// SaveImportProgress сохраняет снимок прогресса импорта в Redis.
// Без Redis (тесты, локальный запуск) просто ничего не делает.
func SaveImportProgress(importID string, progress models.ImportProgress) {
	rdb := GetRedis()
	if rdb == nil {
		return
	}
	data, err := json.Marshal(progress)
	if err != nil {
		return
	}
	key := fmt.Sprintf("import_progress_%s", importID)
	rdb.Set(RedisCtx(), key, data, importProgressTTL)
}

// GetImportProgress читает последний снимок прогресса импорта
func GetImportProgress(importID string) (*models.ImportProgress, error) {
	rdb := GetRedis()
	if rdb == nil {
		return nil, fmt.Errorf("redis is not configured")
	}
	key := fmt.Sprintf("import_progress_%s", importID)
	data, err := rdb.Get(RedisCtx(), key).Bytes()
	if err != nil {
		return nil, err
	}
	var progress models.ImportProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// CacheScrapeResponse кладёт ответ сервиса извлечения в кэш по URL,
// чтобы не скрейпить одну и ту же страницу повторно
func CacheScrapeResponse(url string, withAI bool, resp *models.ScrapeResponse) {
	rdb := GetRedis()
	if rdb == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	rdb.Set(RedisCtx(), scrapeCacheKey(url, withAI), data, scrapeCacheTTL)
}

// GetCachedScrapeResponse возвращает закэшированный ответ или nil
func GetCachedScrapeResponse(url string, withAI bool) *models.ScrapeResponse {
	rdb := GetRedis()
	if rdb == nil {
		return nil
	}
	data, err := rdb.Get(RedisCtx(), scrapeCacheKey(url, withAI)).Bytes()
	if err != nil {
		return nil
	}
	var resp models.ScrapeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return &resp
}

func scrapeCacheKey(url string, withAI bool) string {
	return fmt.Sprintf("scrape_cache_%t_%s", withAI, url)
}
