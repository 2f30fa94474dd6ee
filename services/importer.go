package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"houselyzer/config"
	"houselyzer/models"
	"houselyzer/utils"
)

// ProgressFunc получает контрольные точки прогресса импорта.
// Колбэк зовётся синхронно и не должен блокировать.
type ProgressFunc func(models.ImportProgress)

// PropertyImporter превращает URL в объявление через внешний сервис
// извлечения, с деградацией до локального шаблонного fallback'а.
// Внутри только статическая конфигурация, поэтому параллельные импорты
// полностью независимы друг от друга.
type PropertyImporter struct {
	serviceURL string
	serviceKey string
	openAIKey  string
	httpClient *http.Client
}

func NewPropertyImporter(cfg *config.Config) *PropertyImporter {
	return &PropertyImporter{
		serviceURL: cfg.ScrapeServiceURL,
		serviceKey: cfg.ScrapeServiceKey,
		openAIKey:  cfg.OpenAIAPIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ImportProperty выполняет одну попытку импорта. Наружу ошибки не
// выбрасываются - любой исход упакован в ImportResult.
func (pi *PropertyImporter) ImportProperty(rawURL string, onProgress ProgressFunc) models.ImportResult {
	// Невалидный URL отсекаем до каких-либо событий прогресса и сетевых вызовов
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return models.ImportResult{Success: false, Error: fmt.Sprintf("invalid URL: %q", rawURL)}
	}

	// Сервис не настроен - сразу локальный шаблон по одному только URL
	if pi.serviceURL == "" {
		return pi.importFromTemplate(rawURL, onProgress)
	}

	pi.emit(onProgress, "fetching", 25, "Fetching page content...")

	resp, err := pi.callScrapeService(rawURL)
	if err != nil {
		// Сервис недоступен - деградируем до локального шаблона
		utils.LogError(err, "scrape service request")
		return pi.importFromTemplate(rawURL, onProgress)
	}
	defer resp.Body.Close()

	pi.emit(onProgress, "processing", 75, "Processing property data...")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pi.fail(onProgress, fmt.Sprintf("failed to read extraction service response: %v", err))
	}

	var scrapeResp models.ScrapeResponse
	if err := json.Unmarshal(body, &scrapeResp); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return pi.fail(onProgress, fmt.Sprintf("extraction service error: %d", resp.StatusCode))
		}
		return pi.fail(onProgress, "invalid response from extraction service")
	}

	if !scrapeResp.Success || scrapeResp.Data == nil {
		msg := scrapeResp.Error
		if msg == "" {
			msg = fmt.Sprintf("extraction service error: %d", resp.StatusCode)
		}
		return pi.fail(onProgress, msg)
	}

	property := NewPropertyFromData(scrapeResp.Data)

	pi.emit(onProgress, "complete", 100, "Property imported successfully")

	return models.ImportResult{
		Success:  true,
		Property: property,
		Metadata: scrapeResp.Metadata,
	}
}

// importFromTemplate строит объявление из одного URL без контента страницы.
// Шаблонное извлечение не падает никогда, поэтому исход всегда успешный.
func (pi *PropertyImporter) importFromTemplate(rawURL string, onProgress ProgressFunc) models.ImportResult {
	pi.emit(onProgress, "processing", 75, "Building property from URL...")

	property := NewPropertyFromData(BuildTemplateData("", rawURL))

	pi.emit(onProgress, "complete", 100, "Property imported successfully")

	return models.ImportResult{
		Success:  true,
		Property: property,
		Metadata: &models.ImportMetadata{ExtractionMethod: "template"},
	}
}

func (pi *PropertyImporter) callScrapeService(rawURL string) (*http.Response, error) {
	reqBody, err := json.Marshal(models.ScrapeRequest{URL: rawURL, OpenAIAPIKey: pi.openAIKey})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, pi.serviceURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if pi.serviceKey != "" {
		req.Header.Set("Authorization", "Bearer "+pi.serviceKey)
	}

	return pi.httpClient.Do(req)
}

func (pi *PropertyImporter) fail(onProgress ProgressFunc, msg string) models.ImportResult {
	pi.emit(onProgress, "error", 0, msg)
	return models.ImportResult{Success: false, Error: msg}
}

// emit зовёт колбэк прогресса; паника в колбэке не должна ронять пайплайн
func (pi *PropertyImporter) emit(onProgress ProgressFunc, step string, progress int, message string) {
	if onProgress == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	onProgress(models.ImportProgress{Step: step, Message: message, Progress: progress})
}
