package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"houselyzer/config"
	"houselyzer/models"
	"houselyzer/utils"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ScrapeService выполняет серверный каскад извлечения:
// прямой fetch -> ScraperAPI -> OpenAI -> шаблонное извлечение
type ScrapeService struct {
	scraperAPIKey string
	openAIKey     string
	httpClient    *http.Client
}

func NewScrapeService(cfg *config.Config) *ScrapeService {
	return &ScrapeService{
		scraperAPIKey: cfg.ScraperAPIKey,
		openAIKey:     cfg.OpenAIAPIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchPage получает HTML страницы: сначала прямой запрос с браузерным
// User-Agent, при неудаче - ScraperAPI с рендерингом JS (если настроен ключ).
// Возвращает контент и способ получения: "direct" | "proxy".
func (ss *ScrapeService) FetchPage(pageURL string) (string, string, error) {
	content, err := ss.fetchDirect(pageURL)
	if err == nil {
		return content, "direct", nil
	}
	utils.LogInfo("direct fetch failed for %s: %v", pageURL, err)

	if ss.scraperAPIKey == "" {
		return "", "", fmt.Errorf("direct fetch failed and no ScraperAPI key available: %v", err)
	}

	content, proxyErr := ss.fetchViaProxy(pageURL)
	if proxyErr != nil {
		utils.LogInfo("ScraperAPI fetch failed for %s: %v", pageURL, proxyErr)
		return "", "", fmt.Errorf("both direct fetch and ScraperAPI failed: %v", proxyErr)
	}
	return content, "proxy", nil
}

func (ss *ScrapeService) fetchDirect(pageURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := ss.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("direct fetch failed: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (ss *ScrapeService) fetchViaProxy(pageURL string) (string, error) {
	proxyURL := fmt.Sprintf("http://api.scraperapi.com?api_key=%s&url=%s&render=true",
		ss.scraperAPIKey, url.QueryEscape(pageURL))

	resp, err := ss.httpClient.Get(proxyURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ScraperAPI failed: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Scrape запускает каскад для одного URL. Ошибку возвращает только когда
// страницу не удалось получить вообще - извлечение всегда деградирует до шаблона.
func (ss *ScrapeService) Scrape(pageURL, openAIKey string) (*models.ScrapeResponse, error) {
	content, method, err := ss.FetchPage(pageURL)
	if err != nil {
		return nil, err
	}
	utils.LogInfo("fetched %s via %s, content length: %d", pageURL, method, len(content))

	key := openAIKey
	if key == "" {
		key = ss.openAIKey
	}

	extractionMethod := "template"
	var data *models.PropertyData
	if key != "" {
		extracted, aiErr := ExtractWithOpenAI(ss.httpClient, content, pageURL, key)
		if aiErr != nil {
			// поглощаем: ниже сработает шаблонное извлечение
			utils.LogError(aiErr, "openai extraction")
		} else {
			data = extracted
			extractionMethod = "ai"
		}
	}
	if data == nil {
		data = BuildTemplateData(content, pageURL)
	}

	return &models.ScrapeResponse{
		Success: true,
		Data:    data,
		Metadata: &models.ImportMetadata{
			ScrapingMethod:   method,
			ContentLength:    len(content),
			ExtractionMethod: extractionMethod,
		},
	}, nil
}
