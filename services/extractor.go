package services

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"houselyzer/models"
)

const (
	placeholderImageURL = "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg"
	maxTitleLength      = 100
)

// IsEuropeanDomain - единая эвристика "европейской" площадки.
// Используется и локальным fallback'ом импортёра, и эндпоинтом /scrape,
// чтобы результат не зависел от того, какая сторона его построила.
func IsEuropeanDomain(host string) bool {
	host = strings.ToLower(host)
	return strings.Contains(host, "idealista") ||
		strings.Contains(host, "fotocasa") ||
		strings.HasSuffix(host, ".es") ||
		strings.HasSuffix(host, ".fr") ||
		strings.HasSuffix(host, ".de")
}

// ExtractPageTitle достаёт содержимое тега <title>; пустая строка, если тега нет
func ExtractPageTitle(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// BuildTemplateData - детерминированное шаблонное извлечение: валюта и базовая
// цена по домену, заголовок из <title> (если контент есть), остальные поля -
// фиксированные заглушки с пометкой о необходимости проверки. Не падает никогда.
func BuildTemplateData(htmlContent, sourceURL string) *models.PropertyData {
	host := sourceURL
	if parsed, err := url.Parse(sourceURL); err == nil && parsed.Host != "" {
		host = parsed.Host
	}

	currency := "USD"
	basePrice := 500000.0
	if IsEuropeanDomain(host) {
		currency = "EUR"
		basePrice = 450000
	}

	title := ExtractPageTitle(htmlContent)
	if title == "" {
		title = fmt.Sprintf("Imported property from %s", host)
	}
	if runes := []rune(title); len(runes) > maxTitleLength {
		title = string(runes[:maxTitleLength])
	}

	return &models.PropertyData{
		Title:        title,
		Price:        basePrice,
		Currency:     currency,
		Bedrooms:     3,
		Bathrooms:    2,
		Sqft:         1200,
		Address:      sourceURL,
		Description:  fmt.Sprintf("Property imported from %s. Fields were filled in automatically and may need review.", sourceURL),
		Features:     []string{"Imported automatically", "Requires verification"},
		ImageURL:     placeholderImageURL,
		PropertyType: "apartment",
		YearBuilt:    2020,
		Neighborhood: "To be determined",
	}
}

// NewPropertyFromData собирает объявление из извлечённых полей,
// подставляя значения по умолчанию вместо пропусков
func NewPropertyFromData(data *models.PropertyData) *models.Property {
	now := time.Now()

	yearBuilt := data.YearBuilt
	if yearBuilt == 0 {
		yearBuilt = 2020
	}
	neighborhood := data.Neighborhood
	if neighborhood == "" {
		neighborhood = "To be determined"
	}

	return &models.Property{
		ID:           uuid.NewString(),
		Title:        data.Title,
		Address:      data.Address,
		Price:        data.Price,
		Currency:     data.Currency,
		Bedrooms:     data.Bedrooms,
		Bathrooms:    data.Bathrooms,
		Sqft:         data.Sqft,
		YearBuilt:    yearBuilt,
		PropertyType: data.PropertyType,
		ImageURL:     data.ImageURL,
		Description:  data.Description,
		Features:     models.JSONStrings(data.Features),
		Neighborhood: neighborhood,
		PricePerSqft: PricePerSqft(data.Price, data.Sqft),
		ListingAgent: "Imported automatically",
		DaysOnMarket: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PricePerSqft держит инвариант: цена за квадрат всегда round(price/sqft)
func PricePerSqft(price, sqft float64) int {
	if sqft <= 0 {
		return 0
	}
	return int(math.Round(price / sqft))
}
