package models

// ImportProgress - текущая фаза импорта. Живёт только в Redis с TTL,
// в Postgres не сохраняется.
type ImportProgress struct {
	Step     string `json:"step"` // fetching | processing | complete | error
	Message  string `json:"message"`
	Progress int    `json:"progress"` // фиксированные отметки: 25 / 75 / 100 / 0
}

// ImportMetadata описывает, каким путём были получены данные
type ImportMetadata struct {
	ScrapingMethod   string `json:"scrapingMethod"`   // direct | proxy
	ContentLength    int    `json:"contentLength"`
	ExtractionMethod string `json:"extractionMethod"` // ai | template
}

// ImportResult - итог одной попытки импорта
type ImportResult struct {
	Success  bool            `json:"success"`
	Property *Property       `json:"property,omitempty"`
	Error    string          `json:"error,omitempty"`
	Metadata *ImportMetadata `json:"metadata,omitempty"`
}

// ScrapeRequest - тело запроса к сервису извлечения
type ScrapeRequest struct {
	URL          string `json:"url" binding:"required"`
	OpenAIAPIKey string `json:"openaiApiKey,omitempty"`
}

// PropertyData - сырые поля объявления, извлечённые из страницы
type PropertyData struct {
	Title        string   `json:"title"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	Sqft         float64  `json:"sqft"`
	Address      string   `json:"address"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	ImageURL     string   `json:"imageUrl"`
	PropertyType string   `json:"propertyType"`
	YearBuilt    int      `json:"yearBuilt,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
}

// ScrapeResponse - ответ сервиса извлечения
type ScrapeResponse struct {
	Success  bool            `json:"success"`
	Data     *PropertyData   `json:"data,omitempty"`
	Metadata *ImportMetadata `json:"metadata,omitempty"`
	Error    string          `json:"error,omitempty"`
}
