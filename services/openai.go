package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"houselyzer/models"
)

var openAIEndpoint = "https://api.openai.com/v1/chat/completions"

var (
	scriptRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// Лимит контента в промпте, чтобы уложиться в токены модели
const maxPromptContent = 8000

const extractionPrompt = `Extract property information from this HTML content from %s.

HTML Content:
%s

Please extract and return ONLY a valid JSON object with the following structure:
{
  "title": "Property title",
  "price": 450000,
  "currency": "EUR" or "USD",
  "bedrooms": 3,
  "bathrooms": 2,
  "sqft": 1200,
  "address": "Full address",
  "description": "Property description",
  "features": ["feature1", "feature2"],
  "imageUrl": "https://example.com/image.jpg",
  "propertyType": "apartment" | "house" | "condo" | "townhouse",
  "yearBuilt": 2020,
  "neighborhood": "Neighborhood name"
}

Rules:
- Return ONLY valid JSON, no additional text
- Use realistic values based on the content
- If information is missing, use reasonable defaults
- Currency should be EUR for European sites, USD for others
- Property type should be one of: apartment, house, condo, townhouse
- Features should be an array of strings
- Use a placeholder image URL if no image is found`

// CleanHTMLForPrompt убирает скрипты, стили и комментарии и обрезает контент
func CleanHTMLForPrompt(htmlContent string) string {
	cleaned := scriptRe.ReplaceAllString(htmlContent, "")
	cleaned = styleRe.ReplaceAllString(cleaned, "")
	cleaned = commentRe.ReplaceAllString(cleaned, "")
	if len(cleaned) > maxPromptContent {
		cleaned = cleaned[:maxPromptContent]
	}
	return cleaned
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ExtractWithOpenAI просит модель вернуть строго JSON с полями объявления.
// Любая ошибка здесь не фатальна для пайплайна - выше сработает шаблон.
func ExtractWithOpenAI(httpClient *http.Client, htmlContent, pageURL, apiKey string) (*models.PropertyData, error) {
	prompt := fmt.Sprintf(extractionPrompt, pageURL, CleanHTMLForPrompt(htmlContent))

	body, err := json.Marshal(chatRequest{
		Model:       "gpt-3.5-turbo",
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   1000,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, openAIEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAI API error: %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return nil, fmt.Errorf("failed to decode OpenAI response: %v", err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("no content returned from OpenAI")
	}

	var data models.PropertyData
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &data); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response as JSON: %v", err)
	}
	return &data, nil
}
