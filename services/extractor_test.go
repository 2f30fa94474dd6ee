package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"houselyzer/models"
)

func TestIsEuropeanDomain(t *testing.T) {
	cases := map[string]bool{
		"www.idealista.com":  true,
		"fotocasa.es":        true,
		"example.es":         true,
		"immo.example.fr":    true,
		"wohnung.example.de": true,
		"example.com":        false,
		"zillow.com":         false,
		"despacito.example":  false,
	}
	for host, expected := range cases {
		assert.Equal(t, expected, IsEuropeanDomain(host), host)
	}
}

func TestBuildTemplateDataEuropean(t *testing.T) {
	data := BuildTemplateData("", "https://example.es/piso/123")

	assert.Equal(t, "EUR", data.Currency)
	assert.Equal(t, 450000.0, data.Price)
	assert.Equal(t, "https://example.es/piso/123", data.Address)
	assert.Contains(t, data.Features, "Requires verification")
	assert.Equal(t, "apartment", data.PropertyType)
}

func TestBuildTemplateDataUS(t *testing.T) {
	data := BuildTemplateData("", "https://listings.example.com/42")

	assert.Equal(t, "USD", data.Currency)
	assert.Equal(t, 500000.0, data.Price)
}

func TestBuildTemplateDataTitleFromHTML(t *testing.T) {
	html := `<html><head><title>  Bright 3BR flat in the city centre </title></head><body></body></html>`
	data := BuildTemplateData(html, "https://example.com/flat")

	assert.Equal(t, "Bright 3BR flat in the city centre", data.Title)
}

func TestBuildTemplateDataTitleTruncated(t *testing.T) {
	long := strings.Repeat("a", 150)
	html := "<html><head><title>" + long + "</title></head></html>"
	data := BuildTemplateData(html, "https://example.com/flat")

	assert.Len(t, data.Title, 100)
}

func TestBuildTemplateDataNoContent(t *testing.T) {
	data := BuildTemplateData("", "https://example.com/listing/9")

	assert.Equal(t, "Imported property from example.com", data.Title)
}

func TestNewPropertyFromDataDefaults(t *testing.T) {
	data := &models.PropertyData{
		Title:        "Test listing",
		Price:        300000,
		Currency:     "USD",
		Bedrooms:     2,
		Bathrooms:    1,
		Sqft:         1000,
		Address:      "1 Main St",
		PropertyType: "condo",
	}
	property := NewPropertyFromData(data)

	assert.NotEmpty(t, property.ID)
	assert.Equal(t, 2020, property.YearBuilt)
	assert.Equal(t, "To be determined", property.Neighborhood)
	assert.Equal(t, 300, property.PricePerSqft)
	assert.Equal(t, "Imported automatically", property.ListingAgent)
	assert.Equal(t, 0, property.DaysOnMarket)
	assert.False(t, property.CreatedAt.IsZero())
	assert.Equal(t, property.CreatedAt, property.UpdatedAt)

	// идентификаторы не повторяются
	other := NewPropertyFromData(data)
	assert.NotEqual(t, property.ID, other.ID)
}

func TestPricePerSqft(t *testing.T) {
	assert.Equal(t, 375, PricePerSqft(450000, 1200))
	assert.Equal(t, 417, PricePerSqft(500000, 1200))
	assert.Equal(t, 0, PricePerSqft(500000, 0))
}

func TestCleanHTMLForPrompt(t *testing.T) {
	html := `<html><head><script>var x = 1;</script><style>body{}</style></head><body><!-- hidden -->visible</body></html>`
	cleaned := CleanHTMLForPrompt(html)

	assert.NotContains(t, cleaned, "var x")
	assert.NotContains(t, cleaned, "body{}")
	assert.NotContains(t, cleaned, "hidden")
	assert.Contains(t, cleaned, "visible")
}

func TestCleanHTMLForPromptTruncates(t *testing.T) {
	cleaned := CleanHTMLForPrompt(strings.Repeat("x", 20000))
	assert.Len(t, cleaned, 8000)
}
