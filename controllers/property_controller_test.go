package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"houselyzer/models"
)

func TestPropertyCRUD(t *testing.T) {
	r := setupRouter(t)

	// создание
	w := doRequest(r, "POST", "/properties", map[string]interface{}{
		"title":        "Test home",
		"address":      "1 Main St",
		"price":        250000,
		"currency":     "USD",
		"bedrooms":     3,
		"bathrooms":    2,
		"sqft":         1000,
		"yearBuilt":    2015,
		"propertyType": "house",
		"features":     []string{"garden"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Property
	resp := parseResponse(t, w, &created)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 250, created.PricePerSqft)
	assert.False(t, created.CreatedAt.IsZero())

	// чтение по id
	w = doRequest(r, "GET", "/properties/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// список с пагинацией
	w = doRequest(r, "GET", "/properties?page=1&limit=10&sortBy=price&sortOrder=asc", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data       []models.Property `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	parseResponse(t, w, &list)
	assert.Equal(t, int64(1), list.Pagination.Total)
	assert.Len(t, list.Data, 1)

	// правка пересчитывает цену за квадрат и обновляет updated_at
	w = doRequest(r, "PUT", "/properties/"+created.ID, map[string]interface{}{
		"title":        "Test home",
		"address":      "1 Main St",
		"price":        300000,
		"currency":     "USD",
		"bedrooms":     3,
		"bathrooms":    2,
		"sqft":         1000,
		"yearBuilt":    2015,
		"propertyType": "house",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.Property
	parseResponse(t, w, &updated)
	assert.Equal(t, 300, updated.PricePerSqft)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// удаление
	w = doRequest(r, "DELETE", "/properties/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(r, "GET", "/properties/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPropertyCreateValidation(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/properties", map[string]interface{}{
		"title": "No price", "sqft": 900,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, "POST", "/properties", map[string]interface{}{
		"title": "Bad currency", "price": 100000, "sqft": 900, "currency": "GBP",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, "POST", "/properties", map[string]interface{}{
		"title": "Bad type", "price": 100000, "sqft": 900, "propertyType": "castle",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleFavorite(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/properties", map[string]interface{}{
		"title": "Fav home", "price": 200000, "sqft": 800,
	})
	var created models.Property
	parseResponse(t, w, &created)

	// включаем избранное
	w = doRequest(r, "POST", "/properties/"+created.ID+"/favorite", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var toggled models.Property
	parseResponse(t, w, &toggled)
	assert.True(t, toggled.IsFavorite)

	var favorites []models.Property
	w = doRequest(r, "GET", "/favorites", nil)
	parseResponse(t, w, &favorites)
	assert.Len(t, favorites, 1)

	// выключаем
	w = doRequest(r, "POST", "/properties/"+created.ID+"/favorite", nil)
	parseResponse(t, w, &toggled)
	assert.False(t, toggled.IsFavorite)

	w = doRequest(r, "GET", "/favorites", nil)
	parseResponse(t, w, &favorites)
	assert.Empty(t, favorites)
}

func TestCyclePriceIndicator(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/properties", map[string]interface{}{
		"title": "Indicator home", "price": 200000, "sqft": 800,
	})
	var created models.Property
	parseResponse(t, w, &created)
	assert.Equal(t, "", created.PriceIndicator)

	var p models.Property
	w = doRequest(r, "POST", "/properties/"+created.ID+"/price-indicator", nil)
	parseResponse(t, w, &p)
	assert.Equal(t, "good", p.PriceIndicator)

	w = doRequest(r, "POST", "/properties/"+created.ID+"/price-indicator", nil)
	parseResponse(t, w, &p)
	assert.Equal(t, "expensive", p.PriceIndicator)

	// третий тык возвращает в исходное состояние
	w = doRequest(r, "POST", "/properties/"+created.ID+"/price-indicator", nil)
	parseResponse(t, w, &p)
	assert.Equal(t, "", p.PriceIndicator)
}

func TestPropertyComments(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/properties", map[string]interface{}{
		"title": "Commented home", "price": 200000, "sqft": 800,
	})
	var created models.Property
	parseResponse(t, w, &created)

	// добавление
	w = doRequest(r, "POST", "/properties/"+created.ID+"/comments", map[string]interface{}{
		"text": "call the agent", "type": "reminder", "priority": "high",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var comment models.PropertyComment
	parseResponse(t, w, &comment)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "reminder", comment.Type)

	// комментарии приходят вместе с карточкой
	w = doRequest(r, "GET", "/properties/"+created.ID, nil)
	var withComments models.Property
	parseResponse(t, w, &withComments)
	assert.Len(t, withComments.Comments, 1)

	// правка
	w = doRequest(r, "PUT", "/properties/"+created.ID+"/comments/"+comment.ID, map[string]interface{}{
		"text": "agent called back", "priority": "low",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.PropertyComment
	parseResponse(t, w, &updated)
	assert.Equal(t, "agent called back", updated.Text)
	assert.Equal(t, "low", updated.Priority)

	// неправильный тип отклоняется
	w = doRequest(r, "POST", "/properties/"+created.ID+"/comments", map[string]interface{}{
		"text": "x", "type": "rant",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// удаление
	w = doRequest(r, "DELETE", "/properties/"+created.ID+"/comments/"+comment.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "GET", "/properties/"+created.ID, nil)
	withComments = models.Property{}
	parseResponse(t, w, &withComments)
	assert.Empty(t, withComments.Comments)
}
