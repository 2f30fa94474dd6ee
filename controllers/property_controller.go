package controllers

import (
	"net/http"
	"strconv"
	"time"

	"houselyzer/models"
	"houselyzer/services"
	"houselyzer/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyController struct {
	db *gorm.DB
}

func NewPropertyController() *PropertyController {
	return &PropertyController{db: utils.GetDB()}
}

// Сортировка только по известным колонкам - ничего из query в SQL напрямую
var propertySortColumns = map[string]string{
	"price":        "price",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"sqft":         "sqft",
	"daysOnMarket": "days_on_market",
	"pricePerSqft": "price_per_sqft",
	"yearBuilt":    "year_built",
}

func validPropertyType(t string) bool {
	return t == "house" || t == "condo" || t == "townhouse" || t == "apartment"
}

func validCurrency(c string) bool {
	return c == "USD" || c == "EUR"
}

// GET /properties?page=1&limit=20&sortBy=price&sortOrder=desc
func (pc *PropertyController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	column, ok := propertySortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " ASC"
	if sortOrder == "desc" {
		order = column + " DESC"
	}

	var total int64
	pc.db.Model(&models.Property{}).Count(&total)

	var properties []models.Property
	offset := (page - 1) * limit
	pc.db.Order(order).Offset(offset).Limit(limit).Find(&properties)

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"data": properties,
			"pagination": gin.H{
				"page":       page,
				"limit":      limit,
				"total":      total,
				"totalPages": (total + int64(limit) - 1) / int64(limit),
			},
		},
		"success": true,
	})
}

// GET /properties/:id
func (pc *PropertyController) Get(c *gin.Context) {
	var property models.Property
	if err := pc.db.Preload("Comments").First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": property, "success": true})
}

// POST /properties
func (pc *PropertyController) Create(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	if property.Title == "" || property.Price <= 0 || property.Sqft <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "title, positive price and sqft are required"})
		return
	}
	if property.Currency == "" {
		property.Currency = "USD"
	}
	if !validCurrency(property.Currency) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "currency must be USD or EUR"})
		return
	}
	if property.PropertyType != "" && !validPropertyType(property.PropertyType) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "propertyType must be one of: house, condo, townhouse, apartment"})
		return
	}

	now := time.Now()
	property.ID = uuid.NewString()
	property.CreatedAt = now
	property.UpdatedAt = now
	property.PricePerSqft = services.PricePerSqft(property.Price, property.Sqft)
	if property.Features == nil {
		property.Features = models.JSONStrings(nil)
	}
	// Комментарии создаются только через свой эндпоинт
	property.Comments = nil

	if err := pc.db.Create(&property).Error; err != nil {
		utils.LogError(err, "create property")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": property, "success": true})
}

// PUT /properties/:id - полная замена редактируемых полей (форма шлёт весь объект)
func (pc *PropertyController) Update(c *gin.Context) {
	var existing models.Property
	if err := pc.db.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Property not found"})
		return
	}

	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	if property.Title == "" || property.Price <= 0 || property.Sqft <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "title, positive price and sqft are required"})
		return
	}
	if !validCurrency(property.Currency) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "currency must be USD or EUR"})
		return
	}
	if property.PropertyType != "" && !validPropertyType(property.PropertyType) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "propertyType must be one of: house, condo, townhouse, apartment"})
		return
	}

	// Идентичность и момент создания не переназначаются
	property.ID = existing.ID
	property.CreatedAt = existing.CreatedAt
	property.UpdatedAt = time.Now()
	property.PricePerSqft = services.PricePerSqft(property.Price, property.Sqft)
	if property.Features == nil {
		property.Features = models.JSONStrings(nil)
	}
	property.Comments = nil

	if err := pc.db.Save(&property).Error; err != nil {
		utils.LogError(err, "update property")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": property, "success": true})
}

// DELETE /properties/:id - вместе с комментариями; из избранного пропадает само
func (pc *PropertyController) Delete(c *gin.Context) {
	id := c.Param("id")

	var property models.Property
	if err := pc.db.First(&property, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Property not found"})
		return
	}

	if err := pc.db.Where("property_id = ?", id).Delete(&models.PropertyComment{}).Error; err != nil {
		utils.LogError(err, "delete property comments")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to delete property"})
		return
	}
	if err := pc.db.Delete(&models.Property{}, "id = ?", id).Error; err != nil {
		utils.LogError(err, "delete property")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"deleted": id}, "success": true})
}

// POST /properties/:id/favorite - переключает флаг избранного
func (pc *PropertyController) ToggleFavorite(c *gin.Context) {
	var property models.Property
	if err := pc.db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Property not found"})
		return
	}

	property.IsFavorite = !property.IsFavorite
	property.UpdatedAt = time.Now()

	if err := pc.db.Model(&property).Updates(map[string]interface{}{
		"is_favorite": property.IsFavorite,
		"updated_at":  property.UpdatedAt,
	}).Error; err != nil {
		utils.LogError(err, "toggle favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": property, "success": true})
}

// POST /properties/:id/price-indicator - цикл: "" -> good -> expensive -> ""
func (pc *PropertyController) CyclePriceIndicator(c *gin.Context) {
	var property models.Property
	if err := pc.db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Property not found"})
		return
	}

	switch property.PriceIndicator {
	case "":
		property.PriceIndicator = "good"
	case "good":
		property.PriceIndicator = "expensive"
	default:
		property.PriceIndicator = ""
	}
	property.UpdatedAt = time.Now()

	if err := pc.db.Model(&property).Updates(map[string]interface{}{
		"price_indicator": property.PriceIndicator,
		"updated_at":      property.UpdatedAt,
	}).Error; err != nil {
		utils.LogError(err, "cycle price indicator")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update price indicator"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": property, "success": true})
}

// GET /favorites
func (pc *PropertyController) Favorites(c *gin.Context) {
	var favorites []models.Property
	if err := pc.db.Where("is_favorite = ?", true).Order("updated_at DESC").Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to get favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": favorites, "success": true})
}
