package controllers

import (
	"errors"
	"net/http"
	"time"

	"houselyzer/models"
	"houselyzer/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	db *gorm.DB
}

func NewSettingsController() *SettingsController {
	return &SettingsController{db: utils.GetDB()}
}

// GET /settings - настройки одни на инсталляцию, при первом обращении создаются
func (sc *SettingsController) Get(c *gin.Context) {
	var settings models.Settings
	err := sc.db.First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultSettings()
		if err := sc.db.Create(&settings).Error; err != nil {
			utils.LogError(err, "create default settings")
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load settings"})
			return
		}
	} else if err != nil {
		utils.LogError(err, "load settings")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": settings, "success": true})
}

// PUT /settings
func (sc *SettingsController) Update(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	if settings.Currency != "USD" && settings.Currency != "EUR" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "currency must be USD or EUR"})
		return
	}
	if settings.MeasurementUnit != "sqft" && settings.MeasurementUnit != "sqm" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "measurementUnit must be sqft or sqm"})
		return
	}
	if settings.Language != "es" && settings.Language != "en" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "language must be es or en"})
		return
	}
	if settings.DefaultLoanTerm <= 0 || settings.DefaultInterestRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "defaultLoanTerm must be positive and defaultInterestRate must not be negative"})
		return
	}

	settings.ID = 1
	settings.UpdatedAt = time.Now()

	if err := sc.db.Save(&settings).Error; err != nil {
		utils.LogError(err, "update settings")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": settings, "success": true})
}
