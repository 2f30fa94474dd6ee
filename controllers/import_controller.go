package controllers

import (
	"net/http"
	"net/url"

	"houselyzer/models"
	"houselyzer/services"
	"houselyzer/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportController struct {
	db       *gorm.DB
	importer *services.PropertyImporter
}

func NewImportController(importer *services.PropertyImporter) *ImportController {
	return &ImportController{db: utils.GetDB(), importer: importer}
}

// POST /import - импортирует объявление по URL и сохраняет его.
// Снимки прогресса пишутся в Redis под importId, фронтенд может их поллить.
func (ic *ImportController) Import(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "url is required"})
		return
	}

	if parsed, err := url.Parse(req.URL); err != nil || !parsed.IsAbs() || parsed.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid URL"})
		return
	}

	importID := uuid.NewString()
	result := ic.importer.ImportProperty(req.URL, func(progress models.ImportProgress) {
		utils.SaveImportProgress(importID, progress)
	})

	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result":  gin.H{"importId": importID},
			"success": false,
			"error":   result.Error,
		})
		return
	}

	if err := ic.db.Create(result.Property).Error; err != nil {
		utils.LogError(err, "save imported property")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to save imported property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"importId": importID,
			"property": result.Property,
			"metadata": result.Metadata,
		},
		"success": true,
	})
}

// GET /import/:importId/progress
func (ic *ImportController) Progress(c *gin.Context) {
	progress, err := utils.GetImportProgress(c.Param("importId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "No progress found for this import"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": progress, "success": true})
}
