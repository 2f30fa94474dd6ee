package controllers

import (
	"net/http"

	"houselyzer/models"
	"houselyzer/services"
	"houselyzer/utils"

	"github.com/gin-gonic/gin"
)

type ScrapeController struct {
	scraper *services.ScrapeService
}

func NewScrapeController(scraper *services.ScrapeService) *ScrapeController {
	return &ScrapeController{scraper: scraper}
}

// POST /scrape - серверная сторона контракта сервиса извлечения.
// Отвечает в формате самого сервиса, а не в обёртке result/success,
// чтобы клиентский импортёр мог ходить сюда как к внешнему сервису.
func (sc *ScrapeController) Scrape(c *gin.Context) {
	var req models.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ScrapeResponse{Success: false, Error: "URL is required"})
		return
	}

	withAI := req.OpenAIAPIKey != ""
	if cached := utils.GetCachedScrapeResponse(req.URL, withAI); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := sc.scraper.Scrape(req.URL, req.OpenAIAPIKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ScrapeResponse{Success: false, Error: err.Error()})
		return
	}

	utils.CacheScrapeResponse(req.URL, withAI, result)
	c.JSON(http.StatusOK, result)
}
