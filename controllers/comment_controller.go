package controllers

import (
	"net/http"
	"time"

	"houselyzer/models"
	"houselyzer/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentController struct {
	db *gorm.DB
}

func NewCommentController() *CommentController {
	return &CommentController{db: utils.GetDB()}
}

func validCommentType(t string) bool {
	return t == "note" || t == "reminder" || t == "observation" || t == "question"
}

func validCommentPriority(p string) bool {
	return p == "low" || p == "medium" || p == "high"
}

// POST /properties/:id/comments
func (cc *CommentController) Create(c *gin.Context) {
	propertyID := c.Param("id")

	var property models.Property
	if err := cc.db.First(&property, "id = ?", propertyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Property not found"})
		return
	}

	var req struct {
		Text     string `json:"text" binding:"required"`
		Type     string `json:"type"`
		Priority string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "text is required"})
		return
	}
	if req.Type == "" {
		req.Type = "note"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}
	if !validCommentType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "type must be one of: note, reminder, observation, question"})
		return
	}
	if !validCommentPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "priority must be one of: low, medium, high"})
		return
	}

	now := time.Now()
	comment := models.PropertyComment{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		Text:       req.Text,
		Type:       req.Type,
		Priority:   req.Priority,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := cc.db.Create(&comment).Error; err != nil {
		utils.LogError(err, "create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to create comment"})
		return
	}
	cc.touchProperty(propertyID, now)

	c.JSON(http.StatusCreated, gin.H{"result": comment, "success": true})
}

// PUT /properties/:id/comments/:commentId
func (cc *CommentController) Update(c *gin.Context) {
	propertyID := c.Param("id")
	commentID := c.Param("commentId")

	var comment models.PropertyComment
	if err := cc.db.First(&comment, "id = ? AND property_id = ?", commentID, propertyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Comment not found"})
		return
	}

	var req struct {
		Text     string `json:"text" binding:"required"`
		Type     string `json:"type"`
		Priority string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "text is required"})
		return
	}
	if req.Type != "" && !validCommentType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "type must be one of: note, reminder, observation, question"})
		return
	}
	if req.Priority != "" && !validCommentPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "priority must be one of: low, medium, high"})
		return
	}

	comment.Text = req.Text
	if req.Type != "" {
		comment.Type = req.Type
	}
	if req.Priority != "" {
		comment.Priority = req.Priority
	}
	comment.UpdatedAt = time.Now()

	if err := cc.db.Save(&comment).Error; err != nil {
		utils.LogError(err, "update comment")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to update comment"})
		return
	}
	cc.touchProperty(propertyID, comment.UpdatedAt)

	c.JSON(http.StatusOK, gin.H{"result": comment, "success": true})
}

// DELETE /properties/:id/comments/:commentId
func (cc *CommentController) Delete(c *gin.Context) {
	propertyID := c.Param("id")
	commentID := c.Param("commentId")

	var comment models.PropertyComment
	if err := cc.db.First(&comment, "id = ? AND property_id = ?", commentID, propertyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Comment not found"})
		return
	}

	if err := cc.db.Delete(&comment).Error; err != nil {
		utils.LogError(err, "delete comment")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Failed to delete comment"})
		return
	}
	cc.touchProperty(propertyID, time.Now())

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"deleted": commentID}, "success": true})
}

// Комментарии - часть карточки объявления, поэтому правка комментария
// обновляет updated_at самого объявления
func (cc *CommentController) touchProperty(propertyID string, at time.Time) {
	cc.db.Model(&models.Property{}).Where("id = ?", propertyID).Update("updated_at", at)
}
