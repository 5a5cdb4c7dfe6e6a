package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"detailing-app-server/internal/models"
	"detailing-app-server/internal/utils"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	DB *gorm.DB
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{DB: db}
}

// ContactRequest represents the public contact form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// CreateInquiry records a contact inquiry. The record is write-only; nothing
// in the dashboard reads it back yet.
func (h *ContactHandler) CreateInquiry(c *gin.Context) {
	var req ContactRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	inquiry := models.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.DB.Create(&inquiry).Error; err != nil {
		utils.InternalServerError(c, "Failed to save inquiry: "+err.Error())
		return
	}

	utils.Created(c, "Inquiry received", nil)
}
