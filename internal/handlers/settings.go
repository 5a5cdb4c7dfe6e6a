package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"detailing-app-server/internal/models"
	"detailing-app-server/internal/utils"
)

// SettingHandler handles singular site settings such as the home page
// hero description.
type SettingHandler struct {
	DB *gorm.DB
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(db *gorm.DB) *SettingHandler {
	return &SettingHandler{DB: db}
}

// SettingRequest represents the request body for updating a setting value.
type SettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// GetHero returns the hero description shown on the public home page.
func (h *SettingHandler) GetHero(c *gin.Context) {
	var setting models.Setting
	if err := h.DB.First(&setting, "`key` = ?", models.SettingHeroKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Hero description not set")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Setting fetched successfully", setting)
}

// UpdateHero upserts the hero description.
func (h *SettingHandler) UpdateHero(c *gin.Context) {
	var req SettingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	setting := models.Setting{Key: models.SettingHeroKey, Value: req.Value}
	err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to update setting: "+err.Error())
		return
	}

	utils.Success(c, "Setting updated successfully", setting)
}
