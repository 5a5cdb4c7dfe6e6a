package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"detailing-app-server/internal/config"
	"detailing-app-server/internal/middleware"
	"detailing-app-server/internal/models"
	"detailing-app-server/internal/session"
	"detailing-app-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Sessions session.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, sessions session.Store) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg, Sessions: sessions}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Login handles admin login. Unknown email and wrong password produce the
// same generic error so the endpoint cannot be used to enumerate users.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	sess, err := h.Sessions.Create(user.ID, h.Cfg.SessionTTL())
	if err != nil {
		utils.InternalServerError(c, "Failed to create session: "+err.Error())
		return
	}

	h.setSessionCookie(c, sess.Token, int(h.Cfg.SessionTTL().Seconds()))

	utils.Success(c, "Login successful", LoginResponse{ID: user.ID, Email: user.Email})
}

// Logout destroys the server-side session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := middleware.GetSessionTokenFromContext(c); ok {
		if err := h.Sessions.Destroy(token); err != nil {
			utils.InternalServerError(c, "Failed to destroy session: "+err.Error())
			return
		}
	}

	// Clear the session cookie
	h.setSessionCookie(c, "", -1)

	utils.Success(c, "Logout successful", nil)
}

// Me handles fetching the currently authenticated user's identity.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Profile fetched successfully", user.Sanitize())
}

// ChangePasswordRequest represents the request body for changing the
// current user's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ChangePassword re-verifies the current password before accepting a new one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req ChangePasswordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if !user.CheckPassword(req.CurrentPassword) {
		utils.Unauthorized(c, "Current password is incorrect")
		return
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Save(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to update password: "+err.Error())
		return
	}

	utils.Success(c, "Password updated successfully", nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(
		middleware.SessionCookieName,       // Name
		token,                              // Value
		maxAge,                             // Max age in seconds
		"/",                                // Path
		"",                                 // Domain (empty means current domain)
		h.Cfg.Environment != "development", // Secure (true in prod, false in dev)
		true,                               // HTTP only
	)
}
