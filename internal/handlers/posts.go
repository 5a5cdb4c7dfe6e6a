package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"detailing-app-server/internal/models"
	"detailing-app-server/internal/utils"
)

// PostHandler handles content posts managed from the dashboard.
type PostHandler struct {
	DB *gorm.DB
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{DB: db}
}

// PostRequest represents the request body for creating or updating a post.
type PostRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// GetPosts handles fetching all posts, newest first.
func (h *PostHandler) GetPosts(c *gin.Context) {
	var posts []models.Post
	if err := h.DB.Order("created_at desc").Find(&posts).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch posts: "+err.Error())
		return
	}

	utils.Success(c, "Posts fetched successfully", posts)
}

// CreatePost handles creating a new post.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req PostRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	post := models.Post{Title: req.Title, Body: req.Body}
	if err := h.DB.Create(&post).Error; err != nil {
		utils.InternalServerError(c, "Failed to create post: "+err.Error())
		return
	}

	utils.Created(c, "Post created successfully", post)
}

// UpdatePost handles a full replace of a post's title and body.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req PostRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var post models.Post
	if err := h.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Post not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	post.Title = req.Title
	post.Body = req.Body

	if err := h.DB.Save(&post).Error; err != nil {
		utils.InternalServerError(c, "Failed to update post: "+err.Error())
		return
	}

	utils.Success(c, "Post updated successfully", post)
}

// DeletePost handles deleting a post.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var post models.Post
	if err := h.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Post not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&post).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete post: "+err.Error())
		return
	}

	utils.Success(c, "Post deleted successfully", nil)
}
