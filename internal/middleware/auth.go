package middleware

import (
	"detailing-app-server/internal/session"
	"detailing-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the name of the browser cookie carrying the
// opaque session token.
const SessionCookieName = "session"

// AuthMiddleware creates a middleware gating admin routes behind a valid
// server-side session. Requests without a live session are rejected with
// 401, never silently degraded to anonymous access.
func AuthMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			utils.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		sess, err := store.Get(token)
		if err != nil {
			utils.Unauthorized(c, "Invalid or expired session")
			c.Abort()
			return
		}

		// Set user information in context for downstream handlers
		c.Set("userID", sess.UserID)
		c.Set("sessionToken", sess.Token)

		c.Next()
	}
}

// Helper function to get user ID from context
func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// Helper function to get the session token from context
func GetSessionTokenFromContext(c *gin.Context) (string, bool) {
	token, exists := c.Get("sessionToken")
	if !exists {
		return "", false
	}
	str, ok := token.(string)
	return str, ok
}
