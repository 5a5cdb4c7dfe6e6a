package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"detailing-app-server/internal/utils"
)

// parseIDParam parses the numeric :id path parameter. On failure it sends
// a BadRequest response and returns false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
