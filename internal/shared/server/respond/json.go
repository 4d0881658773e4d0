package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 JSON response. JSON surfaces here are the health endpoint
// and error bodies; page responses render HTML instead.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
