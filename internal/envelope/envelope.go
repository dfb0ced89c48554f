// Package envelope writes the JSON shape every endpoint responds with.
package envelope

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// uniform response body: {success, data?, error?}
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// writes a 200 with data
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// writes a failure with the given status and message
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Error:   message,
	})
}
