package utils

import "github.com/gin-gonic/gin"

// Success writes a 200 response flagged as successful
func Success(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(200, body)
}

// Error writes {"error": msg}
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"error": msg,
	})
}

// Failure writes {"success": false, "error": msg}
func Failure(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}
