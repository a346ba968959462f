package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsMiddleware allows browser calls from any origin
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// recoverWith turns a panic inside the route into a 500 carrying the
// endpoint's own failure payload
func recoverWith(name string, body func() gin.H) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[%s] Unexpected error: %v", name, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, body())
			}
		}()
		c.Next()
	}
}
