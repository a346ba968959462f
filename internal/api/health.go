package api

import (
	"log"
	"net/http"

	"mrkgnao/internal/model"

	"github.com/gin-gonic/gin"
)

// healthCheck reports whether each provider is reachable and configured
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.comparator.Probe(detached(c)))
}

func healthFault() gin.H {
	return gin.H{
		"claude": false,
		"gemini": false,
		"error":  "Health check failed",
	}
}

// getAnalytics returns the aggregate feedback counters
func (h *Handler) getAnalytics(c *gin.Context) {
	counters, err := h.recorder.Counters(c.Request.Context())
	if err != nil {
		log.Printf("[Analytics] Failed to read counters: %v", err)
		body := analyticsFault()
		body["counters"] = zeroCounters()
		c.JSON(http.StatusOK, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counters": counters})
}

func analyticsFault() gin.H {
	return gin.H{"error": "Analytics unavailable"}
}

func zeroCounters() map[string]int64 {
	names := model.CounterNames()
	out := make(map[string]int64, len(names))
	for _, name := range names {
		out[name] = 0
	}
	return out
}
