package api

import (
	"context"
	"net/http"

	"mrkgnao/internal/compare"
	"mrkgnao/internal/feedback"
	"mrkgnao/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler serves the comparison, feedback and health endpoints
type Handler struct {
	comparator *compare.Comparator
	recorder   *feedback.Recorder
}

func NewHandler(comparator *compare.Comparator, recorder *feedback.Recorder) *Handler {
	return &Handler{comparator: comparator, recorder: recorder}
}

// NewRouter builds the gin engine with CORS, 405 handling and all routes
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), corsMiddleware())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	g := r.Group("/api")
	{
		g.POST("/chat", recoverWith("Chat", chatFault), h.compareMessage)
		g.POST("/feedback", recoverWith("Feedback", feedbackFault), h.recordFeedback)
		g.GET("/health", recoverWith("Health", healthFault), h.healthCheck)
		g.GET("/analytics", recoverWith("Analytics", analyticsFault), h.getAnalytics)
	}
}

// detached keeps request values but drops cancellation, so provider calls
// and store writes already dispatched run to completion even if the client
// goes away.
func detached(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
