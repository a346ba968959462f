package api

import (
	"errors"
	"log"
	"net/http"

	"mrkgnao/internal/compare"
	"mrkgnao/internal/llm"
	"mrkgnao/internal/utils"

	"github.com/gin-gonic/gin"
)

// ChatRequest is the comparison request body. Message is a pointer so a
// missing field is told apart from a present one.
type ChatRequest struct {
	Message *string `json:"message"`
}

// compareMessage sends the message to both providers and returns both outcomes
func (h *Handler) compareMessage(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == nil {
		utils.Error(c, http.StatusBadRequest, compare.ErrMessageRequired.Error())
		return
	}

	result, err := h.comparator.Compare(detached(c), *req.Message)
	if err != nil {
		if errors.Is(err, compare.ErrMessageRequired) || errors.Is(err, compare.ErrMessageTooLong) {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[Chat] Compare error: %v", err)
		c.JSON(http.StatusInternalServerError, chatFault())
		return
	}

	c.JSON(http.StatusOK, result)
}

func chatFault() gin.H {
	return gin.H{
		"claude": llm.Failed("Server error"),
		"gemini": llm.Failed("Server error"),
	}
}
