package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"mrkgnao/internal/feedback"
	"mrkgnao/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	errMissingFields = "Missing required fields: user_message, preference_rating"
	errInvalidRating = "preference_rating must be an integer between 1 and 7"
)

// FeedbackRequest is the feedback body. The rating is decoded as a number so
// that 4.0 is accepted and 4.5 is rejected as a non-integer.
type FeedbackRequest struct {
	UserMessage      string  `json:"user_message" binding:"required"`
	ClaudeResponse   *string `json:"claude_response"`
	GeminiResponse   *string `json:"gemini_response"`
	PreferenceRating float64 `json:"preference_rating" binding:"required,min=1,max=7"`
}

// recordFeedback records a preference rating comparing the two responses
func (h *Handler) recordFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Failure(c, http.StatusBadRequest, bindingMessage(&req, err))
		return
	}

	rating := int(req.PreferenceRating)
	if req.PreferenceRating != math.Trunc(req.PreferenceRating) || !feedback.ValidRating(rating) {
		utils.Failure(c, http.StatusBadRequest, errInvalidRating)
		return
	}

	rec := h.recorder.Record(detached(c), feedback.Input{
		UserMessage:      req.UserMessage,
		ClaudeResponse:   req.ClaudeResponse,
		GeminiResponse:   req.GeminiResponse,
		PreferenceRating: rating,
		SessionID:        c.GetHeader("X-Forwarded-For"),
	})

	utils.Success(c, gin.H{
		"message": "Feedback recorded successfully",
		"id":      rec.ID,
	})
}

// bindingMessage maps a binding failure to the client-facing message. After a
// JSON type error req still holds every field that did decode, so missing
// required fields are reported first.
func bindingMessage(req *FeedbackRequest, err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return errMissingFields
			}
		}
		return errInvalidRating
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || req.UserMessage == "" {
		return errMissingFields
	}
	if typeErr.Field == "preference_rating" {
		return errInvalidRating
	}
	if req.PreferenceRating == 0 {
		return errMissingFields
	}
	return typeErr.Field + " must be a string"
}

func feedbackFault() gin.H {
	return gin.H{
		"success": false,
		"error":   "Internal server error",
	}
}
