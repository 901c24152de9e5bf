package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/form"
	"github.com/jafarshop/storefront/internal/repository"
)

// SubmitFeedbackRequest is the full wizard payload
type SubmitFeedbackRequest struct {
	Personal domain.PersonalInfo `json:"personal"`
	Feedback domain.FeedbackData `json:"feedback"`
}

// ValidateStepRequest validates a single wizard step's fields
type ValidateStepRequest struct {
	Step     domain.FormStep     `json:"step" binding:"required"`
	Personal domain.PersonalInfo `json:"personal"`
	Feedback domain.FeedbackData `json:"feedback"`
}

// ValidateStepResponse carries the per-field error mapping
type ValidateStepResponse struct {
	Valid  bool        `json:"valid"`
	Errors form.Errors `json:"errors"`
}

// SubmissionResponse represents a stored feedback submission
type SubmissionResponse struct {
	ID        string                  `json:"id"`
	Data      domain.FeedbackFormData `json:"data"`
	Timestamp string                  `json:"timestamp"`
}

// HandleSubmitFeedback handles POST /v1/feedback
func HandleSubmitFeedback(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitFeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		personalErrors := form.ValidatePersonalInfo(req.Personal)
		feedbackErrors := form.ValidateFeedback(req.Feedback)
		if len(personalErrors) > 0 || len(feedbackErrors) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "validation failed",
				"errors": gin.H{
					"personal": personalErrors,
					"feedback": feedbackErrors,
				},
			})
			return
		}

		submission := &domain.FormSubmission{
			ID: uuid.New(),
			Data: domain.FeedbackFormData{
				Personal: req.Personal,
				Feedback: req.Feedback,
			},
			CreatedAt: time.Now(),
		}

		if err := repos.Submission.Create(c.Request.Context(), submission); err != nil {
			logger.Error("Failed to store submission", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store submission"})
			return
		}

		c.JSON(http.StatusCreated, toSubmissionResponse(*submission))
	}
}

// HandleValidateStep handles POST /v1/feedback/validate. It exposes a
// single step's validation gate, the same check the wizard's forward
// navigation applies.
func HandleValidateStep(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateStepRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if !req.Step.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown step"})
			return
		}

		errors := form.Errors{}
		switch req.Step {
		case domain.StepPersonal:
			errors = form.ValidatePersonalInfo(req.Personal)
		case domain.StepFeedback:
			errors = form.ValidateFeedback(req.Feedback)
		case domain.StepReview:
			// the review step has no fields of its own
		}

		c.JSON(http.StatusOK, ValidateStepResponse{
			Valid:  len(errors) == 0,
			Errors: errors,
		})
	}
}

// HandleListSubmissions handles GET /v1/feedback
func HandleListSubmissions(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		submissions, err := repos.Submission.List(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list submissions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		responses := make([]SubmissionResponse, len(submissions))
		for i, s := range submissions {
			responses[i] = toSubmissionResponse(s)
		}

		c.JSON(http.StatusOK, gin.H{"submissions": responses})
	}
}

func toSubmissionResponse(s domain.FormSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID.String(),
		Data:      s.Data,
		Timestamp: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
