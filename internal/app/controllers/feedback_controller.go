package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// FeedbackController handles PRL review feedback and PL announcements.
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback handles POST /api/feedback.
func (fc *FeedbackController) AddFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("feedback_text is required"))
		return
	}

	fb, err := fc.feedbackService.AddFeedback(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateFeedbackResponse{
		Message: "Feedback added successfully",
		Data:    fb,
	})
}

// GetAllFeedback handles GET /api/feedback.
func (fc *FeedbackController) GetAllFeedback(c *gin.Context) {
	feedback, err := fc.feedbackService.GetAllFeedback(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// GetFeedbackByRole handles GET /api/feedback/role/:role. PL sees
// announcements, PRL sees reviews.
func (fc *FeedbackController) GetFeedbackByRole(c *gin.Context) {
	feedback, err := fc.feedbackService.GetFeedbackByRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// DeleteFeedback handles DELETE /api/feedback/:id.
func (fc *FeedbackController) DeleteFeedback(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := fc.feedbackService.DeleteFeedback(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Feedback deleted successfully"})
}
