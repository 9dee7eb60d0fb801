package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// ReportController handles lecture report endpoints.
type ReportController struct {
	reportService   services.ReportService
	feedbackService services.FeedbackService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, feedbackService services.FeedbackService) *ReportController {
	return &ReportController{reportService: reportService, feedbackService: feedbackService}
}

// SubmitReport handles POST /api/reports.
func (rc *ReportController) SubmitReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("class_id, week, lecture_date and topic are required"))
		return
	}

	report, err := rc.reportService.SubmitReport(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateReportResponse{
		Message: "Report submitted successfully",
		Data:    report,
	})
}

// GetReportsByRole handles GET /api/reports/:role/:userId.
func (rc *ReportController) GetReportsByRole(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	reports, err := rc.reportService.GetReportsByRole(c.Request.Context(), c.Param("role"), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetLecturerFeedback handles GET /api/reports/feedback/lecturer/:lecturerId,
// listing the review feedback left on a lecturer's reports.
func (rc *ReportController) GetLecturerFeedback(c *gin.Context) {
	lecturerID, err := pathID(c, "lecturerId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	reviews, err := rc.feedbackService.GetReviewsForLecturer(c.Request.Context(), lecturerID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// DeleteReport handles DELETE /api/reports/:reportId.
func (rc *ReportController) DeleteReport(c *gin.Context) {
	id, err := pathID(c, "reportId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := rc.reportService.DeleteReport(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Report deleted successfully"})
}
