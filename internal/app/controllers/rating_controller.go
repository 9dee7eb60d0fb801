package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// RatingController handles report rating endpoints.
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// AddRating handles POST /api/ratings.
func (rc *RatingController) AddRating(c *gin.Context) {
	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("report_id, rater_id, rater_role and score are required"))
		return
	}

	id, err := rc.ratingService.AddRating(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{Message: "Rating added successfully", ID: id})
}

// GetRatingsByRole handles GET /api/ratings/:role/:userId.
func (rc *RatingController) GetRatingsByRole(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	ratings, err := rc.ratingService.GetRatingsByRole(c.Request.Context(), c.Param("role"), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}
