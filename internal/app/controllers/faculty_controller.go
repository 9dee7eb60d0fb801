package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// FacultyController handles the faculty and stream catalog endpoints.
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// CreateFaculty handles POST /api/faculties.
func (fc *FacultyController) CreateFaculty(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("faculty name is required"))
		return
	}

	id, err := fc.facultyService.CreateFaculty(c.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{Message: "Faculty created successfully", ID: id})
}

// GetAllFaculties handles GET /api/faculties.
func (fc *FacultyController) GetAllFaculties(c *gin.Context) {
	faculties, err := fc.facultyService.GetAllFaculties(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, faculties)
}

// GetAllStreams handles GET /api/streams.
func (fc *FacultyController) GetAllStreams(c *gin.Context) {
	streams, err := fc.facultyService.GetAllStreams(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, streams)
}
