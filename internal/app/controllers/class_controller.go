package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// ClassController handles class and enrollment endpoints.
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// CreateClass handles POST /api/classes.
func (cc *ClassController) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("class_name, course_id and lecturer_id are required"))
		return
	}

	id, err := cc.classService.CreateClass(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{Message: "Class created successfully", ID: id})
}

// GetAllClasses handles GET /api/classes.
func (cc *ClassController) GetAllClasses(c *gin.Context) {
	classes, err := cc.classService.GetAllClasses(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetLecturerClasses handles GET /api/classes/lecturer/:id.
func (cc *ClassController) GetLecturerClasses(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	classes, err := cc.classService.GetLecturerClasses(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetPLClasses handles GET /api/classes/pl/:id, the faculty-wide view.
func (cc *ClassController) GetPLClasses(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	classes, err := cc.classService.GetPLClasses(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// EnrollStudent handles POST /api/classes/enroll.
func (cc *ClassController) EnrollStudent(c *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("student_id and class_id are required"))
		return
	}

	if err := cc.classService.EnrollStudent(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Student enrolled successfully"})
}

// DeleteClass handles DELETE /api/classes/:id.
func (cc *ClassController) DeleteClass(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := cc.classService.DeleteClass(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Class deleted successfully"})
}
