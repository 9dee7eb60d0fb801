package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// CourseController handles the course catalog and lecturer assignment.
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse handles POST /api/courses.
func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("course name, code and faculty_id are required"))
		return
	}

	id, err := cc.courseService.CreateCourse(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{Message: "Course created successfully", ID: id})
}

// GetCourses handles GET /api/courses. When role=pl and userId are present in
// the query the listing is limited to the PL's faculty.
func (cc *CourseController) GetCourses(c *gin.Context) {
	role := c.Query("role")
	var userID int64
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewValidationError("invalid userId"))
			return
		}
		userID = parsed
	}

	courses, err := cc.courseService.GetCourses(c.Request.Context(), role, userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetAllCoursesForPRL handles GET /api/courses/prl/all, the unscoped listing.
func (cc *CourseController) GetAllCoursesForPRL(c *gin.Context) {
	courses, err := cc.courseService.GetCourses(c.Request.Context(), "", 0)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// AssignLecturer handles POST /api/courses/assign. Assigning a lecturer to a
// course creates a class in the same write.
func (cc *CourseController) AssignLecturer(c *gin.Context) {
	var req dto.AssignLecturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("course_id, lecturer_id and class_name are required"))
		return
	}

	classID, err := cc.courseService.AssignLecturer(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AssignLecturerResponse{
		Message: "Lecturer assigned successfully",
		ClassID: classID,
	})
}

// DeleteCourse handles DELETE /api/courses/:id.
func (cc *CourseController) DeleteCourse(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := cc.courseService.DeleteCourse(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted successfully"})
}
