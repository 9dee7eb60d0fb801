package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
)

// UserController handles user directory and administration endpoints.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAllUsers handles GET /api/users.
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUsersByRole handles GET /api/users/role/:role.
func (uc *UserController) GetUsersByRole(c *gin.Context) {
	users, err := uc.userService.GetUsersByRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetFacultyLecturers handles GET /api/users/faculty/:facultyId/lecturers.
func (uc *UserController) GetFacultyLecturers(c *gin.Context) {
	facultyID, err := pathID(c, "facultyId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	lecturers, err := uc.userService.GetLecturersByFaculty(c.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, lecturers)
}

// DeleteUser handles DELETE /api/users/:id.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
