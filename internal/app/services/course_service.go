package services

import (
	"context"
	"strings"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// CourseStore is the persistence surface for courses.
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetAllCourses(ctx context.Context, facultyOfUser int64) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (int64, error)
	// GetCourses lists courses; when role is pl and userID is set the list is
	// limited to the PL's own faculty.
	GetCourses(ctx context.Context, role string, userID int64) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	// AssignLecturer is the compound write: it binds a course to a lecturer
	// by creating a class in one step.
	AssignLecturer(ctx context.Context, req dto.AssignLecturerRequest) (int64, error)
}

type courseServiceImpl struct {
	courses CourseStore
	classes ClassStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, classes ClassStore) CourseService {
	return &courseServiceImpl{courses: courses, classes: classes}
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Code) == "" {
		return 0, apperrors.NewValidationError("course name and code are required")
	}
	if req.FacultyID <= 0 {
		return 0, apperrors.NewValidationError("faculty_id is required")
	}
	return s.courses.CreateCourse(ctx, &models.Course{
		Name:      strings.TrimSpace(req.Name),
		Code:      strings.TrimSpace(req.Code),
		FacultyID: req.FacultyID,
		StreamID:  req.StreamID,
	})
}

func (s *courseServiceImpl) GetCourses(ctx context.Context, role string, userID int64) ([]*models.Course, error) {
	var facultyOfUser int64
	if role != "" {
		parsed, err := models.ParseRole(strings.ToLower(role))
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if parsed == models.RolePL && userID > 0 {
			facultyOfUser = userID
		}
	}
	return s.courses.GetAllCourses(ctx, facultyOfUser)
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid course id")
	}
	return s.courses.DeleteCourse(ctx, id)
}

func (s *courseServiceImpl) AssignLecturer(ctx context.Context, req dto.AssignLecturerRequest) (int64, error) {
	if req.CourseID <= 0 || req.LecturerID <= 0 || strings.TrimSpace(req.ClassName) == "" {
		return 0, apperrors.NewValidationError("course_id, lecturer_id and class_name are required")
	}
	return s.classes.CreateClass(ctx, &models.Class{
		ClassName:     strings.TrimSpace(req.ClassName),
		CourseID:      req.CourseID,
		LecturerID:    req.LecturerID,
		ScheduleTime:  req.ScheduleTime,
		Venue:         req.Venue,
		TotalStudents: req.TotalStudents,
	})
}
