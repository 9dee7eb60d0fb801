package services

import (
	"context"
	"strings"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// ClassStore is the persistence surface for classes and enrollments.
type ClassStore interface {
	CreateClass(ctx context.Context, class *models.Class) (int64, error)
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	GetLecturerClasses(ctx context.Context, lecturerID int64) ([]*models.Class, error)
	GetFacultyClasses(ctx context.Context, plID int64) ([]*models.Class, error)
	EnrollStudent(ctx context.Context, studentID, classID int64) error
	DeleteClass(ctx context.Context, id int64) error
}

// ClassService defines the interface for class operations
type ClassService interface {
	CreateClass(ctx context.Context, req dto.CreateClassRequest) (int64, error)
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	GetLecturerClasses(ctx context.Context, lecturerID int64) ([]*models.Class, error)
	GetPLClasses(ctx context.Context, plID int64) ([]*models.Class, error)
	EnrollStudent(ctx context.Context, req dto.EnrollStudentRequest) error
	DeleteClass(ctx context.Context, id int64) error
}

type classServiceImpl struct {
	classes ClassStore
}

// NewClassService creates a new class service instance
func NewClassService(classes ClassStore) ClassService {
	return &classServiceImpl{classes: classes}
}

func (s *classServiceImpl) CreateClass(ctx context.Context, req dto.CreateClassRequest) (int64, error) {
	if strings.TrimSpace(req.ClassName) == "" || req.CourseID <= 0 || req.LecturerID <= 0 {
		return 0, apperrors.NewValidationError("class_name, course_id and lecturer_id are required")
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

func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	return s.classes.GetAllClasses(ctx)
}

func (s *classServiceImpl) GetLecturerClasses(ctx context.Context, lecturerID int64) ([]*models.Class, error) {
	if lecturerID <= 0 {
		return nil, apperrors.NewValidationError("invalid lecturer id")
	}
	return s.classes.GetLecturerClasses(ctx, lecturerID)
}

func (s *classServiceImpl) GetPLClasses(ctx context.Context, plID int64) ([]*models.Class, error) {
	if plID <= 0 {
		return nil, apperrors.NewValidationError("invalid user id")
	}
	return s.classes.GetFacultyClasses(ctx, plID)
}

func (s *classServiceImpl) EnrollStudent(ctx context.Context, req dto.EnrollStudentRequest) error {
	if req.StudentID <= 0 || req.ClassID <= 0 {
		return apperrors.NewValidationError("student_id and class_id are required")
	}
	return s.classes.EnrollStudent(ctx, req.StudentID, req.ClassID)
}

func (s *classServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid class id")
	}
	return s.classes.DeleteClass(ctx, id)
}
