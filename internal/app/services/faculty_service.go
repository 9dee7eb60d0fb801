package services

import (
	"context"
	"strings"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// FacultyStore is the persistence surface for faculties.
type FacultyStore interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
}

// StreamStore is the persistence surface for streams.
type StreamStore interface {
	GetAllStreams(ctx context.Context) ([]*models.Stream, error)
}

// FacultyService covers the faculty and stream catalog.
type FacultyService interface {
	CreateFaculty(ctx context.Context, name string) (int64, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	GetAllStreams(ctx context.Context) ([]*models.Stream, error)
}

type facultyServiceImpl struct {
	faculties FacultyStore
	streams   StreamStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(faculties FacultyStore, streams StreamStore) FacultyService {
	return &facultyServiceImpl{faculties: faculties, streams: streams}
}

func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, apperrors.NewValidationError("faculty name is required")
	}
	return s.faculties.CreateFaculty(ctx, &models.Faculty{Name: strings.TrimSpace(name)})
}

func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	return s.faculties.GetAllFaculties(ctx)
}

func (s *facultyServiceImpl) GetAllStreams(ctx context.Context) ([]*models.Stream, error) {
	return s.streams.GetAllStreams(ctx)
}
