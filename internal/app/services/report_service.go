package services

import (
	"context"
	"time"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// lectureDateLayout is the wire format for lecture dates.
const lectureDateLayout = "2006-01-02"

// ReportStore is the persistence surface for reports.
type ReportStore interface {
	CreateReport(ctx context.Context, report *models.Report) (int64, error)
	DeleteReport(ctx context.Context, id int64) error
	ListForStudent(ctx context.Context, studentID int64) ([]*models.ReportRow, error)
	ListForLecturer(ctx context.Context, lecturerID int64) ([]*models.ReportRow, error)
	ListForPRL(ctx context.Context, prlID int64) ([]*models.ReportRow, error)
	ListForPL(ctx context.Context, plID int64) ([]*models.ReportRow, error)
}

// ReportService defines the interface for report operations
type ReportService interface {
	SubmitReport(ctx context.Context, req dto.CreateReportRequest) (*models.Report, error)
	DeleteReport(ctx context.Context, id int64) error
	GetReportsByRole(ctx context.Context, role string, userID int64) ([]*models.ReportRow, error)
}

type reportServiceImpl struct {
	reports ReportStore
}

// NewReportService creates a new report service instance
func NewReportService(reports ReportStore) ReportService {
	return &reportServiceImpl{reports: reports}
}

// SubmitReport validates and stores a report. A report has exactly one
// author: either the lecturer or the student, never both and never neither.
func (s *reportServiceImpl) SubmitReport(ctx context.Context, req dto.CreateReportRequest) (*models.Report, error) {
	if req.ClassID <= 0 || req.Week <= 0 || req.LectureDate == "" || req.Topic == "" {
		return nil, apperrors.NewValidationError("class_id, week, lecture_date and topic are required")
	}
	if (req.LecturerID == nil) == (req.StudentID == nil) {
		return nil, apperrors.NewValidationError("exactly one of lecturer_id and student_id must be set")
	}

	lectureDate, err := time.Parse(lectureDateLayout, req.LectureDate)
	if err != nil {
		return nil, apperrors.NewValidationError("lecture_date must be formatted as YYYY-MM-DD")
	}

	report := &models.Report{
		ClassID:         req.ClassID,
		LecturerID:      req.LecturerID,
		StudentID:       req.StudentID,
		Week:            req.Week,
		LectureDate:     lectureDate,
		Topic:           req.Topic,
		Outcomes:        req.Outcomes,
		Recommendations: req.Recommendations,
		PresentStudents: req.PresentStudents,
	}

	id, err := s.reports.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = id
	return report, nil
}

// DeleteReport removes a report; deleting an unknown id is an error here,
// unlike the other resources.
func (s *reportServiceImpl) DeleteReport(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid report id")
	}
	return s.reports.DeleteReport(ctx, id)
}

// GetReportsByRole dispatches to the role-scoped listing. The switch is
// exhaustive over the rater-capable roles; anything else is a validation
// failure.
func (s *reportServiceImpl) GetReportsByRole(ctx context.Context, role string, userID int64) ([]*models.ReportRow, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("invalid user id")
	}

	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	switch parsed {
	case models.RoleStudent:
		return s.reports.ListForStudent(ctx, userID)
	case models.RoleLecturer:
		return s.reports.ListForLecturer(ctx, userID)
	case models.RolePRL:
		return s.reports.ListForPRL(ctx, userID)
	case models.RolePL:
		return s.reports.ListForPL(ctx, userID)
	default:
		return nil, apperrors.NewValidationError("role has no report view")
	}
}
