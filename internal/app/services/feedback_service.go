package services

import (
	"context"
	"strings"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// FeedbackStore is the persistence surface for feedback and announcements.
type FeedbackStore interface {
	CreateFeedback(ctx context.Context, fb *models.Feedback) (int64, error)
	GetAllFeedback(ctx context.Context) ([]*models.Feedback, error)
	ListAnnouncements(ctx context.Context) ([]*models.Feedback, error)
	ListReviews(ctx context.Context) ([]*models.Feedback, error)
	ListReviewsForLecturer(ctx context.Context, lecturerID int64) ([]*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

// FeedbackService defines the interface for feedback operations
type FeedbackService interface {
	// AddFeedback classifies the request into a PRL review or a PL
	// announcement and rejects payloads in neither valid shape.
	AddFeedback(ctx context.Context, req dto.CreateFeedbackRequest) (*models.Feedback, error)
	GetAllFeedback(ctx context.Context) ([]*models.Feedback, error)
	GetFeedbackByRole(ctx context.Context, role string) ([]*models.Feedback, error)
	GetReviewsForLecturer(ctx context.Context, lecturerID int64) ([]*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

type feedbackServiceImpl struct {
	feedback FeedbackStore
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedback FeedbackStore) FeedbackService {
	return &feedbackServiceImpl{feedback: feedback}
}

func (s *feedbackServiceImpl) AddFeedback(ctx context.Context, req dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if strings.TrimSpace(req.FeedbackText) == "" {
		return nil, apperrors.NewValidationError("feedback_text is required")
	}

	var fb models.Feedback
	switch {
	case req.ReportID != nil && req.PRLID != nil:
		fb = models.NewReviewFeedback(*req.ReportID, *req.PRLID, req.FeedbackText)
	case req.ReportID == nil && req.PLID != nil:
		fb = models.NewAnnouncement(*req.PLID, req.FeedbackText)
	default:
		return nil, apperrors.NewValidationError("feedback must carry report_id and prl_id, or pl_id alone")
	}

	id, err := s.feedback.CreateFeedback(ctx, &fb)
	if err != nil {
		return nil, err
	}
	fb.ID = id
	return &fb, nil
}

func (s *feedbackServiceImpl) GetAllFeedback(ctx context.Context) ([]*models.Feedback, error) {
	return s.feedback.GetAllFeedback(ctx)
}

// GetFeedbackByRole returns PL announcements for role=pl and PRL reviews
// for role=prl. No other role has a feedback listing.
func (s *feedbackServiceImpl) GetFeedbackByRole(ctx context.Context, role string) ([]*models.Feedback, error) {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	switch parsed {
	case models.RolePL:
		return s.feedback.ListAnnouncements(ctx)
	case models.RolePRL:
		return s.feedback.ListReviews(ctx)
	default:
		return nil, apperrors.NewValidationError("role has no feedback view")
	}
}

func (s *feedbackServiceImpl) GetReviewsForLecturer(ctx context.Context, lecturerID int64) ([]*models.Feedback, error) {
	if lecturerID <= 0 {
		return nil, apperrors.NewValidationError("invalid lecturer id")
	}
	return s.feedback.ListReviewsForLecturer(ctx, lecturerID)
}

func (s *feedbackServiceImpl) DeleteFeedback(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid feedback id")
	}
	return s.feedback.DeleteFeedback(ctx, id)
}
