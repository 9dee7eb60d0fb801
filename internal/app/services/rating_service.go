package services

import (
	"context"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// RatingStore is the persistence surface for ratings.
type RatingStore interface {
	CreateRating(ctx context.Context, rating *models.Rating) (int64, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*models.RatingRow, error)
	ListForLecturer(ctx context.Context, lecturerID int64) ([]*models.RatingRow, error)
	ListForFaculty(ctx context.Context, actorID int64) ([]*models.RatingRow, error)
}

// RatingService defines the interface for rating operations
type RatingService interface {
	AddRating(ctx context.Context, req dto.CreateRatingRequest) (int64, error)
	GetRatingsByRole(ctx context.Context, role string, userID int64) ([]*models.RatingRow, error)
}

type ratingServiceImpl struct {
	ratings RatingStore
}

// NewRatingService creates a new rating service instance
func NewRatingService(ratings RatingStore) RatingService {
	return &ratingServiceImpl{ratings: ratings}
}

func (s *ratingServiceImpl) AddRating(ctx context.Context, req dto.CreateRatingRequest) (int64, error) {
	if req.ReportID <= 0 || req.RaterID <= 0 || req.Score == nil {
		return 0, apperrors.NewValidationError("report_id, rater_id and score are required")
	}
	if !models.ValidRaterRole(req.RaterRole) {
		return 0, apperrors.NewValidationError("invalid rater_role")
	}

	return s.ratings.CreateRating(ctx, &models.Rating{
		ReportID:  req.ReportID,
		RaterID:   req.RaterID,
		RaterRole: models.Role(req.RaterRole),
		Score:     *req.Score,
		Comments:  req.Comments,
	})
}

// GetRatingsByRole dispatches to the role-scoped rating listing. PRL and PL
// share the transitive faculty scope through class and course.
func (s *ratingServiceImpl) GetRatingsByRole(ctx context.Context, role string, userID int64) ([]*models.RatingRow, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("invalid user id")
	}

	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	switch parsed {
	case models.RoleStudent:
		return s.ratings.ListForStudent(ctx, userID)
	case models.RoleLecturer:
		return s.ratings.ListForLecturer(ctx, userID)
	case models.RolePRL, models.RolePL:
		return s.ratings.ListForFaculty(ctx, userID)
	default:
		return nil, apperrors.NewValidationError("role has no rating view")
	}
}
