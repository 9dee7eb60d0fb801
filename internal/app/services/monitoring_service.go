package services

import (
	"context"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// MonitoringStore is the persistence surface for the per-role monitoring
// views.
type MonitoringStore interface {
	ForStudent(ctx context.Context, studentID int64) ([]*models.MonitoringRow, error)
	ForLecturer(ctx context.Context, lecturerID int64) ([]*models.MonitoringRow, error)
	ForPRL(ctx context.Context, prlID int64) ([]*models.MonitoringRow, error)
	ForPL(ctx context.Context, plID int64) ([]*models.MonitoringRow, error)
}

// MonitoringService defines the interface for monitoring operations
type MonitoringService interface {
	GetMonitoring(ctx context.Context, role string, userID int64) ([]*models.MonitoringRow, error)
}

type monitoringServiceImpl struct {
	monitoring MonitoringStore
}

// NewMonitoringService creates a new monitoring service instance
func NewMonitoringService(monitoring MonitoringStore) MonitoringService {
	return &monitoringServiceImpl{monitoring: monitoring}
}

// GetMonitoring selects the role-scoped monitoring view for an actor. This
// is the central authorization dispatch: each role sees a different slice of
// the (class, report) space, and an unknown role is rejected before any
// query runs.
func (s *monitoringServiceImpl) GetMonitoring(ctx context.Context, role string, userID int64) ([]*models.MonitoringRow, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("invalid user id")
	}

	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	switch parsed {
	case models.RoleStudent:
		return s.monitoring.ForStudent(ctx, userID)
	case models.RoleLecturer:
		return s.monitoring.ForLecturer(ctx, userID)
	case models.RolePRL:
		return s.monitoring.ForPRL(ctx, userID)
	case models.RolePL:
		return s.monitoring.ForPL(ctx, userID)
	default:
		return nil, apperrors.NewValidationError("role has no monitoring view")
	}
}
