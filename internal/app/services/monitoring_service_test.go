package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

func TestGetMonitoringDispatch(t *testing.T) {
	store := &fakeMonitoringStore{}
	svc := NewMonitoringService(store)
	ctx := context.Background()

	for _, role := range []string{"student", "lecturer", "prl", "pl"} {
		_, err := svc.GetMonitoring(ctx, role, 7)
		require.NoError(t, err)
		assert.Equal(t, role, store.lastScope)
		assert.Equal(t, int64(7), store.lastUserID)
	}
}

func TestGetMonitoringRejectsUnknownRole(t *testing.T) {
	store := &fakeMonitoringStore{}
	svc := NewMonitoringService(store)
	ctx := context.Background()

	_, err := svc.GetMonitoring(ctx, "registrar", 7)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Admin is a valid role but has no monitoring view.
	_, err = svc.GetMonitoring(ctx, "admin", 7)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// No store call happened for the rejected roles.
	assert.Empty(t, store.lastScope)

	_, err = svc.GetMonitoring(ctx, "student", -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
