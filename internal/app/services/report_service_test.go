package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

func int64Ptr(v int64) *int64 { return &v }

func validReportRequest() dto.CreateReportRequest {
	return dto.CreateReportRequest{
		ClassID:         1,
		LecturerID:      int64Ptr(7),
		Week:            3,
		LectureDate:     "2026-02-16",
		Topic:           "Normalization",
		Outcomes:        "Students can normalize to 3NF",
		PresentStudents: 28,
	}
}

func TestSubmitReport(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store)

	report, err := svc.SubmitReport(context.Background(), validReportRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.ID)
	assert.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), report.LectureDate)
	assert.Equal(t, int64(7), *report.LecturerID)
	assert.Nil(t, report.StudentID)
}

func TestSubmitReportAuthorInvariant(t *testing.T) {
	svc := NewReportService(newFakeReportStore())
	ctx := context.Background()

	both := validReportRequest()
	both.StudentID = int64Ptr(5)
	_, err := svc.SubmitReport(ctx, both)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	neither := validReportRequest()
	neither.LecturerID = nil
	_, err = svc.SubmitReport(ctx, neither)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	student := validReportRequest()
	student.LecturerID = nil
	student.StudentID = int64Ptr(5)
	_, err = svc.SubmitReport(ctx, student)
	assert.NoError(t, err)
}

func TestSubmitReportValidation(t *testing.T) {
	svc := NewReportService(newFakeReportStore())
	ctx := context.Background()

	missing := validReportRequest()
	missing.Topic = ""
	_, err := svc.SubmitReport(ctx, missing)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	badDate := validReportRequest()
	badDate.LectureDate = "16/02/2026"
	_, err = svc.SubmitReport(ctx, badDate)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteReport(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store)
	ctx := context.Background()

	report, err := svc.SubmitReport(ctx, validReportRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReport(ctx, report.ID))

	// Deleting an unknown report is an error, unlike the other resources.
	err = svc.DeleteReport(ctx, report.ID)
	assert.ErrorIs(t, err, apperrors.ErrReportNotFound)

	err = svc.DeleteReport(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetReportsByRoleDispatch(t *testing.T) {
	store := newFakeReportStore()
	svc := NewReportService(store)
	ctx := context.Background()

	for _, role := range []string{"student", "lecturer", "prl", "pl"} {
		_, err := svc.GetReportsByRole(ctx, role, 42)
		require.NoError(t, err)
		assert.Equal(t, role, store.lastScope)
		assert.Equal(t, int64(42), store.lastUserID)
	}

	_, err := svc.GetReportsByRole(ctx, "admin", 42)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetReportsByRole(ctx, "janitor", 42)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetReportsByRole(ctx, "student", 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
