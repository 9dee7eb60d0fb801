package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

func TestAddFeedbackClassification(t *testing.T) {
	store := newFakeFeedbackStore()
	svc := NewFeedbackService(store)
	ctx := context.Background()

	review, err := svc.AddFeedback(ctx, dto.CreateFeedbackRequest{
		ReportID:     int64Ptr(1),
		PRLID:        int64Ptr(2),
		FeedbackText: "good coverage",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackKindReview, review.Kind)
	assert.Equal(t, int64(1), review.ID)

	ann, err := svc.AddFeedback(ctx, dto.CreateFeedbackRequest{
		PLID:         int64Ptr(3),
		FeedbackText: "exam timetable out",
	})
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackKindAnnouncement, ann.Kind)
}

func TestAddFeedbackRejectsInvalidShapes(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackStore())
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateFeedbackRequest
	}{
		{name: "empty text", req: dto.CreateFeedbackRequest{ReportID: int64Ptr(1), PRLID: int64Ptr(2), FeedbackText: "  "}},
		{name: "report without prl", req: dto.CreateFeedbackRequest{ReportID: int64Ptr(1), FeedbackText: "x"}},
		{name: "prl without report", req: dto.CreateFeedbackRequest{PRLID: int64Ptr(2), FeedbackText: "x"}},
		{name: "nothing set", req: dto.CreateFeedbackRequest{FeedbackText: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddFeedback(ctx, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestGetFeedbackByRole(t *testing.T) {
	store := newFakeFeedbackStore()
	svc := NewFeedbackService(store)
	ctx := context.Background()

	_, err := svc.AddFeedback(ctx, dto.CreateFeedbackRequest{
		ReportID: int64Ptr(1), PRLID: int64Ptr(2), FeedbackText: "review",
	})
	require.NoError(t, err)
	_, err = svc.AddFeedback(ctx, dto.CreateFeedbackRequest{
		PLID: int64Ptr(3), FeedbackText: "announcement",
	})
	require.NoError(t, err)

	reviews, err := svc.GetFeedbackByRole(ctx, "prl")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, models.FeedbackKindReview, reviews[0].Kind)

	announcements, err := svc.GetFeedbackByRole(ctx, "pl")
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, models.FeedbackKindAnnouncement, announcements[0].Kind)

	_, err = svc.GetFeedbackByRole(ctx, "student")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetFeedbackByRole(ctx, "dean")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetReviewsForLecturer(t *testing.T) {
	store := newFakeFeedbackStore()
	svc := NewFeedbackService(store)

	_, err := svc.GetReviewsForLecturer(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "lecturer-reviews", store.lastScope)

	_, err = svc.GetReviewsForLecturer(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
