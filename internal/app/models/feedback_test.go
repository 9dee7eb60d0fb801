package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestClassifyFeedback(t *testing.T) {
	tests := []struct {
		name     string
		reportID *int64
		prlID    *int64
		plID     *int64
		want     FeedbackKind
		ok       bool
	}{
		{name: "review", reportID: int64Ptr(1), prlID: int64Ptr(2), want: FeedbackKindReview, ok: true},
		{name: "announcement", plID: int64Ptr(3), want: FeedbackKindAnnouncement, ok: true},
		{name: "report without prl", reportID: int64Ptr(1), ok: false},
		{name: "prl without report", prlID: int64Ptr(2), ok: false},
		{name: "all nil", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := ClassifyFeedback(tt.reportID, tt.prlID, tt.plID)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, kind)
			}
		})
	}
}

func TestFeedbackConstructors(t *testing.T) {
	review := NewReviewFeedback(10, 20, "solid coverage of the topic")
	assert.Equal(t, FeedbackKindReview, review.Kind)
	assert.Equal(t, int64(10), *review.ReportID)
	assert.Equal(t, int64(20), *review.PRLID)
	assert.Nil(t, review.PLID)

	ann := NewAnnouncement(30, "exam schedule published")
	assert.Equal(t, FeedbackKindAnnouncement, ann.Kind)
	assert.Equal(t, int64(30), *ann.PLID)
	assert.Nil(t, ann.ReportID)
	assert.Nil(t, ann.PRLID)
}
