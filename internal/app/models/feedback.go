package models

import "time"

// FeedbackKind discriminates the two logical record kinds stored in the
// feedback table.
type FeedbackKind string

const (
	// FeedbackKindReview is PRL feedback attached to a specific report.
	FeedbackKindReview FeedbackKind = "review"
	// FeedbackKindAnnouncement is a faculty-wide PL announcement, not tied to
	// any report.
	FeedbackKindAnnouncement FeedbackKind = "announcement"
)

// Feedback is a tagged union: either a PRL's review of a report
// (ReportID+PRLID set) or a PL announcement (PLID set, ReportID null). Kind
// is derived once at the persistence boundary; callers switch on it instead
// of probing nullable fields.
type Feedback struct {
	ID        int64        `json:"id"`
	Kind      FeedbackKind `json:"kind"`
	ReportID  *int64       `json:"report_id"`
	PRLID     *int64       `json:"prl_id"`
	PLID      *int64       `json:"pl_id"`
	Text      string       `json:"feedback_text"`
	CreatedAt time.Time    `json:"created_at"`

	// Joined display fields.
	PRLName      *string    `json:"prl_name,omitempty"`
	PLName       *string    `json:"pl_name,omitempty"`
	LecturerName *string    `json:"lecturer_name,omitempty"`
	ReportTopic  *string    `json:"topic,omitempty"`
	LectureDate  *time.Time `json:"lecture_date,omitempty"`
	ClassName    *string    `json:"class_name,omitempty"`
}

// NewReviewFeedback builds PRL feedback on a report.
func NewReviewFeedback(reportID, prlID int64, text string) Feedback {
	return Feedback{
		Kind:     FeedbackKindReview,
		ReportID: &reportID,
		PRLID:    &prlID,
		Text:     text,
	}
}

// NewAnnouncement builds a PL announcement.
func NewAnnouncement(plID int64, text string) Feedback {
	return Feedback{
		Kind: FeedbackKindAnnouncement,
		PLID: &plID,
		Text: text,
	}
}

// ClassifyFeedback derives the kind of a stored feedback row from which
// foreign keys are populated. A row in neither valid state yields false.
func ClassifyFeedback(reportID, prlID, plID *int64) (FeedbackKind, bool) {
	switch {
	case reportID != nil && prlID != nil:
		return FeedbackKindReview, true
	case reportID == nil && plID != nil:
		return FeedbackKindAnnouncement, true
	}
	return "", false
}
