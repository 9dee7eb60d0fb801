package services

import (
	"context"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users  []*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if user.Email != nil && u.Email != nil && *u.Email == *user.Email {
			return 0, apperrors.ErrIdentifierExists
		}
		if user.StudentNumber != nil && u.StudentNumber != nil && *u.StudentNumber == *user.StudentNumber {
			return 0, apperrors.ErrIdentifierExists
		}
	}
	stored := *user
	stored.ID = f.nextID
	f.nextID++
	f.users = append(f.users, &stored)
	return stored.ID, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByStudentNumber(_ context.Context, studentNumber string) (*models.User, error) {
	for _, u := range f.users {
		if u.StudentNumber != nil && *u.StudentNumber == studentNumber {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// fakeReportStore records created reports and remembers which role-scoped
// listing was used.
type fakeReportStore struct {
	reports    []*models.Report
	nextID     int64
	lastScope  string
	lastUserID int64
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{nextID: 1}
}

func (f *fakeReportStore) CreateReport(_ context.Context, report *models.Report) (int64, error) {
	stored := *report
	stored.ID = f.nextID
	f.nextID++
	f.reports = append(f.reports, &stored)
	return stored.ID, nil
}

func (f *fakeReportStore) DeleteReport(_ context.Context, id int64) error {
	for i, r := range f.reports {
		if r.ID == id {
			f.reports = append(f.reports[:i], f.reports[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrReportNotFound
}

func (f *fakeReportStore) list(scope string, userID int64) ([]*models.ReportRow, error) {
	f.lastScope = scope
	f.lastUserID = userID
	return []*models.ReportRow{}, nil
}

func (f *fakeReportStore) ListForStudent(_ context.Context, id int64) ([]*models.ReportRow, error) {
	return f.list("student", id)
}

func (f *fakeReportStore) ListForLecturer(_ context.Context, id int64) ([]*models.ReportRow, error) {
	return f.list("lecturer", id)
}

func (f *fakeReportStore) ListForPRL(_ context.Context, id int64) ([]*models.ReportRow, error) {
	return f.list("prl", id)
}

func (f *fakeReportStore) ListForPL(_ context.Context, id int64) ([]*models.ReportRow, error) {
	return f.list("pl", id)
}

// fakeMonitoringStore remembers which role-scoped view was queried.
type fakeMonitoringStore struct {
	lastScope  string
	lastUserID int64
}

func (f *fakeMonitoringStore) view(scope string, userID int64) ([]*models.MonitoringRow, error) {
	f.lastScope = scope
	f.lastUserID = userID
	return []*models.MonitoringRow{}, nil
}

func (f *fakeMonitoringStore) ForStudent(_ context.Context, id int64) ([]*models.MonitoringRow, error) {
	return f.view("student", id)
}

func (f *fakeMonitoringStore) ForLecturer(_ context.Context, id int64) ([]*models.MonitoringRow, error) {
	return f.view("lecturer", id)
}

func (f *fakeMonitoringStore) ForPRL(_ context.Context, id int64) ([]*models.MonitoringRow, error) {
	return f.view("prl", id)
}

func (f *fakeMonitoringStore) ForPL(_ context.Context, id int64) ([]*models.MonitoringRow, error) {
	return f.view("pl", id)
}

// fakeFeedbackStore is an in-memory FeedbackStore.
type fakeFeedbackStore struct {
	feedback  []*models.Feedback
	nextID    int64
	lastScope string
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{nextID: 1}
}

func (f *fakeFeedbackStore) CreateFeedback(_ context.Context, fb *models.Feedback) (int64, error) {
	stored := *fb
	stored.ID = f.nextID
	f.nextID++
	f.feedback = append(f.feedback, &stored)
	return stored.ID, nil
}

func (f *fakeFeedbackStore) GetAllFeedback(_ context.Context) ([]*models.Feedback, error) {
	f.lastScope = "all"
	return f.feedback, nil
}

func (f *fakeFeedbackStore) ListAnnouncements(_ context.Context) ([]*models.Feedback, error) {
	f.lastScope = "announcements"
	var out []*models.Feedback
	for _, fb := range f.feedback {
		if fb.Kind == models.FeedbackKindAnnouncement {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (f *fakeFeedbackStore) ListReviews(_ context.Context) ([]*models.Feedback, error) {
	f.lastScope = "reviews"
	var out []*models.Feedback
	for _, fb := range f.feedback {
		if fb.Kind == models.FeedbackKindReview {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (f *fakeFeedbackStore) ListReviewsForLecturer(_ context.Context, _ int64) ([]*models.Feedback, error) {
	f.lastScope = "lecturer-reviews"
	return []*models.Feedback{}, nil
}

func (f *fakeFeedbackStore) DeleteFeedback(_ context.Context, id int64) error {
	for i, fb := range f.feedback {
		if fb.ID == id {
			f.feedback = append(f.feedback[:i], f.feedback[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeRatingStore remembers which role-scoped listing was queried.
type fakeRatingStore struct {
	ratings   []*models.Rating
	nextID    int64
	lastScope string
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{nextID: 1}
}

func (f *fakeRatingStore) CreateRating(_ context.Context, rating *models.Rating) (int64, error) {
	stored := *rating
	stored.ID = f.nextID
	f.nextID++
	f.ratings = append(f.ratings, &stored)
	return stored.ID, nil
}

func (f *fakeRatingStore) ListForStudent(_ context.Context, _ int64) ([]*models.RatingRow, error) {
	f.lastScope = "student"
	return []*models.RatingRow{}, nil
}

func (f *fakeRatingStore) ListForLecturer(_ context.Context, _ int64) ([]*models.RatingRow, error) {
	f.lastScope = "lecturer"
	return []*models.RatingRow{}, nil
}

func (f *fakeRatingStore) ListForFaculty(_ context.Context, _ int64) ([]*models.RatingRow, error) {
	f.lastScope = "faculty"
	return []*models.RatingRow{}, nil
}
