package models

import "time"

// Rating is a score left on a report by an actor of any non-admin role.
type Rating struct {
	ID        int64     `json:"id"`
	ReportID  int64     `json:"report_id"`
	RaterID   int64     `json:"rater_id"`
	RaterRole Role      `json:"rater_role"`
	Score     int       `json:"score"`
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingRow is a rating joined with its report context, as returned by the
// role-scoped rating listings.
type RatingRow struct {
	RatingID   int64     `json:"rating_id"`
	ReportID   int64     `json:"report_id"`
	RaterID    int64     `json:"rater_id"`
	RaterRole  Role      `json:"rater_role"`
	Score      int       `json:"score"`
	Comments   string    `json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
	Topic      string    `json:"topic"`
	ClassID    int64     `json:"class_id"`
	LecturerID *int64    `json:"lecturer_id"`
	StudentID  *int64    `json:"student_id"`
}
