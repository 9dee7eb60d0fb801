package models

import "time"

// Report is a weekly lecture report for a class, authored by either a
// lecturer or a student. Exactly one of LecturerID and StudentID is set;
// the service layer enforces this on create.
type Report struct {
	ID              int64     `json:"id"`
	ClassID         int64     `json:"class_id"`
	LecturerID      *int64    `json:"lecturer_id"`
	StudentID       *int64    `json:"student_id"`
	Week            int       `json:"week"`
	LectureDate     time.Time `json:"lecture_date"`
	Topic           string    `json:"topic"`
	Outcomes        string    `json:"outcomes"`
	Recommendations string    `json:"recommendations"`
	PresentStudents int       `json:"present_students"`
}

// ReportRow is a report joined with its class and course context, as returned
// by the role-scoped report listings.
type ReportRow struct {
	ReportID        int64     `json:"report_id"`
	Week            int       `json:"week"`
	LectureDate     time.Time `json:"lecture_date"`
	Topic           string    `json:"topic"`
	Outcomes        string    `json:"outcomes"`
	Recommendations string    `json:"recommendations"`
	PresentStudents int       `json:"present_students"`
	ClassID         int64     `json:"class_id"`
	ClassName       string    `json:"class_name"`
	CourseName      string    `json:"course_name"`
	CourseCode      string    `json:"course_code"`
	LecturerName    *string   `json:"lecturer_name,omitempty"`
	PRLFeedback     *string   `json:"prl_feedback,omitempty"`
}
