package models

import "time"

// MonitoringRow is one (class, report) pair from a role-scoped monitoring
// view. The report fields are pointers because classes with no submitted
// report still appear, via an outer join, with null report fields — "nothing
// submitted yet" must be distinguishable from "no such class".
type MonitoringRow struct {
	ClassID         int64   `json:"class_id"`
	ClassName       string  `json:"class_name"`
	ScheduleTime    *string `json:"schedule_time,omitempty"`
	Venue           *string `json:"venue,omitempty"`
	CourseName      string  `json:"course_name"`
	CourseCode      string  `json:"course_code"`
	ReportID        *int64     `json:"report_id"`
	Week            *int       `json:"week"`
	LectureDate     *time.Time `json:"lecture_date"`
	Topic           *string    `json:"topic"`
	Outcomes        *string    `json:"outcomes"`
	Recommendations *string    `json:"recommendations"`
	PresentStudents *int       `json:"present_students"`
	PRLFeedback     *string    `json:"prl_feedback,omitempty"`
}
