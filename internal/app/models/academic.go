package models

// Faculty represents a faculty at the university.
type Faculty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Stream is an optional sub-classification of a course.
type Stream struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Course represents a course offered within a faculty.
type Course struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	FacultyID int64  `json:"faculty_id"`
	StreamID  *int64 `json:"stream_id,omitempty"`

	// Joined display fields, populated by list queries.
	FacultyName *string `json:"faculty_name,omitempty"`
	StreamName  *string `json:"stream_name,omitempty"`
}

// Class binds a course to a lecturer. It is created by a PL's assign-lecturer
// action.
type Class struct {
	ID            int64  `json:"id"`
	ClassName     string `json:"class_name"`
	CourseID      int64  `json:"course_id"`
	LecturerID    int64  `json:"lecturer_id"`
	ScheduleTime  string `json:"schedule_time"`
	Venue         string `json:"venue"`
	TotalStudents int    `json:"total_students"`

	// Joined display fields, populated by list queries.
	CourseName   *string `json:"course_name,omitempty"`
	CourseCode   *string `json:"course_code,omitempty"`
	LecturerName *string `json:"lecturer_name,omitempty"`
}
