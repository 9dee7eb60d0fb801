package dto

// CreateFacultyRequest is the payload for POST /api/faculties.
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCourseRequest is the payload for POST /api/courses.
type CreateCourseRequest struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
	FacultyID int64  `json:"faculty_id" binding:"required"`
	StreamID  *int64 `json:"stream_id"`
}

// AssignLecturerRequest is the payload for POST /api/courses/assign. It is
// the one compound write: assigning a lecturer to a course creates a class.
type AssignLecturerRequest struct {
	CourseID      int64  `json:"course_id" binding:"required"`
	LecturerID    int64  `json:"lecturer_id" binding:"required"`
	ClassName     string `json:"class_name" binding:"required"`
	ScheduleTime  string `json:"schedule_time"`
	Venue         string `json:"venue"`
	TotalStudents int    `json:"total_students"`
}

// AssignLecturerResponse is returned when a class has been created.
type AssignLecturerResponse struct {
	Message string `json:"message"`
	ClassID int64  `json:"class_id"`
}

// CreateClassRequest is the payload for POST /api/classes.
type CreateClassRequest struct {
	ClassName     string `json:"class_name" binding:"required"`
	CourseID      int64  `json:"course_id" binding:"required"`
	LecturerID    int64  `json:"lecturer_id" binding:"required"`
	ScheduleTime  string `json:"schedule_time"`
	Venue         string `json:"venue"`
	TotalStudents int    `json:"total_students"`
}

// EnrollStudentRequest is the payload for POST /api/classes/enroll.
type EnrollStudentRequest struct {
	StudentID int64 `json:"student_id" binding:"required"`
	ClassID   int64 `json:"class_id" binding:"required"`
}

// CreateReportRequest is the payload for POST /api/reports. Exactly one of
// LecturerID and StudentID must be set, matching who authored the report.
type CreateReportRequest struct {
	ClassID         int64  `json:"class_id" binding:"required"`
	LecturerID      *int64 `json:"lecturer_id"`
	StudentID       *int64 `json:"student_id"`
	Week            int    `json:"week" binding:"required"`
	LectureDate     string `json:"lecture_date" binding:"required"`
	Topic           string `json:"topic" binding:"required"`
	Outcomes        string `json:"outcomes"`
	Recommendations string `json:"recommendations"`
	PresentStudents int    `json:"present_students"`
}

// CreateReportResponse is returned on successful report submission.
type CreateReportResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// CreateFeedbackRequest is the payload for POST /api/feedback. ReportID+PRLID
// make it PRL review feedback; PLID alone makes it a PL announcement.
type CreateFeedbackRequest struct {
	ReportID     *int64 `json:"report_id"`
	PRLID        *int64 `json:"prl_id"`
	PLID         *int64 `json:"pl_id"`
	FeedbackText string `json:"feedback_text" binding:"required"`
}

// CreateFeedbackResponse is returned when feedback has been stored.
type CreateFeedbackResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// CreateRatingRequest is the payload for POST /api/ratings.
type CreateRatingRequest struct {
	ReportID  int64  `json:"report_id" binding:"required"`
	RaterID   int64  `json:"rater_id" binding:"required"`
	RaterRole string `json:"rater_role" binding:"required"`
	Score     *int   `json:"score" binding:"required"`
	Comments  string `json:"comments"`
}
