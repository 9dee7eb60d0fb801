package models

import "time"

// User defines the user model based on the 'users' table. Exactly one of
// Email and StudentNumber is set; lecturers, PRLs and PLs carry a faculty
// affiliation used for scoping.
type User struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         *string   `json:"email,omitempty" db:"email"`
	StudentNumber *string   `json:"student_number,omitempty" db:"student_number"`
	Password      string    `json:"-" db:"password"`
	Role          Role      `json:"role" db:"role"`
	FacultyID     *int64    `json:"faculty_id" db:"faculty_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
