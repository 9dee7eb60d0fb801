package dto

// RegisterRequest is the payload for POST /api/auth/register. At least one of
// Email and StudentNumber must be present; the service validates that.
type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	StudentNumber string `json:"student_number"`
	Password      string `json:"password" binding:"required"`
	Role          string `json:"role"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest is the payload for POST /api/auth/login. Identifier is matched
// against email when it contains "@", otherwise against student_number.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	ID        int64  `json:"id"`
	FacultyID *int64 `json:"faculty_id"`
}

// MeResponse is the current-user projection for GET /api/auth/me.
type MeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	FacultyID *int64 `json:"faculty_id"`
}
