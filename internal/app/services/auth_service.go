package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
	"github.com/Boiketlo2/school-reporting/internal/pkg/auth"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByStudentNumber(ctx context.Context, studentNumber string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(ctx context.Context, userID int64) (*dto.MeResponse, error)
}

type authServiceImpl struct {
	users  UserStore
	jwt    *auth.JWTService
	logger zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, jwt *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{users: users, jwt: jwt, logger: logger}
}

// Register creates a new user. The password is bcrypt-hashed before storage;
// plaintext never leaves this function. Role defaults to student.
func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		return 0, apperrors.NewValidationError("name and password are required")
	}

	email := strings.TrimSpace(req.Email)
	studentNumber := strings.TrimSpace(req.StudentNumber)
	if email == "" && studentNumber == "" {
		return 0, apperrors.NewValidationError("email or student number is required")
	}
	if email != "" && studentNumber != "" {
		return 0, apperrors.NewValidationError("provide either an email or a student number, not both")
	}

	role := models.RoleStudent
	if req.Role != "" {
		parsed, err := models.ParseRole(req.Role)
		if err != nil {
			return 0, apperrors.NewValidationError(err.Error())
		}
		role = parsed
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Password: hashed,
		Role:     role,
	}
	if email != "" {
		user.Email = &email
	}
	if studentNumber != "" {
		user.StudentNumber = &studentNumber
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User registered")
	return id, nil
}

// Login verifies credentials and issues a session token. The identifier is
// matched against email when it contains "@", otherwise against the student
// number. An unknown identifier and a wrong password fail differently (404
// vs 401), matching the HTTP surface.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Identifier == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("identifier and password are required")
	}

	var (
		user *models.User
		err  error
	)
	if strings.Contains(req.Identifier, "@") {
		user, err = s.users.GetByEmail(ctx, req.Identifier)
	} else {
		user, err = s.users.GetByStudentNumber(ctx, req.Identifier)
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginResponse{
		Message:   "Login successful",
		Token:     token,
		Role:      string(user.Role),
		Name:      user.Name,
		ID:        user.ID,
		FacultyID: user.FacultyID,
	}, nil
}

// CurrentUser returns the profile projection for an authenticated user id.
func (s *authServiceImpl) CurrentUser(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{
		ID:        user.ID,
		Name:      user.Name,
		Role:      string(user.Role),
		FacultyID: user.FacultyID,
	}, nil
}
