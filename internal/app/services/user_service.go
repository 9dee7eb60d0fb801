package services

import (
	"context"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// UserDirectoryStore is the persistence surface for user administration.
type UserDirectoryStore interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	GetLecturersByFaculty(ctx context.Context, facultyID int64) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserService defines the interface for user administration operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]*models.User, error)
	GetLecturersByFaculty(ctx context.Context, facultyID int64) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	users UserDirectoryStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserDirectoryStore) UserService {
	return &userServiceImpl{users: users}
}

func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.GetAll(ctx)
}

func (s *userServiceImpl) GetUsersByRole(ctx context.Context, role string) ([]*models.User, error) {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return s.users.GetByRole(ctx, parsed)
}

func (s *userServiceImpl) GetLecturersByFaculty(ctx context.Context, facultyID int64) ([]*models.User, error) {
	if facultyID <= 0 {
		return nil, apperrors.NewValidationError("invalid faculty id")
	}
	return s.users.GetLecturersByFaculty(ctx, facultyID)
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid user id")
	}
	return s.users.DeleteUser(ctx, id)
}
