package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
	"github.com/Boiketlo2/school-reporting/internal/pkg/dberrors"
	"github.com/Boiketlo2/school-reporting/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db, sb: statementBuilder()}
}

// CreateUser inserts a new user and returns its id. A unique violation on
// email or student_number maps to apperrors.ErrIdentifierExists.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "email", "student_number", "password", "role", "faculty_id").
		Values(user.Name, user.Email, user.StudentNumber, user.Password, user.Role, user.FacultyID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrIdentifierExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByStudentNumber retrieves a user by student number.
func (r *UserRepository) GetByStudentNumber(ctx context.Context, studentNumber string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"student_number": studentNumber})
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "student_number", "password", "role", "faculty_id", "created_at").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.StudentNumber,
		&user.Password, &user.Role, &user.FacultyID, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// GetFacultyID resolves a user's faculty affiliation; used by the
// faculty-scoping subqueries' callers when the actor's faculty is needed
// directly.
func (r *UserRepository) GetFacultyID(ctx context.Context, userID int64) (*int64, error) {
	sql, args, err := r.sb.Select("faculty_id").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty lookup query: %w", err)
	}

	var facultyID *int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&facultyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error resolving user faculty: %w", err)
	}
	return facultyID, nil
}

// GetAll retrieves all users without password material.
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	return r.list(ctx, nil)
}

// GetByRole retrieves users with the given role.
func (r *UserRepository) GetByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	return r.list(ctx, squirrel.Eq{"role": role})
}

// GetLecturersByFaculty retrieves lecturers affiliated with a faculty.
func (r *UserRepository) GetLecturersByFaculty(ctx context.Context, facultyID int64) ([]*models.User, error) {
	return r.list(ctx, squirrel.Eq{"role": models.RoleLecturer, "faculty_id": facultyID})
}

func (r *UserRepository) list(ctx context.Context, pred interface{}) ([]*models.User, error) {
	builder := r.sb.Select("id", "name", "email", "student_number", "role", "faculty_id", "created_at").
		From("users").
		OrderBy("name ASC")
	if pred != nil {
		builder = builder.Where(pred)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.StudentNumber,
			&user.Role, &user.FacultyID, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// DeleteUser hard-deletes a user by id. Deleting a non-existent id is a
// silent no-op; cascades are handled by the schema's foreign keys.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
