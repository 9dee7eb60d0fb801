package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
	"github.com/Boiketlo2/school-reporting/internal/pkg/dberrors"
	"github.com/Boiketlo2/school-reporting/internal/pkg/logger"
)

// ClassRepository handles class database operations
type ClassRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db, sb: statementBuilder()}
}

// CreateClass inserts a class binding a course to a lecturer. This is the
// write behind both POST /api/classes and the PL's assign-lecturer action.
func (r *ClassRepository) CreateClass(ctx context.Context, class *models.Class) (int64, error) {
	sql, args, err := r.sb.Insert("classes").
		Columns("class_name", "course_id", "lecturer_id", "schedule_time", "venue", "total_students").
		Values(class.ClassName, class.CourseID, class.LecturerID, class.ScheduleTime, class.Venue, class.TotalStudents).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create class query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewValidationError("course or lecturer does not exist")
		}
		logger.Error().Err(err).Msg("Error executing create class query")
		return 0, fmt.Errorf("error creating class: %w", err)
	}
	return id, nil
}

// GetAllClasses retrieves all classes with course and lecturer names
func (r *ClassRepository) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	builder := r.sb.Select(
		"cl.id", "cl.class_name", "cl.course_id", "cl.lecturer_id",
		"cl.schedule_time", "cl.venue", "cl.total_students",
		"c.name AS course_name", "c.code AS course_code",
		"u.name AS lecturer_name",
	).
		From("classes cl").
		LeftJoin("courses c ON cl.course_id = c.id").
		LeftJoin("users u ON cl.lecturer_id = u.id").
		OrderBy("cl.class_name ASC")
	return r.listClasses(ctx, builder)
}

// GetLecturerClasses retrieves classes taught by a lecturer
func (r *ClassRepository) GetLecturerClasses(ctx context.Context, lecturerID int64) ([]*models.Class, error) {
	builder := r.classSelect().
		Where(squirrel.Eq{"cl.lecturer_id": lecturerID}).
		OrderBy("cl.class_name ASC")
	return r.listClasses(ctx, builder)
}

// GetFacultyClasses retrieves classes whose course belongs to the faculty of
// the given PL, resolved by a subquery on users.
func (r *ClassRepository) GetFacultyClasses(ctx context.Context, plID int64) ([]*models.Class, error) {
	builder := r.classSelect().
		Where("c.faculty_id = (SELECT faculty_id FROM users WHERE id = ?)", plID).
		OrderBy("c.name ASC", "cl.class_name ASC")
	return r.listClasses(ctx, builder)
}

func (r *ClassRepository) classSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"cl.id", "cl.class_name", "cl.course_id", "cl.lecturer_id",
		"cl.schedule_time", "cl.venue", "cl.total_students",
		"c.name AS course_name", "c.code AS course_code",
		"u.name AS lecturer_name",
	).
		From("classes cl").
		LeftJoin("courses c ON cl.course_id = c.id").
		LeftJoin("users u ON cl.lecturer_id = u.id")
}

func (r *ClassRepository) listClasses(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Class, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list classes query")
		return nil, fmt.Errorf("error querying classes: %w", err)
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.ClassName, &class.CourseID, &class.LecturerID,
			&class.ScheduleTime, &class.Venue, &class.TotalStudents,
			&class.CourseName, &class.CourseCode, &class.LecturerName); err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}
	return classes, nil
}

// EnrollStudent records a student's enrollment in a class. Enrolling twice is
// a conflict.
func (r *ClassRepository) EnrollStudent(ctx context.Context, studentID, classID int64) error {
	sql, args, err := r.sb.Insert("student_classes").
		Columns("student_id", "class_id").
		Values(studentID, classID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build enroll student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("student is already enrolled in this class")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("student or class does not exist")
		}
		logger.Error().Err(err).Msg("Error executing enroll student query")
		return fmt.Errorf("error enrolling student: %w", err)
	}
	return nil
}

// DeleteClass hard-deletes a class by id; a non-existent id is a silent no-op.
func (r *ClassRepository) DeleteClass(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("classes").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete class query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("classID", id).Msg("Error executing delete class query")
		return fmt.Errorf("error deleting class: %w", err)
	}
	return nil
}
