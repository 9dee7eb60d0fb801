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

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db, sb: statementBuilder()}
}

// CreateCourse creates a new course
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "code", "faculty_id", "stream_id").
		Values(course.Name, course.Code, course.FacultyID, course.StreamID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("course with this code already exists")
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return id, nil
}

// GetAllCourses retrieves courses with faculty and stream names. When
// facultyOfUser is non-zero the result is limited to the faculty of that
// user, resolved by a subquery on users.
func (r *CourseRepository) GetAllCourses(ctx context.Context, facultyOfUser int64) ([]*models.Course, error) {
	builder := r.sb.Select(
		"c.id", "c.name", "c.code", "c.faculty_id", "c.stream_id",
		"f.name AS faculty_name", "s.name AS stream_name",
	).
		From("courses c").
		LeftJoin("faculties f ON c.faculty_id = f.id").
		LeftJoin("streams s ON c.stream_id = s.id").
		OrderBy("c.name ASC")

	if facultyOfUser != 0 {
		builder = builder.Where("c.faculty_id = (SELECT faculty_id FROM users WHERE id = ?)", facultyOfUser)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name, &course.Code, &course.FacultyID,
			&course.StreamID, &course.FacultyName, &course.StreamName); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// DeleteCourse hard-deletes a course by id; a non-existent id is a silent
// no-op.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
