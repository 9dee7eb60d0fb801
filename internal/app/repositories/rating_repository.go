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

// RatingRepository handles rating database operations, one listing per role.
type RatingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{db: db, sb: statementBuilder()}
}

// CreateRating inserts a rating and returns its id.
func (r *RatingRepository) CreateRating(ctx context.Context, rating *models.Rating) (int64, error) {
	sql, args, err := r.sb.Insert("ratings").
		Columns("report_id", "rater_id", "rater_role", "score", "comments").
		Values(rating.ReportID, rating.RaterID, rating.RaterRole, rating.Score, rating.Comments).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create rating query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewValidationError("report or rater does not exist")
		}
		logger.Error().Err(err).Msg("Error executing create rating query")
		return 0, fmt.Errorf("error creating rating: %w", err)
	}
	return id, nil
}

// ListForStudent returns ratings the student themselves authored.
func (r *RatingRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.RatingRow, error) {
	builder := r.ratingSelect().
		Where(squirrel.Eq{"r.rater_role": models.RoleStudent, "r.rater_id": studentID}).
		OrderBy("r.created_at DESC")
	return r.listRows(ctx, builder)
}

// ListForLecturer returns ratings on reports authored by the lecturer.
func (r *RatingRepository) ListForLecturer(ctx context.Context, lecturerID int64) ([]*models.RatingRow, error) {
	builder := r.ratingSelect().
		Where(squirrel.Eq{"rep.lecturer_id": lecturerID}).
		OrderBy("r.created_at DESC")
	return r.listRows(ctx, builder)
}

// ListForFaculty returns ratings on reports whose course belongs to the
// actor's faculty; the scoping runs transitively through class and course.
// Used for both PRL and PL actors.
func (r *RatingRepository) ListForFaculty(ctx context.Context, actorID int64) ([]*models.RatingRow, error) {
	builder := r.ratingSelect().
		LeftJoin("classes cl ON rep.class_id = cl.id").
		LeftJoin("courses co ON cl.course_id = co.id").
		Where("co.faculty_id = (SELECT faculty_id FROM users WHERE id = ?)", actorID).
		OrderBy("r.created_at DESC")
	return r.listRows(ctx, builder)
}

func (r *RatingRepository) ratingSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"r.id AS rating_id", "r.report_id", "r.rater_id", "r.rater_role",
		"r.score", "r.comments", "r.created_at",
		"rep.topic", "rep.class_id", "rep.lecturer_id", "rep.student_id",
	).
		From("ratings r").
		Join("reports rep ON r.report_id = rep.id")
}

func (r *RatingRepository) listRows(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.RatingRow, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list ratings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list ratings query")
		return nil, fmt.Errorf("error querying ratings: %w", err)
	}
	defer rows.Close()

	ratings := []*models.RatingRow{}
	for rows.Next() {
		row := &models.RatingRow{}
		if err := rows.Scan(&row.RatingID, &row.ReportID, &row.RaterID, &row.RaterRole,
			&row.Score, &row.Comments, &row.CreatedAt,
			&row.Topic, &row.ClassID, &row.LecturerID, &row.StudentID); err != nil {
			return nil, fmt.Errorf("error scanning rating row: %w", err)
		}
		ratings = append(ratings, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}
	return ratings, nil
}
