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

// FeedbackRepository handles feedback database operations. The feedback
// table stores two record kinds; rows are classified into a
// models.FeedbackKind at scan time so nothing downstream probes nullable
// columns.
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db, sb: statementBuilder()}
}

// CreateFeedback inserts a review or an announcement and returns its id.
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, fb *models.Feedback) (int64, error) {
	sql, args, err := r.sb.Insert("feedback").
		Columns("report_id", "prl_id", "pl_id", "feedback_text").
		Values(fb.ReportID, fb.PRLID, fb.PLID, fb.Text).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create feedback query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewValidationError("report or user does not exist")
		}
		if dberrors.IsCheckViolation(err) {
			return 0, apperrors.NewValidationError("feedback must be either a report review or an announcement")
		}
		logger.Error().Err(err).Msg("Error executing create feedback query")
		return 0, fmt.Errorf("error creating feedback: %w", err)
	}
	return id, nil
}

// GetAllFeedback retrieves every feedback row, reviews and announcements
// alike, newest first.
func (r *FeedbackRepository) GetAllFeedback(ctx context.Context) ([]*models.Feedback, error) {
	builder := r.sb.Select(
		"f.id", "f.report_id", "f.prl_id", "f.pl_id", "f.feedback_text", "f.created_at",
		"prl.name AS prl_name", "pl.name AS pl_name", "l.name AS lecturer_name",
		"r.topic", "r.lecture_date", "NULL::text AS class_name",
	).
		From("feedback f").
		LeftJoin("reports r ON f.report_id = r.id").
		LeftJoin("users prl ON f.prl_id = prl.id").
		LeftJoin("users pl ON f.pl_id = pl.id").
		LeftJoin("users l ON r.lecturer_id = l.id").
		OrderBy("f.created_at DESC")
	return r.listRows(ctx, builder)
}

// ListAnnouncements retrieves PL announcements, newest first.
func (r *FeedbackRepository) ListAnnouncements(ctx context.Context) ([]*models.Feedback, error) {
	builder := r.sb.Select(
		"f.id", "f.report_id", "f.prl_id", "f.pl_id", "f.feedback_text", "f.created_at",
		"NULL::text AS prl_name", "pl.name AS pl_name", "NULL::text AS lecturer_name",
		"NULL::text AS topic", "NULL::date AS lecture_date", "NULL::text AS class_name",
	).
		From("feedback f").
		LeftJoin("users pl ON f.pl_id = pl.id").
		Where("f.report_id IS NULL AND f.pl_id IS NOT NULL").
		OrderBy("f.created_at DESC")
	return r.listRows(ctx, builder)
}

// ListReviews retrieves PRL review feedback on reports, newest first.
func (r *FeedbackRepository) ListReviews(ctx context.Context) ([]*models.Feedback, error) {
	builder := r.sb.Select(
		"f.id", "f.report_id", "f.prl_id", "f.pl_id", "f.feedback_text", "f.created_at",
		"prl.name AS prl_name", "NULL::text AS pl_name", "NULL::text AS lecturer_name",
		"r.topic", "r.lecture_date", "NULL::text AS class_name",
	).
		From("feedback f").
		LeftJoin("users prl ON f.prl_id = prl.id").
		LeftJoin("reports r ON f.report_id = r.id").
		Where("f.report_id IS NOT NULL AND f.prl_id IS NOT NULL").
		OrderBy("f.created_at DESC")
	return r.listRows(ctx, builder)
}

// ListReviewsForLecturer retrieves PRL reviews left on a lecturer's reports,
// newest lecture first.
func (r *FeedbackRepository) ListReviewsForLecturer(ctx context.Context, lecturerID int64) ([]*models.Feedback, error) {
	builder := r.sb.Select(
		"f.id", "f.report_id", "f.prl_id", "f.pl_id", "f.feedback_text", "f.created_at",
		"prl.name AS prl_name", "NULL::text AS pl_name", "NULL::text AS lecturer_name",
		"r.topic", "r.lecture_date", "c.class_name",
	).
		From("feedback f").
		Join("reports r ON f.report_id = r.id").
		Join("classes c ON r.class_id = c.id").
		LeftJoin("users prl ON f.prl_id = prl.id").
		Where(squirrel.Eq{"r.lecturer_id": lecturerID}).
		Where("f.prl_id IS NOT NULL").
		OrderBy("r.lecture_date DESC")
	return r.listRows(ctx, builder)
}

func (r *FeedbackRepository) listRows(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Feedback, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	items := []*models.Feedback{}
	for rows.Next() {
		fb := &models.Feedback{}
		if err := rows.Scan(&fb.ID, &fb.ReportID, &fb.PRLID, &fb.PLID, &fb.Text, &fb.CreatedAt,
			&fb.PRLName, &fb.PLName, &fb.LecturerName, &fb.ReportTopic, &fb.LectureDate, &fb.ClassName); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		if kind, ok := models.ClassifyFeedback(fb.ReportID, fb.PRLID, fb.PLID); ok {
			fb.Kind = kind
		}
		items = append(items, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}
	return items, nil
}

// DeleteFeedback hard-deletes a feedback row by id; a non-existent id is a
// silent no-op.
func (r *FeedbackRepository) DeleteFeedback(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("feedback").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete feedback query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("feedbackID", id).Msg("Error executing delete feedback query")
		return fmt.Errorf("error deleting feedback: %w", err)
	}
	return nil
}
