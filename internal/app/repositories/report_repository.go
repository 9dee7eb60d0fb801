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

// ReportRepository handles report database operations. The role-specific
// listings live here as one method per role; the service layer owns the
// dispatch so an unknown role never reaches SQL.
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db, sb: statementBuilder()}
}

// CreateReport inserts a report and returns its id.
func (r *ReportRepository) CreateReport(ctx context.Context, report *models.Report) (int64, error) {
	sql, args, err := r.sb.Insert("reports").
		Columns("class_id", "lecturer_id", "student_id", "week", "lecture_date",
			"topic", "outcomes", "recommendations", "present_students").
		Values(report.ClassID, report.LecturerID, report.StudentID, report.Week,
			report.LectureDate, report.Topic, report.Outcomes, report.Recommendations,
			report.PresentStudents).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create report query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewValidationError("class does not exist")
		}
		if dberrors.IsCheckViolation(err) {
			return 0, apperrors.NewValidationError("report must have exactly one author")
		}
		logger.Error().Err(err).Msg("Error executing create report query")
		return 0, fmt.Errorf("error creating report: %w", err)
	}
	return id, nil
}

// DeleteReport deletes a report by id. Unlike the other resources this
// checks the affected-row count and reports a missing id.
func (r *ReportRepository) DeleteReport(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reports").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete report query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reportID", id).Msg("Error executing delete report query")
		return fmt.Errorf("error deleting report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}

// ListForStudent returns reports authored by the student.
func (r *ReportRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.ReportRow, error) {
	builder := r.reportSelect("u.name AS lecturer_name", "NULL::text AS prl_feedback").
		LeftJoin("users u ON r.lecturer_id = u.id").
		Where(squirrel.Eq{"r.student_id": studentID}).
		OrderBy("r.lecture_date DESC")
	return r.listRows(ctx, builder)
}

// ListForLecturer returns reports authored by the lecturer.
func (r *ReportRepository) ListForLecturer(ctx context.Context, lecturerID int64) ([]*models.ReportRow, error) {
	builder := r.reportSelect("NULL::text AS lecturer_name", "NULL::text AS prl_feedback").
		Where(squirrel.Eq{"r.lecturer_id": lecturerID}).
		OrderBy("r.lecture_date DESC")
	return r.listRows(ctx, builder)
}

// ListForPRL returns lecturer reports whose course belongs to the PRL's
// faculty.
func (r *ReportRepository) ListForPRL(ctx context.Context, prlID int64) ([]*models.ReportRow, error) {
	builder := r.reportSelect("u.name AS lecturer_name", "NULL::text AS prl_feedback").
		Join("users u ON r.lecturer_id = u.id").
		Where("co.faculty_id = (SELECT faculty_id FROM users WHERE id = ?)", prlID).
		OrderBy("r.lecture_date DESC")
	return r.listRows(ctx, builder)
}

// ListForPL returns lecturer reports in the PL's faculty together with any
// PRL review feedback already left on them.
func (r *ReportRepository) ListForPL(ctx context.Context, plID int64) ([]*models.ReportRow, error) {
	builder := r.reportSelect("u.name AS lecturer_name", "f.feedback_text AS prl_feedback").
		Join("users u ON r.lecturer_id = u.id").
		LeftJoin("feedback f ON f.report_id = r.id AND f.prl_id IS NOT NULL").
		Where("co.faculty_id = (SELECT faculty_id FROM users WHERE id = ?)", plID).
		OrderBy("r.lecture_date DESC")
	return r.listRows(ctx, builder)
}

func (r *ReportRepository) reportSelect(extra ...string) squirrel.SelectBuilder {
	cols := []string{
		"r.id AS report_id", "r.week", "r.lecture_date", "r.topic", "r.outcomes",
		"r.recommendations", "r.present_students",
		"c.id AS class_id", "c.class_name",
		"co.name AS course_name", "co.code AS course_code",
	}
	cols = append(cols, extra...)
	return r.sb.Select(cols...).
		From("reports r").
		Join("classes c ON r.class_id = c.id").
		Join("courses co ON c.course_id = co.id")
}

func (r *ReportRepository) listRows(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.ReportRow, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reports query")
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.ReportRow{}
	for rows.Next() {
		row := &models.ReportRow{}
		if err := rows.Scan(&row.ReportID, &row.Week, &row.LectureDate, &row.Topic,
			&row.Outcomes, &row.Recommendations, &row.PresentStudents,
			&row.ClassID, &row.ClassName, &row.CourseName, &row.CourseCode,
			&row.LecturerName, &row.PRLFeedback); err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return reports, nil
}
