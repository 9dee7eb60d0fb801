package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/pkg/logger"
)

// MonitoringRepository produces the per-role monitoring views: (class,
// report) pairs for the classes an actor is authorized to see. The student,
// lecturer and PL views use a LEFT JOIN on reports so classes with nothing
// submitted yet still surface with null report fields.
type MonitoringRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMonitoringRepository creates a new MonitoringRepository
func NewMonitoringRepository(db *pgxpool.Pool) *MonitoringRepository {
	return &MonitoringRepository{db: db, sb: statementBuilder()}
}

// ForStudent returns every class the student is enrolled in, outer-joined
// with the student's own reports for that class.
func (r *MonitoringRepository) ForStudent(ctx context.Context, studentID int64) ([]*models.MonitoringRow, error) {
	builder := r.sb.Select(
		"c.id AS class_id", "c.class_name", "c.schedule_time", "c.venue",
		"cr.name AS course_name", "cr.code AS course_code",
		"r.id AS report_id", "r.week", "r.lecture_date", "r.topic",
		"r.outcomes", "r.recommendations", "r.present_students",
		"NULL::text AS prl_feedback",
	).
		From("student_classes sc").
		Join("classes c ON sc.class_id = c.id").
		Join("courses cr ON c.course_id = cr.id").
		LeftJoin("reports r ON r.class_id = c.id AND r.student_id = ?", studentID).
		Where(squirrel.Eq{"sc.student_id": studentID}).
		OrderBy("c.class_name ASC", "r.week ASC")
	return r.listRows(ctx, builder)
}

// ForLecturer returns the classes the lecturer teaches, outer-joined with
// their reports.
func (r *MonitoringRepository) ForLecturer(ctx context.Context, lecturerID int64) ([]*models.MonitoringRow, error) {
	builder := r.sb.Select(
		"c.id AS class_id", "c.class_name", "c.schedule_time", "c.venue",
		"cr.name AS course_name", "cr.code AS course_code",
		"r.id AS report_id", "r.week", "r.lecture_date", "r.topic",
		"r.outcomes", "r.recommendations", "r.present_students",
		"NULL::text AS prl_feedback",
	).
		From("classes c").
		Join("courses cr ON c.course_id = cr.id").
		LeftJoin("reports r ON r.class_id = c.id").
		Where(squirrel.Eq{"c.lecturer_id": lecturerID}).
		OrderBy("c.class_name ASC", "r.week ASC")
	return r.listRows(ctx, builder)
}

// ForPRL returns the reports the PRL has reviewed, with the feedback text
// they left.
func (r *MonitoringRepository) ForPRL(ctx context.Context, prlID int64) ([]*models.MonitoringRow, error) {
	builder := r.sb.Select(
		"c.id AS class_id", "c.class_name", "c.schedule_time", "c.venue",
		"cr.name AS course_name", "cr.code AS course_code",
		"r.id AS report_id", "r.week", "r.lecture_date", "r.topic",
		"r.outcomes", "r.recommendations", "r.present_students",
		"f.feedback_text AS prl_feedback",
	).
		From("feedback f").
		Join("reports r ON f.report_id = r.id").
		Join("classes c ON r.class_id = c.id").
		Join("courses cr ON c.course_id = cr.id").
		Where(squirrel.Eq{"f.prl_id": prlID}).
		OrderBy("r.week ASC")
	return r.listRows(ctx, builder)
}

// ForPL returns every class in the PL's faculty, outer-joined with its
// reports, ordered by course then class then week.
func (r *MonitoringRepository) ForPL(ctx context.Context, plID int64) ([]*models.MonitoringRow, error) {
	builder := r.sb.Select(
		"c.id AS class_id", "c.class_name", "c.schedule_time", "c.venue",
		"cr.name AS course_name", "cr.code AS course_code",
		"r.id AS report_id", "r.week", "r.lecture_date", "r.topic",
		"r.outcomes", "r.recommendations", "r.present_students",
		"NULL::text AS prl_feedback",
	).
		From("classes c").
		Join("courses cr ON c.course_id = cr.id").
		LeftJoin("reports r ON r.class_id = c.id").
		Where("cr.faculty_id = (SELECT faculty_id FROM users WHERE id = ?)", plID).
		OrderBy("cr.name ASC", "c.class_name ASC", "r.week ASC")
	return r.listRows(ctx, builder)
}

func (r *MonitoringRepository) listRows(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.MonitoringRow, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build monitoring query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing monitoring query")
		return nil, fmt.Errorf("error querying monitoring view: %w", err)
	}
	defer rows.Close()

	result := []*models.MonitoringRow{}
	for rows.Next() {
		row := &models.MonitoringRow{}
		if err := rows.Scan(&row.ClassID, &row.ClassName, &row.ScheduleTime, &row.Venue,
			&row.CourseName, &row.CourseCode,
			&row.ReportID, &row.Week, &row.LectureDate, &row.Topic,
			&row.Outcomes, &row.Recommendations, &row.PresentStudents,
			&row.PRLFeedback); err != nil {
			return nil, fmt.Errorf("error scanning monitoring row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monitoring rows: %w", err)
	}
	return result, nil
}
