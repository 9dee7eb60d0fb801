package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository over the shared connection pool.
type Repositories struct {
	User       *UserRepository
	Faculty    *FacultyRepository
	Stream     *StreamRepository
	Course     *CourseRepository
	Class      *ClassRepository
	Report     *ReportRepository
	Feedback   *FeedbackRepository
	Rating     *RatingRepository
	Monitoring *MonitoringRepository
}

// NewRepositories creates the repository set backed by one pool.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(pool),
		Faculty:    NewFacultyRepository(pool),
		Stream:     NewStreamRepository(pool),
		Course:     NewCourseRepository(pool),
		Class:      NewClassRepository(pool),
		Report:     NewReportRepository(pool),
		Feedback:   NewFeedbackRepository(pool),
		Rating:     NewRatingRepository(pool),
		Monitoring: NewMonitoringRepository(pool),
	}
}

// statementBuilder returns the shared squirrel builder with dollar
// placeholders. Every query in this package is built through it; inputs are
// always bound as parameters, never concatenated.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
