package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/controllers"
	"github.com/Boiketlo2/school-reporting/internal/app/migrations"
	"github.com/Boiketlo2/school-reporting/internal/app/repositories"
	"github.com/Boiketlo2/school-reporting/internal/app/routes"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/config"
	"github.com/Boiketlo2/school-reporting/internal/db"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/auth"
	"github.com/Boiketlo2/school-reporting/internal/pkg/logger"
	"github.com/Boiketlo2/school-reporting/internal/seed"
)

// LoadConfigAndSetupLogger reads configuration and configures the process
// logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Format != "json",
	})

	return cfg, nil
}

// SetupDatabase builds the connection pool and probes connectivity. A failed
// probe does not abort startup: the server comes up degraded and store-backed
// requests fail until the database is reachable.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.PingWithRetry(ctx); err != nil {
		logger.Error().Err(err).Msg("Database unreachable, continuing in degraded mode")
	}

	return database, nil
}

// RunMigrationsAndSeed applies pending schema migrations and inserts the
// baseline rows.
func RunMigrationsAndSeed(ctx context.Context, database *db.PostgresDB, migrationsDir string) error {
	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return seed.Run(ctx, database.Pool)
}

// Dependencies is the wired object graph behind the HTTP surface.
type Dependencies struct {
	Controllers routes.Controllers
	AuthMW      *middleware.AuthMiddleware
}

// BuildDependencies wires repositories, services and controllers over the
// shared pool.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	repos := repositories.NewRepositories(database.Pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    config.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	authService := services.NewAuthService(repos.User, jwtService, logger.Get())
	userService := services.NewUserService(repos.User)
	facultyService := services.NewFacultyService(repos.Faculty, repos.Stream)
	classService := services.NewClassService(repos.Class)
	courseService := services.NewCourseService(repos.Course, repos.Class)
	reportService := services.NewReportService(repos.Report)
	feedbackService := services.NewFeedbackService(repos.Feedback)
	ratingService := services.NewRatingService(repos.Rating)
	monitoringService := services.NewMonitoringService(repos.Monitoring)

	return &Dependencies{
		Controllers: routes.Controllers{
			Auth:       controllers.NewAuthController(authService),
			User:       controllers.NewUserController(userService),
			Faculty:    controllers.NewFacultyController(facultyService),
			Course:     controllers.NewCourseController(courseService),
			Class:      controllers.NewClassController(classService),
			Report:     controllers.NewReportController(reportService, feedbackService),
			Feedback:   controllers.NewFeedbackController(feedbackService),
			Rating:     controllers.NewRatingController(ratingService),
			Monitoring: controllers.NewMonitoringController(monitoringService),
		},
		AuthMW: middleware.NewAuthMiddleware(jwtService),
	}
}

// SetupRouter builds the gin engine with the full route table.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())

	routes.SetupRoutes(router, deps.Controllers, deps.AuthMW)
	return router
}
