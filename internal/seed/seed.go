package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Boiketlo2/school-reporting/internal/pkg/auth"
	"github.com/Boiketlo2/school-reporting/internal/pkg/logger"
)

var defaultFaculties = []string{
	"Faculty of Information Communication Technology",
	"Faculty of Business and Globalisation",
	"Faculty of Design and Innovation",
}

var defaultStreams = []string{
	"Information Technology",
	"Business Information Technology",
	"Software Engineering",
}

// Run inserts the baseline catalog rows and the default admin account when
// they are missing. It is idempotent and safe to call on every startup.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range defaultFaculties {
		if _, err := pool.Exec(ctx,
			`INSERT INTO faculties (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("failed to seed faculty %q: %w", name, err)
		}
	}

	for _, name := range defaultStreams {
		if _, err := pool.Exec(ctx,
			`INSERT INTO streams (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("failed to seed stream %q: %w", name, err)
		}
	}

	return seedAdmin(ctx, pool)
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@school-reporting.local"
	}

	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		logger.Warn().Str("email", email).Msg("ADMIN_PASSWORD not set, seeding admin with default password")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (name, email, password, role) VALUES ($1, $2, $3, 'admin')`,
		"Administrator", email, hashed)
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
