package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Boiketlo2/school-reporting/internal/app/models"
	"github.com/Boiketlo2/school-reporting/internal/pkg/logger"
)

// StreamRepository handles stream database operations
type StreamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStreamRepository creates a new StreamRepository
func NewStreamRepository(db *pgxpool.Pool) *StreamRepository {
	return &StreamRepository{db: db, sb: statementBuilder()}
}

// GetAllStreams retrieves all streams ordered by name
func (r *StreamRepository) GetAllStreams(ctx context.Context) ([]*models.Stream, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("streams").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all streams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all streams query")
		return nil, fmt.Errorf("error querying streams: %w", err)
	}
	defer rows.Close()

	streams := []*models.Stream{}
	for rows.Next() {
		stream := &models.Stream{}
		if err := rows.Scan(&stream.ID, &stream.Name); err != nil {
			return nil, fmt.Errorf("error scanning stream row: %w", err)
		}
		streams = append(streams, stream)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stream rows: %w", err)
	}
	return streams, nil
}
