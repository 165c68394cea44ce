package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"explorar/internal/domain"
)

type AnalyticsRepository interface {
	InsertBatch(ctx context.Context, events []domain.AnalyticsEventRecord) (int, error)
	CountByEventType(ctx context.Context, userID string) ([]domain.EventTypeCount, error)
}

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) InsertBatch(ctx context.Context, events []domain.AnalyticsEventRecord) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO analytics_events (id, event_type, session_id, user_id, payload, batch_timestamp)
		VALUES (:id, :event_type, :session_id, :user_id, :payload, :batch_timestamp)`
	for _, event := range events {
		if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(events), nil
}

func (r *analyticsRepository) CountByEventType(ctx context.Context, userID string) ([]domain.EventTypeCount, error) {
	var counts []domain.EventTypeCount
	query := `
		SELECT event_type, COUNT(*) AS count
		FROM analytics_events
		WHERE user_id = $1
		GROUP BY event_type
		ORDER BY count DESC`
	err := r.db.SelectContext(ctx, &counts, query, userID)
	return counts, err
}
