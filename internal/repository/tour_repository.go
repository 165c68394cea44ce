package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"explorar/internal/domain"
)

type TourRepository interface {
	GetAll(ctx context.Context) ([]domain.TourRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TourRecord, error)
}

type tourRepository struct {
	db *sqlx.DB
}

func NewTourRepository(db *sqlx.DB) TourRepository {
	return &tourRepository{db: db}
}

const tourColumns = `
	id, title, duration, progress, image_url, description, career_id, type,
	multimedia, hotspots, ar_config, model_object,
	to_char(updated_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS updated_at`

func (r *tourRepository) GetAll(ctx context.Context) ([]domain.TourRecord, error) {
	var tours []domain.TourRecord
	query := `SELECT ` + tourColumns + ` FROM tours ORDER BY created_at`
	err := r.db.SelectContext(ctx, &tours, query)
	return tours, err
}

func (r *tourRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TourRecord, error) {
	var tour domain.TourRecord
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`
	err := r.db.GetContext(ctx, &tour, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tour, nil
}
