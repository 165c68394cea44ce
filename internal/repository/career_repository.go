package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"explorar/internal/domain"
)

type CareerRepository interface {
	GetAll(ctx context.Context) ([]domain.CareerRecord, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type careerRepository struct {
	db *sqlx.DB
}

func NewCareerRepository(db *sqlx.DB) CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) GetAll(ctx context.Context) ([]domain.CareerRecord, error) {
	var careers []domain.CareerRecord
	query := `
		SELECT id, name, description, category, is_highlighted, tour_count,
		       average_rating, to_char(updated_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS updated_at
		FROM carreras
		ORDER BY created_at`
	err := r.db.SelectContext(ctx, &careers, query)
	return careers, err
}

func (r *careerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM carreras WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
