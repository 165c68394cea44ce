package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"explorar/internal/domain"
)

type TestimonialRepository interface {
	GetAll(ctx context.Context) ([]domain.TestimonialRecord, error)
}

type testimonialRepository struct {
	db *sqlx.DB
}

func NewTestimonialRepository(db *sqlx.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) GetAll(ctx context.Context) ([]domain.TestimonialRecord, error) {
	var testimonials []domain.TestimonialRecord
	query := `
		SELECT id, author, author_image, role, year, text, media_url,
		       to_char(updated_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS updated_at
		FROM testimonios
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &testimonials, query)
	return testimonials, err
}
