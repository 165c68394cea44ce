package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Career      CareerRepository
	Tour        TourRepository
	Testimonial TestimonialRepository
	Analytics   AnalyticsRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Career:      NewCareerRepository(db),
		Tour:        NewTourRepository(db),
		Testimonial: NewTestimonialRepository(db),
		Analytics:   NewAnalyticsRepository(db),
	}
}
