package handler

import "explorar/internal/service"

type Handlers struct {
	Career      *CareerHandler
	Tour        *TourHandler
	Testimonial *TestimonialHandler
	Analytics   *AnalyticsHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Career:      NewCareerHandler(services.Catalog),
		Tour:        NewTourHandler(services.Catalog),
		Testimonial: NewTestimonialHandler(services.Catalog),
		Analytics:   NewAnalyticsHandler(services.Analytics),
	}
}
