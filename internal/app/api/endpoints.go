package api

// Paths consumed by the app.
const (
	PathCarreras    = "/api/carreras"
	PathTours       = "/api/tours"
	PathTestimonios = "/api/testimonios"
	PathAnalytics   = "/api/analytics"
	PathHealth      = "/health"
)
