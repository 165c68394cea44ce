package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"explorar/internal/app/api"
	"explorar/internal/domain"
)

// Freshness windows. Tours and testimonials stay deliberately short:
// their polling drives near-real-time change notifications.
const (
	careerWindow      = 5 * time.Minute
	tourWindow        = 5 * time.Second
	testimonialWindow = 5 * time.Second

	careerTimeout      = 90 * time.Second
	tourTimeout        = 30 * time.Second
	testimonialTimeout = 20 * time.Second
)

// Service owns the three remote collection caches.
type Service struct {
	client api.Client

	Careers      *Collection[domain.Career]
	Tours        *Collection[domain.Tour]
	Testimonials *Collection[domain.Testimonial]
}

func NewService(client api.Client) *Service {
	return &Service{
		client:       client,
		Careers:      newCollection[domain.Career](client, api.PathCarreras, careerWindow, careerTimeout),
		Tours:        newCollection[domain.Tour](client, api.PathTours, tourWindow, tourTimeout),
		Testimonials: newCollection[domain.Testimonial](client, api.PathTestimonios, testimonialWindow, testimonialTimeout),
	}
}

// LoadTour fetches one tour with its full AR payload. Unlike the list
// caches this propagates failure: the viewer needs a blocking error
// state when the tour cannot load.
func (s *Service) LoadTour(ctx context.Context, tourID string) (*domain.Tour, error) {
	resp, err := s.client.Get(ctx, api.PathTours+"/"+tourID, &api.Options{Timeout: tourTimeout})
	if err != nil {
		return nil, err
	}

	var tour domain.Tour
	if err := json.Unmarshal(resp.Data, &tour); err != nil {
		return nil, fmt.Errorf("failed to decode tour: %w", err)
	}
	return &tour, nil
}

// ToursByCareer filters the cached tours by career reference.
func (s *Service) ToursByCareer(careerID string) []domain.Tour {
	var out []domain.Tour
	for _, t := range s.Tours.Items() {
		if t.CareerKey() == careerID {
			out = append(out, t)
		}
	}
	return out
}

// SearchCareers matches the query against title, description and
// category of the cached careers.
func (s *Service) SearchCareers(query string) []domain.Career {
	careers := s.Careers.Items()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return careers
	}

	var out []domain.Career
	for _, c := range careers {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Description), query) ||
			strings.Contains(strings.ToLower(c.Category), query) {
			out = append(out, c)
		}
	}
	return out
}
