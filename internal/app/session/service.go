package session

import (
	"sync"

	"explorar/internal/domain"
)

// Service holds the per-session exclusion sets used to filter rendered
// lists. Nothing here is persisted; a restart clears everything.
type Service struct {
	mu                 sync.Mutex
	hiddenTours        []domain.Tour
	hiddenTestimonials []domain.Testimonial
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) HideTour(tour domain.Tour) {
	if tour.Key() == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.hiddenTours {
		if t.Key() == tour.Key() {
			return
		}
	}
	s.hiddenTours = append(s.hiddenTours, tour)
}

func (s *Service) RestoreTour(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.hiddenTours {
		if t.Key() == id {
			s.hiddenTours = append(s.hiddenTours[:i], s.hiddenTours[i+1:]...)
			return
		}
	}
}

func (s *Service) IsTourHidden(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.hiddenTours {
		if t.Key() == id {
			return true
		}
	}
	return false
}

func (s *Service) HiddenTours() []domain.Tour {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Tour, len(s.hiddenTours))
	copy(out, s.hiddenTours)
	return out
}

func (s *Service) HideTestimonial(testimonial domain.Testimonial) {
	if testimonial.Key() == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.hiddenTestimonials {
		if t.Key() == testimonial.Key() {
			return
		}
	}
	s.hiddenTestimonials = append(s.hiddenTestimonials, testimonial)
}

func (s *Service) RestoreTestimonial(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.hiddenTestimonials {
		if t.Key() == id {
			s.hiddenTestimonials = append(s.hiddenTestimonials[:i], s.hiddenTestimonials[i+1:]...)
			return
		}
	}
}

func (s *Service) IsTestimonialHidden(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.hiddenTestimonials {
		if t.Key() == id {
			return true
		}
	}
	return false
}

func (s *Service) HiddenTestimonials() []domain.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Testimonial, len(s.hiddenTestimonials))
	copy(out, s.hiddenTestimonials)
	return out
}
