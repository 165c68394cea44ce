package changes

import (
	"context"

	"explorar/internal/domain"
)

// Notifier is the slice of the notification store the detector writes
// through.
type Notifier interface {
	NotifyNewCareer(ctx context.Context, career domain.Career)
	NotifyNewTour(ctx context.Context, tour domain.Tour, careerTitle string)
	NotifyNewTestimonial(ctx context.Context, testimonial domain.Testimonial)
	NotifyCareerUpdated(ctx context.Context, career domain.Career)
	NotifyTourUpdated(ctx context.Context, tour domain.Tour)
	NotifyTestimonialUpdated(ctx context.Context, testimonial domain.Testimonial)
	NotifyFeaturedCareer(ctx context.Context, career domain.Career)
	UpdateLastCheck(ctx context.Context)
}

// Snapshot pairs the three collections as captured at one moment. The
// caller must hand DetectChanges a consistent before/after pairing;
// mixing snapshots from interleaved refreshes produces spurious diffs.
type Snapshot struct {
	Careers      []domain.Career
	Tours        []domain.Tour
	Testimonials []domain.Testimonial
}

func (s Snapshot) empty() bool {
	return len(s.Careers) == 0 && len(s.Tours) == 0 && len(s.Testimonials) == 0
}

// Detector turns collection diffs into notifications.
type Detector struct {
	notifier Notifier
}

func NewDetector(notifier Notifier) *Detector {
	return &Detector{notifier: notifier}
}

// DetectChanges compares the previous and current snapshots and emits
// one notification per detected change. A fully empty previous snapshot
// is the first observation: nothing is emitted, so pre-existing data
// does not flood the inbox. The last-checked watermark always advances.
func (d *Detector) DetectChanges(ctx context.Context, curr, prev Snapshot) {
	defer d.notifier.UpdateLastCheck(ctx)

	if prev.empty() {
		return
	}

	prevCareers := make(map[string]domain.Career, len(prev.Careers))
	for _, c := range prev.Careers {
		prevCareers[c.Key()] = c
	}
	prevTours := make(map[string]domain.Tour, len(prev.Tours))
	for _, t := range prev.Tours {
		prevTours[t.Key()] = t
	}
	prevTestimonials := make(map[string]domain.Testimonial, len(prev.Testimonials))
	for _, t := range prev.Testimonials {
		prevTestimonials[t.Key()] = t
	}

	for _, career := range curr.Careers {
		if _, ok := prevCareers[career.Key()]; !ok {
			d.notifier.NotifyNewCareer(ctx, career)
		}
	}

	for _, tour := range curr.Tours {
		if _, ok := prevTours[tour.Key()]; !ok {
			d.notifier.NotifyNewTour(ctx, tour, careerTitle(curr.Careers, tour))
		}
	}

	for _, testimonial := range curr.Testimonials {
		if _, ok := prevTestimonials[testimonial.Key()]; !ok {
			d.notifier.NotifyNewTestimonial(ctx, testimonial)
		}
	}

	// A career can be brand new and newly featured at once; both
	// notifications are emitted.
	for _, career := range curr.Careers {
		if !career.IsHighlighted {
			continue
		}
		if before, ok := prevCareers[career.Key()]; !ok || !before.IsHighlighted {
			d.notifier.NotifyFeaturedCareer(ctx, career)
		}
	}

	for _, career := range curr.Careers {
		if before, ok := prevCareers[career.Key()]; ok && careerChanged(before, career) {
			d.notifier.NotifyCareerUpdated(ctx, career)
		}
	}

	for _, tour := range curr.Tours {
		if before, ok := prevTours[tour.Key()]; ok && tourChanged(before, tour) {
			d.notifier.NotifyTourUpdated(ctx, tour)
		}
	}

	for _, testimonial := range curr.Testimonials {
		if before, ok := prevTestimonials[testimonial.Key()]; ok && testimonialChanged(before, testimonial) {
			d.notifier.NotifyTestimonialUpdated(ctx, testimonial)
		}
	}
}

func careerTitle(careers []domain.Career, tour domain.Tour) string {
	ref := tour.CareerKey()
	for _, c := range careers {
		if c.Key() == ref {
			return c.Title
		}
	}
	return "Carrera"
}

// The update heuristics compare a fixed set of significant fields plus
// the updatedAt alias pair. There is no authoritative update feed, so
// this hand-picked set is kept as-is even though it can over- and
// under-fire relative to what the server actually changed.

func careerChanged(before, after domain.Career) bool {
	return before.Title != after.Title ||
		before.Description != after.Description ||
		before.Category != after.Category ||
		before.LastUpdated() != after.LastUpdated()
}

func tourChanged(before, after domain.Tour) bool {
	return before.Title != after.Title ||
		before.Description != after.Description ||
		before.Duration != after.Duration ||
		string(before.Multimedia) != string(after.Multimedia) ||
		before.LastUpdated() != after.LastUpdated()
}

func testimonialChanged(before, after domain.Testimonial) bool {
	return before.Text != after.Text ||
		before.AuthorName() != after.AuthorName() ||
		before.LastUpdated() != after.LastUpdated()
}
