package changes

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"explorar/internal/domain"
)

// recordingNotifier captures emissions as readable strings so tests can
// assert both content and order.
type recordingNotifier struct {
	events         []string
	lastCheckCalls int
}

func (r *recordingNotifier) NotifyNewCareer(_ context.Context, c domain.Career) {
	r.events = append(r.events, "new_career:"+c.Title)
}

func (r *recordingNotifier) NotifyNewTour(_ context.Context, t domain.Tour, careerTitle string) {
	r.events = append(r.events, fmt.Sprintf("new_tour:%s@%s", t.Title, careerTitle))
}

func (r *recordingNotifier) NotifyNewTestimonial(_ context.Context, t domain.Testimonial) {
	r.events = append(r.events, "new_testimonio:"+t.AuthorName())
}

func (r *recordingNotifier) NotifyCareerUpdated(_ context.Context, c domain.Career) {
	r.events = append(r.events, "career_updated:"+c.Title)
}

func (r *recordingNotifier) NotifyTourUpdated(_ context.Context, t domain.Tour) {
	r.events = append(r.events, "tour_updated:"+t.Title)
}

func (r *recordingNotifier) NotifyTestimonialUpdated(_ context.Context, t domain.Testimonial) {
	r.events = append(r.events, "testimonio_updated:"+t.AuthorName())
}

func (r *recordingNotifier) NotifyFeaturedCareer(_ context.Context, c domain.Career) {
	r.events = append(r.events, "featured_career:"+c.Title)
}

func (r *recordingNotifier) UpdateLastCheck(_ context.Context) {
	r.lastCheckCalls++
}

func TestDetectChangesColdStart(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDetector(notifier)

	curr := Snapshot{
		Careers: []domain.Career{{ID: "c1", Title: "Medicina", IsHighlighted: true}},
		Tours:   []domain.Tour{{ID: "t1", Title: "Quirófano"}},
	}
	d.DetectChanges(context.Background(), curr, Snapshot{})

	assert.Empty(t, notifier.events)
	assert.Equal(t, 1, notifier.lastCheckCalls)
}

func TestDetectChangesAdditionsAndOrder(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDetector(notifier)

	prev := Snapshot{
		Careers:      []domain.Career{{ID: "c1", Title: "Medicina"}},
		Tours:        []domain.Tour{{ID: "t1", Title: "Quirófano", CareerID: "c1"}},
		Testimonials: []domain.Testimonial{{ID: "x1", Author: "Ana", Text: "Genial"}},
	}
	curr := Snapshot{
		Careers: []domain.Career{
			{ID: "c1", Title: "Medicina"},
			{ID: "c2", Title: "Arquitectura", IsHighlighted: true},
		},
		Tours: []domain.Tour{
			{ID: "t1", Title: "Quirófano", CareerID: "c1"},
			{ID: "t2", Title: "Estudio", CareerID: "c2"},
			{ID: "t3", Title: "Sin carrera"},
		},
		Testimonials: []domain.Testimonial{
			{ID: "x1", Author: "Ana", Text: "Genial"},
			{ID: "x2", Author: "Luis", Text: "Increíble"},
		},
	}

	d.DetectChanges(context.Background(), curr, prev)

	assert.Equal(t, []string{
		"new_career:Arquitectura",
		"new_tour:Estudio@Arquitectura",
		"new_tour:Sin carrera@Carrera",
		"new_testimonio:Luis",
		"featured_career:Arquitectura",
	}, notifier.events)
	assert.Equal(t, 1, notifier.lastCheckCalls)
}

func TestDetectChangesFeaturedTransition(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDetector(notifier)

	prev := Snapshot{Careers: []domain.Career{{ID: "c1", Title: "Medicina"}}}
	curr := Snapshot{Careers: []domain.Career{{ID: "c1", Title: "Medicina", IsHighlighted: true}}}

	d.DetectChanges(context.Background(), curr, prev)
	assert.Equal(t, []string{"featured_career:Medicina"}, notifier.events)

	// Staying featured is not a transition.
	notifier.events = nil
	d.DetectChanges(context.Background(), curr, curr)
	assert.Empty(t, notifier.events)
}

func TestDetectChangesUpdates(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDetector(notifier)

	prev := Snapshot{
		Careers:      []domain.Career{{ID: "c1", Title: "Medicina", Description: "a"}},
		Tours:        []domain.Tour{{ID: "t1", Title: "Quirófano", Multimedia: []byte(`[]`)}},
		Testimonials: []domain.Testimonial{{ID: "x1", Author: "Ana", Text: "Genial"}},
	}
	curr := Snapshot{
		Careers:      []domain.Career{{ID: "c1", Title: "Medicina", Description: "b"}},
		Tours:        []domain.Tour{{ID: "t1", Title: "Quirófano", Multimedia: []byte(`[{"type":"video"}]`)}},
		Testimonials: []domain.Testimonial{{ID: "x1", Author: "Ana", Text: "Mejor aún"}},
	}

	d.DetectChanges(context.Background(), curr, prev)

	assert.Equal(t, []string{
		"career_updated:Medicina",
		"tour_updated:Quirófano",
		"testimonio_updated:Ana",
	}, notifier.events)
}

func TestDetectChangesNoChanges(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDetector(notifier)

	snap := Snapshot{
		Careers: []domain.Career{{ID: "c1", Title: "Medicina", UpdatedAt: "2024-01-01"}},
	}
	d.DetectChanges(context.Background(), snap, snap)

	assert.Empty(t, notifier.events)
	assert.Equal(t, 1, notifier.lastCheckCalls)
}

func TestDetectChangesIDAliases(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDetector(notifier)

	// Same entity seen under "id" and "_id" must not look like an addition.
	prev := Snapshot{Careers: []domain.Career{{AltID: "c1", Title: "Medicina"}}}
	curr := Snapshot{Careers: []domain.Career{{ID: "c1", Title: "Medicina"}}}

	d.DetectChanges(context.Background(), curr, prev)
	assert.Empty(t, notifier.events)
}
