package analytics

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"explorar/internal/app/api"
	"explorar/internal/domain"
)

const (
	// Queue length that triggers an immediate flush.
	batchSize = 10
	// FlushInterval is the contracted period for the caller-owned timer
	// trigger.
	FlushInterval = 5 * time.Minute

	flushTimeout = 10 * time.Second
)

// Event types.
const (
	EventAppOpen      = "app_open"
	EventCareerView   = "career_view"
	EventTourStart    = "tour_start"
	EventTourComplete = "tour_complete"
	EventHotspotClick = "hotspot_click"
	EventScreenView   = "screen_view"
)

// Service queues usage events and ships them in batches. Delivery is
// at-least-once: a failed send leaves the whole queue in place for the
// next trigger, so the ingest side must tolerate duplicates.
type Service struct {
	client api.Client
	now    func() time.Time

	mu         sync.Mutex
	queue      []domain.AnalyticsEvent
	sessionID  string
	deviceInfo domain.DeviceInfo
	sending    bool
}

func NewService(client api.Client) *Service {
	return &Service{client: client, now: time.Now}
}

// InitSession assigns a session id, snapshots device info and records
// the app-open event. Tracking before this is a no-op.
func (s *Service) InitSession(ctx context.Context, appVersion string) {
	s.mu.Lock()
	s.sessionID = fmt.Sprintf("session_%d_%s", s.now().UnixMilli(), uuid.New().String()[:8])
	s.deviceInfo = CollectDeviceInfo(appVersion)
	s.mu.Unlock()

	log.Printf("analytics: session started %s", s.SessionID())
	s.Track(ctx, EventAppOpen, nil)
}

func (s *Service) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Track appends an event to the queue, flushing when the batch threshold
// is reached.
func (s *Service) Track(ctx context.Context, eventType string, metadata map[string]any) {
	s.mu.Lock()
	if s.sessionID == "" {
		s.mu.Unlock()
		log.Printf("analytics: session not initialized, dropping %s", eventType)
		return
	}

	s.queue = append(s.queue, domain.AnalyticsEvent{
		EventType:  eventType,
		SessionID:  s.sessionID,
		Timestamp:  s.now(),
		DeviceInfo: s.deviceInfo,
		Metadata:   metadata,
	})
	full := len(s.queue) >= batchSize
	s.mu.Unlock()

	if full {
		s.Flush(ctx)
	}
}

// Flush sends the queued events as one batch. Only one flush runs at a
// time; a second trigger while sending is a no-op and the queue is
// retried on the next one. On failure the queue is left untouched.
func (s *Service) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.sending || len(s.queue) == 0 {
		s.mu.Unlock()
		return
	}
	s.sending = true
	batch := make([]domain.AnalyticsEvent, len(s.queue))
	copy(batch, s.queue)
	s.mu.Unlock()

	body := domain.AnalyticsBatch{
		Events:         batch,
		BatchTimestamp: s.now().UTC().Format(time.RFC3339),
	}
	_, err := s.client.Post(ctx, api.PathAnalytics, body, &api.Options{Timeout: flushTimeout})

	s.mu.Lock()
	s.sending = false
	if err != nil {
		log.Printf("analytics: flush of %d events failed, will retry: %v", len(batch), err)
	} else {
		// Drop exactly what was sent; events tracked mid-flight stay
		// queued for the next batch.
		s.queue = s.queue[len(batch):]
	}
	s.mu.Unlock()
}

func (s *Service) ClearQueue() {
	s.mu.Lock()
	s.queue = nil
	s.mu.Unlock()
}

// Pending returns a copy of the queued events.
func (s *Service) Pending() []domain.AnalyticsEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AnalyticsEvent, len(s.queue))
	copy(out, s.queue)
	return out
}

// Convenience trackers: parameter shaping over Track.

func (s *Service) TrackScreenView(ctx context.Context, screenName string) {
	s.Track(ctx, EventScreenView, map[string]any{"screenName": screenName})
}

func (s *Service) TrackCareerView(ctx context.Context, careerID, careerName string) {
	s.Track(ctx, EventCareerView, map[string]any{
		"careerId":   careerID,
		"careerName": careerName,
	})
}

func (s *Service) TrackTourStart(ctx context.Context, tourID, tourTitle, careerID string) {
	s.Track(ctx, EventTourStart, map[string]any{
		"tourId":    tourID,
		"tourTitle": tourTitle,
		"careerId":  careerID,
	})
}

func (s *Service) TrackTourComplete(ctx context.Context, tourID string, durationSeconds, completionRate float64) {
	s.Track(ctx, EventTourComplete, map[string]any{
		"tourId":         tourID,
		"duration":       durationSeconds,
		"completionRate": completionRate,
	})
}

func (s *Service) TrackHotspotClick(ctx context.Context, tourID, hotspotTitle string, position any) {
	s.Track(ctx, EventHotspotClick, map[string]any{
		"tourId":       tourID,
		"hotspotTitle": hotspotTitle,
		"position":     position,
	})
}
