package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"explorar/internal/app/store"
	"explorar/internal/domain"
)

// Service is the persisted notification inbox. The list is kept newest
// first and unreadCount always equals the number of unread entries.
type Service struct {
	blob store.BlobStore
	now  func() time.Time

	mu            sync.Mutex
	notifications []domain.Notification
	unreadCount   int
	lastCheck     time.Time
	lastIDNano    int64
}

// AddParams carries the caller-supplied fields of a new notification;
// id, timestamp and read state are assigned by the store.
type AddParams struct {
	Type    domain.NotificationType
	Title   string
	Message string
	Data    map[string]string
}

type persistedState struct {
	State struct {
		Notifications []domain.Notification `json:"notifications"`
		UnreadCount   int                   `json:"unreadCount"`
		LastCheck     *time.Time            `json:"lastCheck"`
	} `json:"state"`
	Version int `json:"version"`
}

func NewService(blob store.BlobStore) *Service {
	return &Service{blob: blob, now: time.Now}
}

// Load restores the persisted state. Missing or corrupt state starts the
// store empty; it never fails.
func (s *Service) Load(ctx context.Context) {
	raw, err := s.blob.GetItem(ctx, store.KeyNotifications)
	if err != nil {
		log.Printf("notifications: failed to read persisted state: %v", err)
		return
	}
	if raw == "" {
		return
	}

	var state persistedState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Printf("notifications: discarding corrupt persisted state: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = state.State.Notifications
	s.unreadCount = state.State.UnreadCount
	if state.State.LastCheck != nil {
		s.lastCheck = *state.State.LastCheck
	}
}

func (s *Service) Add(ctx context.Context, params AddParams) domain.Notification {
	s.mu.Lock()
	notif := domain.Notification{
		ID:        s.nextID(),
		Type:      params.Type,
		Title:     params.Title,
		Message:   params.Message,
		Data:      params.Data,
		Timestamp: s.now(),
		Read:      false,
	}
	s.notifications = append([]domain.Notification{notif}, s.notifications...)
	s.unreadCount++
	s.mu.Unlock()

	s.persist(ctx)
	return notif
}

// nextID derives the id from the creation time. Nanosecond collisions in
// a burst bump forward so ids stay unique across the list.
func (s *Service) nextID() string {
	n := s.now().UnixNano()
	if n <= s.lastIDNano {
		n = s.lastIDNano + 1
	}
	s.lastIDNano = n
	return strconv.FormatInt(n, 10)
}

func (s *Service) MarkAsRead(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if !s.notifications[i].Read {
				s.notifications[i].Read = true
				if s.unreadCount > 0 {
					s.unreadCount--
				}
				changed = true
			}
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.persist(ctx)
	}
}

func (s *Service) MarkAllAsRead(ctx context.Context) {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.unreadCount = 0
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	for i, n := range s.notifications {
		if n.ID == id {
			if !n.Read && s.unreadCount > 0 {
				s.unreadCount--
			}
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Service) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.notifications = nil
	s.unreadCount = 0
	s.mu.Unlock()

	s.persist(ctx)
}

// ClearOlderThan drops notifications older than the cutoff and adjusts
// the unread counter by the unread entries removed.
func (s *Service) ClearOlderThan(ctx context.Context, days int) {
	cutoff := s.now().AddDate(0, 0, -days)

	s.mu.Lock()
	kept := s.notifications[:0]
	removedUnread := 0
	for _, n := range s.notifications {
		if n.Timestamp.After(cutoff) {
			kept = append(kept, n)
			continue
		}
		if !n.Read {
			removedUnread++
		}
	}
	s.notifications = kept
	s.unreadCount -= removedUnread
	if s.unreadCount < 0 {
		s.unreadCount = 0
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Service) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Service) Unread() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Notification
	for _, n := range s.notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

func (s *Service) ByType(t domain.NotificationType) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Notification
	for _, n := range s.notifications {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// Recent returns the newest entries; the list is already newest-first.
func (s *Service) Recent(limit int) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.notifications) {
		limit = len(s.notifications)
	}
	out := make([]domain.Notification, limit)
	copy(out, s.notifications[:limit])
	return out
}

func (s *Service) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCount
}

func (s *Service) LastCheck() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCheck
}

// UpdateLastCheck advances the detection watermark, emitted or not.
func (s *Service) UpdateLastCheck(ctx context.Context) {
	s.mu.Lock()
	s.lastCheck = s.now()
	s.mu.Unlock()

	s.persist(ctx)
}

// persist flushes the full state after a mutation. A failed write is
// logged and dropped; the in-memory mutation stands.
func (s *Service) persist(ctx context.Context) {
	s.mu.Lock()
	var state persistedState
	state.State.Notifications = s.notifications
	state.State.UnreadCount = s.unreadCount
	if !s.lastCheck.IsZero() {
		lc := s.lastCheck
		state.State.LastCheck = &lc
	}
	s.mu.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		log.Printf("notifications: failed to encode state: %v", err)
		return
	}
	if err := s.blob.SetItem(ctx, store.KeyNotifications, string(raw)); err != nil {
		log.Printf("notifications: failed to persist state: %v", err)
	}
}

// Typed emitters. Copy matches what the app has always shown.

func (s *Service) NotifyNewCareer(ctx context.Context, career domain.Career) {
	s.Add(ctx, AddParams{
		Type:    domain.NotifNewCareer,
		Title:   "🎓 Nueva Carrera Disponible",
		Message: fmt.Sprintf("Se agregó la carrera de %s", career.Title),
		Data:    map[string]string{"careerId": career.Key(), "careerTitle": career.Title},
	})
}

func (s *Service) NotifyNewTour(ctx context.Context, tour domain.Tour, careerTitle string) {
	s.Add(ctx, AddParams{
		Type:    domain.NotifNewTour,
		Title:   "🎬 Nuevo Tour Disponible",
		Message: fmt.Sprintf("%s en %s", tour.Title, careerTitle),
		Data:    map[string]string{"tourId": tour.Key(), "tourTitle": tour.Title},
	})
}

func (s *Service) NotifyNewTestimonial(ctx context.Context, testimonial domain.Testimonial) {
	author := testimonial.AuthorName()
	s.Add(ctx, AddParams{
		Type:    domain.NotifNewTestimonio,
		Title:   "💬 Nuevo Testimonio",
		Message: fmt.Sprintf("%s compartió su experiencia en ExplorAR", author),
		Data:    map[string]string{"testimonioId": testimonial.Key(), "author": author},
	})
}

func (s *Service) NotifyCareerUpdated(ctx context.Context, career domain.Career) {
	s.Add(ctx, AddParams{
		Type:    domain.NotifCareerUpdated,
		Title:   "🔄 Carrera Actualizada",
		Message: fmt.Sprintf("%s tiene información actualizada", career.Title),
		Data:    map[string]string{"careerId": career.Key(), "careerTitle": career.Title},
	})
}

func (s *Service) NotifyTourUpdated(ctx context.Context, tour domain.Tour) {
	s.Add(ctx, AddParams{
		Type:    domain.NotifTourUpdated,
		Title:   "🔄 Tour Actualizado",
		Message: fmt.Sprintf("%s tiene nuevo contenido", tour.Title),
		Data:    map[string]string{"tourId": tour.Key(), "tourTitle": tour.Title},
	})
}

func (s *Service) NotifyTestimonialUpdated(ctx context.Context, testimonial domain.Testimonial) {
	author := testimonial.AuthorName()
	s.Add(ctx, AddParams{
		Type:    domain.NotifTestimonioUpdated,
		Title:   "🔄 Testimonio Actualizado",
		Message: fmt.Sprintf("%s actualizó su testimonio", author),
		Data:    map[string]string{"testimonioId": testimonial.Key(), "author": author},
	})
}

func (s *Service) NotifyFeaturedCareer(ctx context.Context, career domain.Career) {
	s.Add(ctx, AddParams{
		Type:    domain.NotifFeaturedCareer,
		Title:   "⭐ Carrera Destacada",
		Message: fmt.Sprintf("%s ahora es carrera destacada", career.Title),
		Data:    map[string]string{"careerId": career.Key(), "careerTitle": career.Title},
	})
}

func (s *Service) NotifyNewVersion(ctx context.Context, version string) {
	s.Add(ctx, AddParams{
		Type:    domain.NotifNewVersion,
		Title:   "🚀 Nueva Versión Disponible",
		Message: fmt.Sprintf("ExplorAR %s ya está disponible", version),
		Data:    map[string]string{"version": version},
	})
}

func (s *Service) NotifySystem(ctx context.Context, title, message string) {
	s.Add(ctx, AddParams{
		Type:    domain.NotifSystem,
		Title:   title,
		Message: message,
	})
}
