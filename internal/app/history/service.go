package history

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"explorar/internal/app/store"
	"explorar/internal/domain"
)

const (
	// A second registration for the same tour inside this window is a
	// re-entrant UI event for the same physical viewing, not a rewatch.
	suppressWindow = 5 * time.Second
	// Session keys expire after this and are swept on every call.
	sessionKeyTTL = 10 * time.Second
	// Hard cap on the dedup set, oldest evicted first.
	maxSessionKeys = 100
)

type sessionKey struct {
	tourID string
	at     time.Time
}

// Service is the persisted watch history: one record per tour, with an
// in-memory dedup guard that never hits storage.
type Service struct {
	blob store.BlobStore
	now  func() time.Time

	mu          sync.Mutex
	records     []domain.WatchRecord
	sessionKeys []sessionKey
}

type persistedState struct {
	State struct {
		WatchedTours []domain.WatchRecord `json:"watchedTours"`
	} `json:"state"`
	Version int `json:"version"`
}

func NewService(blob store.BlobStore) *Service {
	return &Service{blob: blob, now: time.Now}
}

// Load restores the persisted history. Missing or corrupt state starts
// empty; the session-key set is never persisted.
func (s *Service) Load(ctx context.Context) {
	raw, err := s.blob.GetItem(ctx, store.KeyTourHistory)
	if err != nil {
		log.Printf("history: failed to read persisted state: %v", err)
		return
	}
	if raw == "" {
		return
	}

	var state persistedState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Printf("history: discarding corrupt persisted state: %v", err)
		return
	}

	s.mu.Lock()
	s.records = state.State.WatchedTours
	s.mu.Unlock()
}

// RecordWatch registers a viewing. Repeats increment the counter and
// refresh the timestamp and type; a repeat within the suppression window
// is a no-op.
func (s *Service) RecordWatch(ctx context.Context, tourID, tourTitle string, tourType domain.TourType) {
	now := s.now()

	s.mu.Lock()
	s.sweepSessionKeys(now)
	for _, k := range s.sessionKeys {
		if k.tourID == tourID && now.Sub(k.at) < suppressWindow {
			s.mu.Unlock()
			return
		}
	}
	s.sessionKeys = append(s.sessionKeys, sessionKey{tourID: tourID, at: now})
	if len(s.sessionKeys) > maxSessionKeys {
		s.sessionKeys = s.sessionKeys[len(s.sessionKeys)-maxSessionKeys:]
	}

	found := false
	for i := range s.records {
		if s.records[i].TourID == tourID {
			s.records[i].WatchCount++
			s.records[i].WatchedAt = now
			s.records[i].TourType = tourType
			found = true
			break
		}
	}
	if !found {
		s.records = append(s.records, domain.WatchRecord{
			TourID:     tourID,
			TourTitle:  tourTitle,
			TourType:   tourType,
			WatchedAt:  now,
			WatchCount: 1,
		})
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Service) sweepSessionKeys(now time.Time) {
	kept := s.sessionKeys[:0]
	for _, k := range s.sessionKeys {
		if now.Sub(k.at) < sessionKeyTTL {
			kept = append(kept, k)
		}
	}
	s.sessionKeys = kept
}

func (s *Service) GetWatchInfo(tourID string) *domain.WatchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.TourID == tourID {
			rec := r
			return &rec
		}
	}
	return nil
}

func (s *Service) IsWatched(tourID string) bool {
	return s.GetWatchInfo(tourID) != nil
}

func (s *Service) RecentlyWatched(limit int) []domain.WatchRecord {
	s.mu.Lock()
	out := make([]domain.WatchRecord, len(s.records))
	copy(out, s.records)
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].WatchedAt.After(out[j].WatchedAt)
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (s *Service) MostWatched(limit int) []domain.WatchRecord {
	s.mu.Lock()
	out := make([]domain.WatchRecord, len(s.records))
	copy(out, s.records)
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].WatchCount > out[j].WatchCount
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (s *Service) Stats() domain.WatchStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.WatchStats{TotalTours: len(s.records)}
	for _, r := range s.records {
		stats.TotalWatches += r.WatchCount
	}
	if stats.TotalTours > 0 {
		avg := float64(stats.TotalWatches) / float64(stats.TotalTours)
		stats.AverageWatches = math.Round(avg*10) / 10
	}
	return stats
}

// ResetCount puts a record back to a single watch, refreshing its
// timestamp and leaving the other fields alone.
func (s *Service) ResetCount(ctx context.Context, tourID string) {
	s.mu.Lock()
	for i := range s.records {
		if s.records[i].TourID == tourID {
			s.records[i].WatchCount = 1
			s.records[i].WatchedAt = s.now()
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Service) Remove(ctx context.Context, tourID string) {
	s.mu.Lock()
	for i, r := range s.records {
		if r.TourID == tourID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Service) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Service) ClearOlderThan(ctx context.Context, days int) {
	cutoff := s.now().AddDate(0, 0, -days)

	s.mu.Lock()
	kept := s.records[:0]
	for _, r := range s.records {
		if r.WatchedAt.After(cutoff) {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Service) persist(ctx context.Context) {
	s.mu.Lock()
	var state persistedState
	state.State.WatchedTours = s.records
	s.mu.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		log.Printf("history: failed to encode state: %v", err)
		return
	}
	if err := s.blob.SetItem(ctx, store.KeyTourHistory, string(raw)); err != nil {
		log.Printf("history: failed to persist state: %v", err)
	}
}
