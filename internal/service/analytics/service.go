package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"explorar/internal/domain"
	"explorar/internal/repository"
)

type Service interface {
	Ingest(ctx context.Context, events []json.RawMessage, batchTimestamp string) (int, error)
	UserMetrics(ctx context.Context, userID string) ([]domain.EventTypeCount, error)
}

type service struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewService(analyticsRepo repository.AnalyticsRepository) Service {
	return &service{analyticsRepo: analyticsRepo}
}

// eventEnvelope covers the fields the server indexes on. Everything
// else stays inside the stored payload.
type eventEnvelope struct {
	EventType string `json:"eventType"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

func (s *service) Ingest(ctx context.Context, events []json.RawMessage, batchTimestamp string) (int, error) {
	if batchTimestamp == "" {
		batchTimestamp = time.Now().UTC().Format(time.RFC3339)
	}

	records := make([]domain.AnalyticsEventRecord, 0, len(events))
	for _, raw := range events {
		var envelope eventEnvelope
		_ = json.Unmarshal(raw, &envelope)
		if envelope.EventType == "" {
			envelope.EventType = "unknown"
		}

		record := domain.AnalyticsEventRecord{
			ID:             uuid.New().String(),
			EventType:      envelope.EventType,
			SessionID:      envelope.SessionID,
			Payload:        raw,
			BatchTimestamp: batchTimestamp,
		}
		if envelope.UserID != "" {
			record.UserID = &envelope.UserID
		}
		records = append(records, record)
	}

	return s.analyticsRepo.InsertBatch(ctx, records)
}

func (s *service) UserMetrics(ctx context.Context, userID string) ([]domain.EventTypeCount, error) {
	return s.analyticsRepo.CountByEventType(ctx, userID)
}
