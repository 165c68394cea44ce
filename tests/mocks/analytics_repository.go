package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"explorar/internal/domain"
)

type AnalyticsRepository struct {
	mock.Mock
}

func (m *AnalyticsRepository) InsertBatch(ctx context.Context, events []domain.AnalyticsEventRecord) (int, error) {
	args := m.Called(ctx, events)
	return args.Int(0), args.Error(1)
}

func (m *AnalyticsRepository) CountByEventType(ctx context.Context, userID string) ([]domain.EventTypeCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventTypeCount), args.Error(1)
}
