package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"explorar/internal/domain"
)

type TourRepository struct {
	mock.Mock
}

func (m *TourRepository) GetAll(ctx context.Context) ([]domain.TourRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourRecord), args.Error(1)
}

func (m *TourRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TourRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourRecord), args.Error(1)
}
