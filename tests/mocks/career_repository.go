package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"explorar/internal/domain"
)

type CareerRepository struct {
	mock.Mock
}

func (m *CareerRepository) GetAll(ctx context.Context) ([]domain.CareerRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CareerRecord), args.Error(1)
}

func (m *CareerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
