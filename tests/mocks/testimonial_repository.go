package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"explorar/internal/domain"
)

type TestimonialRepository struct {
	mock.Mock
}

func (m *TestimonialRepository) GetAll(ctx context.Context) ([]domain.TestimonialRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TestimonialRecord), args.Error(1)
}
