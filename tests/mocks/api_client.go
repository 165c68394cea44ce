package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"explorar/internal/app/api"
)

type APIClient struct {
	mock.Mock
}

func (m *APIClient) Get(ctx context.Context, path string, opts *api.Options) (*api.Response, error) {
	args := m.Called(ctx, path, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Response), args.Error(1)
}

func (m *APIClient) Post(ctx context.Context, path string, body any, opts *api.Options) (*api.Response, error) {
	args := m.Called(ctx, path, body, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Response), args.Error(1)
}
