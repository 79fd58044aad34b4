package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/goldbach8/DespachoComex/internal/domain"
)

// MockBKCodeRepo is a mock implementation of port.BKCodeRepository.
type MockBKCodeRepo struct {
	mock.Mock
}

func (m *MockBKCodeRepo) ReplaceAll(ctx context.Context, codes []string) error {
	args := m.Called(ctx, codes)
	return args.Error(0)
}

func (m *MockBKCodeRepo) LoadAll(ctx context.Context) ([]domain.BKCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BKCode), args.Error(1)
}
