package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/goldbach8/DespachoComex/internal/domain"
)

// MockDespachoRepo is a mock implementation of port.DespachoRepository.
type MockDespachoRepo struct {
	mock.Mock
}

func (m *MockDespachoRepo) Create(ctx context.Context, despacho *domain.Despacho) error {
	args := m.Called(ctx, despacho)
	return args.Error(0)
}

func (m *MockDespachoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Despacho, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Despacho), args.Error(1)
}

func (m *MockDespachoRepo) List(ctx context.Context, offset, limit int) ([]domain.Despacho, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Despacho), args.Int(1), args.Error(2)
}

func (m *MockDespachoRepo) ListItems(ctx context.Context, despachoID uuid.UUID) ([]domain.DespachoItem, error) {
	args := m.Called(ctx, despachoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DespachoItem), args.Error(1)
}

func (m *MockDespachoRepo) GetItem(ctx context.Context, despachoID, itemID uuid.UUID) (*domain.DespachoItem, error) {
	args := m.Called(ctx, despachoID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DespachoItem), args.Error(1)
}

func (m *MockDespachoRepo) UpdateItem(ctx context.Context, item *domain.DespachoItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
