package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/service"
)

// MockDespachoService is a mock implementation of service.DespachoService.
type MockDespachoService struct {
	mock.Mock
}

func (m *MockDespachoService) Ingest(ctx context.Context, userID uuid.UUID, input service.IngestInput) (*domain.Despacho, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Despacho), args.Error(1)
}

func (m *MockDespachoService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Despacho, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Despacho), args.Error(1)
}

func (m *MockDespachoService) List(ctx context.Context, offset, limit int) ([]domain.Despacho, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Despacho), args.Int(1), args.Error(2)
}

func (m *MockDespachoService) CorrectItem(ctx context.Context, despachoID, itemID, userID uuid.UUID, input service.CorrectItemInput) (*domain.DespachoItem, error) {
	args := m.Called(ctx, despachoID, itemID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DespachoItem), args.Error(1)
}
