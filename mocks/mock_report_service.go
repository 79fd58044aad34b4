package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/goldbach8/DespachoComex/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Grouped(ctx context.Context, despachoID uuid.UUID, mapping map[string]string) (*service.GroupedReport, error) {
	args := m.Called(ctx, despachoID, mapping)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GroupedReport), args.Error(1)
}
