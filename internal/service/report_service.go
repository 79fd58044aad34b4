package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/port"
	"github.com/goldbach8/DespachoComex/internal/report"
)

// GroupedReport is the full report payload for one despacho.
type GroupedReport struct {
	Despacho       *domain.Despacho      `json:"despacho"`
	Rows           []report.GroupedRow   `json:"rows"`
	Summary        []report.ProviderRow  `json:"summary"`
	Reconciliation report.Reconciliation `json:"reconciliation"`
}

// ReportService builds grouped tariff-position reports over a despacho's
// items, with the provider mapping applied per request so the stored
// records stay raw.
type ReportService interface {
	Grouped(ctx context.Context, despachoID uuid.UUID, mapping map[string]string) (*GroupedReport, error)
}

type reportService struct {
	despachoRepo port.DespachoRepository
	bkSvc        BKService
}

// NewReportService creates a new ReportService implementation.
func NewReportService(despachoRepo port.DespachoRepository, bkSvc BKService) ReportService {
	return &reportService{despachoRepo: despachoRepo, bkSvc: bkSvc}
}

func (s *reportService) Grouped(ctx context.Context, despachoID uuid.UUID, mapping map[string]string) (*GroupedReport, error) {
	despacho, err := s.despachoRepo.GetByID(ctx, despachoID)
	if err != nil {
		return nil, err
	}
	items, err := s.despachoRepo.ListItems(ctx, despachoID)
	if err != nil {
		return nil, err
	}
	lookup, err := s.bkSvc.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	rows := report.Group(items, mapping, lookup)
	return &GroupedReport{
		Despacho:       despacho,
		Rows:           rows,
		Summary:        report.ProviderSummary(rows),
		Reconciliation: report.Reconcile(rows, despacho.GlobalFob),
	}, nil
}
