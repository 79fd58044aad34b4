package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/goldbach8/DespachoComex/internal/config"
	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/port"
	"github.com/goldbach8/DespachoComex/internal/simparse"
)

// IngestInput is the DTO for submitting a despacho's extracted text.
type IngestInput struct {
	Reference     string `json:"reference" binding:"required"`
	FullText      string `json:"full_text" binding:"required"`
	FirstPageText string `json:"first_page_text"`
}

// CorrectItemInput is the DTO for manual completion of an item's
// unresolved fields.
type CorrectItemInput struct {
	FobAmount *float64 `json:"fob_amount"`
	Provider  *string  `json:"provider"`
}

// DespachoService defines the despacho ingestion and review contract.
type DespachoService interface {
	Ingest(ctx context.Context, userID uuid.UUID, input IngestInput) (*domain.Despacho, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Despacho, error)
	List(ctx context.Context, offset, limit int) ([]domain.Despacho, int, error)
	CorrectItem(ctx context.Context, despachoID, itemID, userID uuid.UUID, input CorrectItemInput) (*domain.DespachoItem, error)
}

type despachoService struct {
	repo      port.DespachoRepository
	cfg       config.ExtractConfig
	extractor *simparse.Extractor
	vendors   *simparse.VendorExtractor
}

// NewDespachoService creates a new DespachoService implementation.
func NewDespachoService(repo port.DespachoRepository, cfg config.ExtractConfig) DespachoService {
	return &despachoService{
		repo:      repo,
		cfg:       cfg,
		extractor: simparse.NewExtractor(),
		vendors:   simparse.NewVendorExtractor(simparse.DefaultVendorConfig()),
	}
}

func (s *despachoService) Ingest(ctx context.Context, userID uuid.UUID, input IngestInput) (*domain.Despacho, error) {
	if strings.TrimSpace(input.FullText) == "" {
		return nil, domain.ErrEmptyDocument
	}
	if s.cfg.MaxTextBytes > 0 && len(input.FullText) > s.cfg.MaxTextBytes {
		return nil, domain.ErrDocumentTooLarge
	}

	res := s.extractor.Extract(input.FullText)
	if len(res.Records) == 0 {
		return nil, domain.ErrNoItemsFound
	}

	despacho := &domain.Despacho{
		Reference:      strings.ToUpper(strings.TrimSpace(input.Reference)),
		DespachoNumber: res.DespachoNumber,
		Currency:       res.Currency,
		GlobalFob:      res.GlobalFob,
		SaleCondition:  res.SaleCondition,
		RawText:        input.FullText,
		CreatedBy:      userID,
		Items:          recordsToItems(res),
	}
	despacho.Vendors = s.vendors.Extract(input.FirstPageText)

	if err := s.repo.Create(ctx, despacho); err != nil {
		return nil, err
	}
	return despacho, nil
}

func (s *despachoService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Despacho, error) {
	despacho, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].RecomputeReview()
	}
	despacho.Items = items
	return despacho, nil
}

func (s *despachoService) List(ctx context.Context, offset, limit int) ([]domain.Despacho, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *despachoService) CorrectItem(ctx context.Context, despachoID, itemID, userID uuid.UUID, input CorrectItemInput) (*domain.DespachoItem, error) {
	item, err := s.repo.GetItem(ctx, despachoID, itemID)
	if err != nil {
		return nil, err
	}

	if input.FobAmount != nil {
		item.FobAmount = input.FobAmount
	}
	if input.Provider != nil {
		// Corrections are normalized the way the mapping step expects.
		provider := strings.ToUpper(strings.TrimSpace(*input.Provider))
		item.Provider = &provider
	}
	item.CorrectedBy = &userID

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	item.RecomputeReview()
	return item, nil
}

func recordsToItems(res *simparse.Result) []domain.DespachoItem {
	items := make([]domain.DespachoItem, 0, len(res.Records))
	for _, rec := range res.Records {
		item := domain.DespachoItem{
			DespachoNumber: rec.Despacho,
			Posicion:       rec.Posicion,
			Currency:       rec.Currency,
			FobAmount:      rec.FobAmount,
			Provider:       rec.Provider,
			IsSubItem:      rec.IsSubItem,
			HasSubItems:    rec.HasSubItems,
			ItemNumber:     rec.ItemNumber,
			ParentItem:     rec.ParentItem,
		}
		item.RecomputeReview()
		items = append(items, item)
	}
	return items
}
