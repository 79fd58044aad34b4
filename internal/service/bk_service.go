package service

import (
	"context"
	"strings"

	"github.com/goldbach8/DespachoComex/internal/bk"
	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/port"
	"github.com/goldbach8/DespachoComex/internal/simparse"
)

// BKService defines the capital-goods code list contract.
type BKService interface {
	// UpdateFromText replaces the persisted code list with codes scanned
	// from a capital-goods listing's text; returns the distinct code count.
	UpdateFromText(ctx context.Context, fullText string) (int, error)
	List(ctx context.Context) ([]domain.BKCode, error)
	// Lookup builds an in-memory classifier over the current list.
	Lookup(ctx context.Context) (*bk.Lookup, error)
}

type bkService struct {
	repo port.BKCodeRepository
}

// NewBKService creates a new BKService implementation.
func NewBKService(repo port.BKCodeRepository) BKService {
	return &bkService{repo: repo}
}

func (s *bkService) UpdateFromText(ctx context.Context, fullText string) (int, error) {
	if strings.TrimSpace(fullText) == "" {
		return 0, domain.ErrEmptyDocument
	}

	codes := simparse.ExtractBKCodes(fullText)
	if len(codes) == 0 {
		return 0, domain.ErrNoCodesFound
	}

	distinct := dedupe(codes)
	if err := s.repo.ReplaceAll(ctx, distinct); err != nil {
		return 0, err
	}
	return len(distinct), nil
}

func (s *bkService) List(ctx context.Context) ([]domain.BKCode, error) {
	return s.repo.LoadAll(ctx)
}

func (s *bkService) Lookup(ctx context.Context) (*bk.Lookup, error) {
	entries, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(entries))
	for i := range entries {
		codes = append(codes, entries[i].Code)
	}
	return bk.NewLookup(codes), nil
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
