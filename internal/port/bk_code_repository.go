package port

import (
	"context"

	"github.com/goldbach8/DespachoComex/internal/domain"
)

// BKCodeRepository abstracts the persisted capital-goods code list.
type BKCodeRepository interface {
	// ReplaceAll swaps the whole code list atomically; the list is always
	// reloaded wholesale from a fresh official listing.
	ReplaceAll(ctx context.Context, codes []string) error
	LoadAll(ctx context.Context) ([]domain.BKCode, error)
}
