package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/goldbach8/DespachoComex/internal/domain"
)

// DespachoRepository abstracts persistence of despachos and their items.
type DespachoRepository interface {
	// Create persists the despacho and its items in one transaction.
	Create(ctx context.Context, despacho *domain.Despacho) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Despacho, error)
	List(ctx context.Context, offset, limit int) ([]domain.Despacho, int, error)
	ListItems(ctx context.Context, despachoID uuid.UUID) ([]domain.DespachoItem, error)
	GetItem(ctx context.Context, despachoID, itemID uuid.UUID) (*domain.DespachoItem, error)
	UpdateItem(ctx context.Context, item *domain.DespachoItem) error
}
