package port

import (
	"context"

	"github.com/goldbach8/DespachoComex/internal/domain"
)

// SupplierRepository abstracts the known-supplier name list.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	List(ctx context.Context) ([]domain.Supplier, error)
}
