package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/goldbach8/DespachoComex/internal/domain"
)

// UserRepository abstracts user persistence.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
