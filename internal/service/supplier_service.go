package service

import (
	"context"
	"strings"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/port"
)

// CreateSupplierInput is the DTO for registering a canonical provider name.
type CreateSupplierInput struct {
	Name string `json:"name" binding:"required"`
}

// SupplierService defines the known-supplier list contract.
type SupplierService interface {
	Create(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
}

type supplierService struct {
	repo port.SupplierRepository
}

// NewSupplierService creates a new SupplierService implementation.
func NewSupplierService(repo port.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error) {
	supplier := &domain.Supplier{
		Name: strings.ToUpper(strings.TrimSpace(input.Name)),
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.List(ctx)
}
