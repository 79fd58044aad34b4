package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/report"
	"github.com/goldbach8/DespachoComex/internal/service"
	"github.com/goldbach8/DespachoComex/mocks"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestReportService_Grouped(t *testing.T) {
	despachoRepo := new(mocks.MockDespachoRepo)
	bkRepo := new(mocks.MockBKCodeRepo)
	svc := service.NewReportService(despachoRepo, service.NewBKService(bkRepo))

	id := uuid.New()
	despachoRepo.On("GetByID", mock.Anything, id).Return(&domain.Despacho{
		ID:             id,
		DespachoNumber: "24001IC04123456K",
		GlobalFob:      fptr(150),
	}, nil)
	despachoRepo.On("ListItems", mock.Anything, id).Return([]domain.DespachoItem{
		{DespachoNumber: "24001IC04123456K", Posicion: "8413.91.90.790R",
			Currency: "USD", FobAmount: fptr(100), Provider: sptr("CAT")},
		{DespachoNumber: "24001IC04123456K", Posicion: "8501.52.90.900P",
			Currency: "USD", FobAmount: fptr(50), Provider: nil},
	}, nil)
	bkRepo.On("LoadAll", mock.Anything).Return([]domain.BKCode{{Code: "84139190"}}, nil)

	rep, err := svc.Grouped(context.Background(), id, map[string]string{"CAT": "CATERPILLAR"})
	require.NoError(t, err)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "CATERPILLAR", rep.Rows[0].Provider)
	assert.Equal(t, domain.ClassBK, rep.Rows[0].Class)
	assert.Equal(t, report.UnbrandedProvider, rep.Rows[1].Provider)
	assert.Equal(t, domain.ClassNoBK, rep.Rows[1].Class)

	require.Len(t, rep.Summary, 2)
	assert.True(t, rep.Reconciliation.Matched)

	despachoRepo.AssertExpectations(t)
	bkRepo.AssertExpectations(t)
}

func TestReportService_Grouped_DespachoNotFound(t *testing.T) {
	despachoRepo := new(mocks.MockDespachoRepo)
	bkRepo := new(mocks.MockBKCodeRepo)
	svc := service.NewReportService(despachoRepo, service.NewBKService(bkRepo))

	id := uuid.New()
	despachoRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrDespachoNotFound)

	_, err := svc.Grouped(context.Background(), id, nil)
	assert.ErrorIs(t, err, domain.ErrDespachoNotFound)
}

func TestSupplierService_Create_Normalizes(t *testing.T) {
	repo := new(mocks.MockSupplierRepo)
	svc := service.NewSupplierService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Supplier")).Return(nil)

	supplier, err := svc.Create(context.Background(), service.CreateSupplierInput{
		Name: "  caterpillar inc. ",
	})
	require.NoError(t, err)
	assert.Equal(t, "CATERPILLAR INC.", supplier.Name)
	repo.AssertExpectations(t)
}

func TestSupplierService_Create_Duplicate(t *testing.T) {
	repo := new(mocks.MockSupplierRepo)
	svc := service.NewSupplierService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Supplier")).
		Return(domain.ErrDuplicateSupplier)

	_, err := svc.Create(context.Background(), service.CreateSupplierInput{Name: "PERKINS"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSupplier)
}
