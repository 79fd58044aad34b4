package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/service"
	"github.com/goldbach8/DespachoComex/mocks"
)

func TestBKService_UpdateFromText_DistinctCount(t *testing.T) {
	repo := new(mocks.MockBKCodeRepo)
	svc := service.NewBKService(repo)

	// The listing repeats one code; only distinct codes are stored.
	text := "8413.91.90 bomba\n8421.23.00 filtro\n8413.91.90 bomba otra vez"
	repo.On("ReplaceAll", mock.Anything, []string{"84139190", "84212300"}).Return(nil)

	count, err := svc.UpdateFromText(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	repo.AssertExpectations(t)
}

func TestBKService_UpdateFromText_Empty(t *testing.T) {
	repo := new(mocks.MockBKCodeRepo)
	svc := service.NewBKService(repo)

	_, err := svc.UpdateFromText(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
	repo.AssertNotCalled(t, "ReplaceAll")
}

func TestBKService_UpdateFromText_NoCodes(t *testing.T) {
	repo := new(mocks.MockBKCodeRepo)
	svc := service.NewBKService(repo)

	_, err := svc.UpdateFromText(context.Background(), "texto sin codigos")
	assert.ErrorIs(t, err, domain.ErrNoCodesFound)
	repo.AssertNotCalled(t, "ReplaceAll")
}

func TestBKService_Lookup(t *testing.T) {
	repo := new(mocks.MockBKCodeRepo)
	svc := service.NewBKService(repo)

	repo.On("LoadAll", mock.Anything).Return([]domain.BKCode{
		{Code: "84139190"},
		{Code: "84212300"},
	}, nil)

	lookup, err := svc.Lookup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, lookup.Len())
	assert.Equal(t, domain.ClassBK, lookup.Classify("8413.91.90.790R"))
	assert.Equal(t, domain.ClassNoBK, lookup.Classify("8501.52.90.900P"))
}
