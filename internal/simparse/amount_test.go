package simparse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goldbach8/DespachoComex/internal/simparse"
)

func newAmountResolver() *simparse.AmountResolver {
	return simparse.NewAmountResolver(simparse.DefaultAmountConfig())
}

func TestAmountResolver_AnchoredTier(t *testing.T) {
	block := "0001 N Item\n8413.91.90.790R\nFOB Total en Divisa 12.500,00\n"
	got := newAmountResolver().Resolve(block)
	assert.NotNil(t, got)
	assert.InDelta(t, 12500.00, *got, 0.001)
}

func TestAmountResolver_AnchorSpanBound(t *testing.T) {
	// The only monetary token sits beyond the anchored span, and no
	// positional anchor line exists, so nothing resolves.
	block := "FOB Total" + strings.Repeat(" x", 120) + " 9.999,99"
	assert.Nil(t, newAmountResolver().Resolve(block))
}

func TestAmountResolver_PositionalTier(t *testing.T) {
	block := `0002 N Item
UNIDAD DIVISA
CANTIDAD ESTADISTICA 1.000,00
KILOGRAMO PESO 2.500,00
734,50 DOLAR`
	got := newAmountResolver().Resolve(block)
	assert.NotNil(t, got)
	assert.InDelta(t, 734.50, *got, 0.001)
}

func TestAmountResolver_PositionalUnidadAlone(t *testing.T) {
	block := "cabecera\nUNIDAD\n1.200,75 DOLAR"
	got := newAmountResolver().Resolve(block)
	assert.NotNil(t, got)
	assert.InDelta(t, 1200.75, *got, 0.001)
}

func TestAmountResolver_NoAmount(t *testing.T) {
	assert.Nil(t, newAmountResolver().Resolve("bloque sin montos ni anclas"))
}

func TestAmountResolver_StrictBoundaryRejectsLongRun(t *testing.T) {
	// 12.345,6789 is a longer digit run, not a two-decimal amount; the
	// strict boundary must not truncate it into 12.345,67.
	block := "FOB Total 12.345,6789"
	assert.Nil(t, newAmountResolver().Resolve(block))
}
