package simparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goldbach8/DespachoComex/internal/simparse"
)

func TestSegment_SplitsOnItemHeaders(t *testing.T) {
	text := "portada\n0001 N Item\ncuerpo uno\n0002 N Item\ncuerpo dos"
	blocks := simparse.Segment(text)
	assert.Len(t, blocks, 2)
	assert.Contains(t, blocks[0].Text, "cuerpo uno")
	assert.NotContains(t, blocks[0].Text, "cuerpo dos")
	assert.Contains(t, blocks[1].Text, "cuerpo dos")
}

func TestSegment_HeaderVariants(t *testing.T) {
	for _, header := range []string{"N Item", "Nº Item", "N° Item"} {
		blocks := simparse.Segment("x\n0001 " + header + "\ny")
		assert.Len(t, blocks, 1, "header %q", header)
	}
}

func TestBlock_ItemNumber(t *testing.T) {
	blocks := simparse.Segment("Nº Item Posición SIM\n0001 N 8413.91.90.790R")
	assert.Len(t, blocks, 1)
	num, line := blocks[0].ItemNumber()
	assert.Equal(t, "0001", num)
	assert.Equal(t, 1, line)
	assert.Equal(t, "8413.91.90.790R", blocks[0].Posicion(line))
}

func TestBlock_PosicionWholeBlockFallback(t *testing.T) {
	// Page-break artifact: the position renders above the number line.
	blocks := simparse.Segment("N Item\n8421.23.00.900T\n0003 N Item mas texto")
	assert.Len(t, blocks, 2)
	num, line := blocks[0].ItemNumber()
	assert.Equal(t, "", num)
	assert.Equal(t, -1, line)
	assert.Equal(t, "8421.23.00.900T", blocks[0].Posicion(line))
}

func TestSubItems_ParsesDetailedRecords(t *testing.T) {
	text := `Nro. ítem: 3 Posición SIM: 8413.91.90.790R Subitem Nro.: 1
Monto FOB: 5.300,25 Cantidad: 2
Sufijos de valor: AA( PERKINS ) = MARCA`

	subs := simparse.SubItems(text)
	assert.Len(t, subs, 1)
	assert.Equal(t, "0003", subs[0].ParentItem)
	assert.Equal(t, "8413.91.90.790R", subs[0].Posicion)
	assert.Equal(t, "0001", subs[0].ItemNumber)
	assert.Equal(t, "5.300,25", subs[0].FobRaw)
	assert.Equal(t, "PERKINS", subs[0].BrandRaw)
}

func TestSubItems_MultipleRecordsDoNotBleed(t *testing.T) {
	text := `Nro. ítem: 1 Posición SIM: 8413.91.90.790R Subitem Nro.: 1
Monto FOB: 100,00
Sufijos de valor: AA(ALPHA) = MARCA
Nro. ítem: 1 Posición SIM: 8413.91.90.790R Subitem Nro.: 2
Monto FOB: 200,00
Sufijos de valor: AA(BETA) = MARCA`

	subs := simparse.SubItems(text)
	assert.Len(t, subs, 2)
	assert.Equal(t, "ALPHA", subs[0].BrandRaw)
	assert.Equal(t, "BETA", subs[1].BrandRaw)
	assert.Equal(t, "100,00", subs[0].FobRaw)
	assert.Equal(t, "200,00", subs[1].FobRaw)
}

func TestSubItems_NoRecords(t *testing.T) {
	assert.Empty(t, simparse.SubItems("texto sin subitems"))
}
