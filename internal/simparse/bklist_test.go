package simparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goldbach8/DespachoComex/internal/simparse"
)

func TestExtractBKCodes_StripsDots(t *testing.T) {
	text := "8413.91.90 Partes de bombas\n8421.23.00 Aparatos para filtrar"
	codes := simparse.ExtractBKCodes(text)
	assert.Equal(t, []string{"84139190", "84212300"}, codes)
}

func TestExtractBKCodes_PreservesOrderAndDuplicates(t *testing.T) {
	text := "8501.52.90 motor\n8413.91.90 bomba\n8501.52.90 motor otra vez"
	codes := simparse.ExtractBKCodes(text)
	assert.Equal(t, []string{"85015290", "84139190", "85015290"}, codes)
}

func TestExtractBKCodes_Empty(t *testing.T) {
	assert.Nil(t, simparse.ExtractBKCodes(""))
	assert.Empty(t, simparse.ExtractBKCodes("sin fragmentos ncm"))
}
