package simparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goldbach8/DespachoComex/internal/simparse"
)

func TestParseNumber_ThousandsAndDecimals(t *testing.T) {
	n := simparse.ParseNumber("1.234.567,89")
	assert.NotNil(t, n)
	assert.InDelta(t, 1234567.89, *n, 0.001)
}

func TestParseNumber_NoThousands(t *testing.T) {
	n := simparse.ParseNumber("734,50")
	assert.NotNil(t, n)
	assert.InDelta(t, 734.50, *n, 0.001)
}

func TestParseNumber_Empty(t *testing.T) {
	assert.Nil(t, simparse.ParseNumber(""))
}

func TestParseNumber_Malformed(t *testing.T) {
	assert.Nil(t, simparse.ParseNumber("12,34,56"))
	assert.Nil(t, simparse.ParseNumber("abc"))
}
