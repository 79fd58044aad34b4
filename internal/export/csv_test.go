package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/export"
	"github.com/goldbach8/DespachoComex/internal/report"
)

func TestCSVWriter_HeaderAndRows(t *testing.T) {
	rows := []report.GroupedRow{
		{
			Despacho: "24001IC04123456K",
			Posicion: "8413.91.90.790R",
			Currency: "USD",
			Provider: "CATERPILLAR",
			TotalFob: 150.5,
			Class:    domain.ClassBK,
		},
		{
			Despacho: "24001IC04123456K",
			Posicion: "8421.23.00.900T",
			Currency: "USD",
			Provider: "SIN MARCA",
			TotalFob: 30,
			Class:    domain.ClassNoBK,
		},
	}

	var buf bytes.Buffer
	w := export.NewCSVWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRows(rows))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Despacho Nro", records[0][0])
	assert.Equal(t, "Proveedor", records[0][6])

	assert.Equal(t, []string{
		"24001IC04123456K", "8413.91.90.790R", "USD", "150.50", "X", "", "CATERPILLAR",
	}, records[1])
	assert.Equal(t, []string{
		"24001IC04123456K", "8421.23.00.900T", "USD", "30.00", "", "X", "SIN MARCA",
	}, records[2])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "DESP_24_001", export.SanitizeFilename("DESP 24/001"))
	assert.Equal(t, "ref", export.SanitizeFilename("__ref__"))
	assert.Equal(t, "a_b", export.SanitizeFilename("a///b"))

	long := strings.Repeat("x", 150)
	assert.Len(t, export.SanitizeFilename(long), 100)
}

func TestBuildFilename(t *testing.T) {
	name := export.BuildFilename("DESP 24/001", "csv")
	assert.Equal(t, "DESP_24_001_"+time.Now().Format("2006-01-02")+".csv", name)
}

func TestWriteXLSX_ProducesWorkbook(t *testing.T) {
	rows := []report.GroupedRow{
		{Despacho: "24001IC04123456K", Posicion: "8413.91.90.790R", Currency: "USD",
			Provider: "CATERPILLAR", TotalFob: 150.5, Class: domain.ClassBK},
	}
	summary := []report.ProviderRow{
		{Provider: "CATERPILLAR", TotalFob: 150.5, BKFob: 150.5, BKPercent: 100},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, rows, summary))
	// XLSX is a ZIP container; check the magic bytes.
	require.Greater(t, buf.Len(), 4)
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
