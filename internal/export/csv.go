// Package export serializes grouped despacho reports as CSV and XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goldbach8/DespachoComex/internal/domain"
	"github.com/goldbach8/DespachoComex/internal/report"
)

// BOM is the UTF-8 byte order mark, written ahead of CSV output so Excel
// on Windows decodes accented provider names correctly.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// detailColumns is the header row of the grouped detail export.
var detailColumns = []string{
	"Despacho Nro",
	"Posición",
	"Moneda",
	"Monto Total de la Posición Arancelaria",
	"BK",
	"NO BK",
	"Proveedor",
}

// CSVWriter wraps csv.Writer for exporting grouped report rows.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the detail header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(detailColumns)
}

// WriteRows converts grouped rows to CSV records and writes them.
func (w *CSVWriter) WriteRows(rows []report.GroupedRow) error {
	for i := range rows {
		if err := w.csv.Write(rowToRecord(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func rowToRecord(r *report.GroupedRow) []string {
	rec := make([]string, len(detailColumns))
	rec[0] = r.Despacho
	rec[1] = r.Posicion
	rec[2] = r.Currency
	rec[3] = formatMoney(r.TotalFob)
	rec[4] = classMark(r.Class, domain.ClassBK)
	rec[5] = classMark(r.Class, domain.ClassNoBK)
	rec[6] = r.Provider
	return rec
}

func classMark(actual, want domain.BKClass) string {
	if actual == want {
		return "X"
	}
	return ""
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a despacho reference for use in
// Content-Disposition: non-alphanumeric chars (except - _) become _,
// consecutive underscores collapse, and the result is capped at 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized attachment filename:
// {sanitized_reference}_{YYYY-MM-DD}.{ext}.
func BuildFilename(reference, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(reference), time.Now().Format("2006-01-02"), ext)
}
