package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/goldbach8/DespachoComex/internal/report"
)

const (
	detailSheet  = "Detalle"
	summarySheet = "Resumen_Proveedores"
)

var summaryColumns = []string{"Proveedor", "FOB Total", "% BK"}

// WriteXLSX writes the grouped report workbook to w: a Detalle sheet with
// the per-position rows and a Resumen_Proveedores sheet with the
// per-provider totals.
func WriteXLSX(w io.Writer, rows []report.GroupedRow, summary []report.ProviderRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), detailSheet); err != nil {
		return fmt.Errorf("renaming detail sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	if err := writeDetailSheet(f, rows); err != nil {
		return err
	}
	if err := writeSummarySheet(f, summary); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeDetailSheet(f *excelize.File, rows []report.GroupedRow) error {
	header := make([]interface{}, len(detailColumns))
	for i, c := range detailColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(detailSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing detail header: %w", err)
	}

	for i := range rows {
		r := &rows[i]
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			r.Despacho, r.Posicion, r.Currency, r.TotalFob,
			classMark(r.Class, "BK"), classMark(r.Class, "NO BK"), r.Provider,
		}
		if err := f.SetSheetRow(detailSheet, cell, &row); err != nil {
			return fmt.Errorf("writing detail row %d: %w", i, err)
		}
	}

	if err := f.SetColWidth(detailSheet, "A", "G", 17); err != nil {
		return fmt.Errorf("sizing detail columns: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary []report.ProviderRow) error {
	header := make([]interface{}, len(summaryColumns))
	for i, c := range summaryColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}

	for i := range summary {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{summary[i].Provider, summary[i].TotalFob, summary[i].BKPercent}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i, err)
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "C", 17); err != nil {
		return fmt.Errorf("sizing summary columns: %w", err)
	}
	return nil
}
