// Package report rolls extracted despacho items up into the grouped
// tariff-position report and its provider summary.
package report

import (
	"math"
	"sort"
	"strings"

	"github.com/goldbach8/DespachoComex/internal/bk"
	"github.com/goldbach8/DespachoComex/internal/domain"
)

// UnbrandedProvider is the bucket for records whose brand was never
// resolved or corrected.
const UnbrandedProvider = "SIN MARCA"

// GroupedRow is one aggregated line of the final report.
type GroupedRow struct {
	Despacho string         `json:"despacho"`
	Posicion string         `json:"posicion"`
	Currency string         `json:"currency"`
	Provider string         `json:"provider"`
	TotalFob float64        `json:"total_fob"`
	Class    domain.BKClass `json:"class"`
}

// ProviderRow is one line of the per-provider summary.
type ProviderRow struct {
	Provider  string  `json:"provider"`
	TotalFob  float64 `json:"total_fob"`
	BKFob     float64 `json:"bk_fob"`
	BKPercent float64 `json:"bk_percent"`
}

// Reconciliation compares the grouped total against the document's
// declared global FOB.
type Reconciliation struct {
	ItemsTotal float64  `json:"items_total"`
	GlobalFob  *float64 `json:"global_fob"`
	Delta      *float64 `json:"delta"`
	Matched    bool     `json:"matched"`
}

// Group aggregates items by (despacho, posición, currency, provider) with
// the provider mapping applied. Only sub-items and principals without
// sub-items contribute: a parent's own amount lives in its children, so
// summing both would double-count the position. Unresolved amounts count
// as zero; unmapped brands fall back to the raw brand, empty ones to
// SIN MARCA. Rows come back sorted by (posición, provider) and totals
// rounded to 2 decimals.
func Group(items []domain.DespachoItem, mapping map[string]string, lookup *bk.Lookup) []GroupedRow {
	type key struct {
		despacho, posicion, currency, provider string
	}
	totals := make(map[key]float64)

	for i := range items {
		item := &items[i]
		if !item.CountsTowardTotal() {
			continue
		}
		k := key{
			despacho: item.DespachoNumber,
			posicion: item.Posicion,
			currency: item.Currency,
			provider: mapProvider(item.Provider, mapping),
		}
		if item.FobAmount != nil {
			totals[k] += *item.FobAmount
		} else {
			totals[k] += 0
		}
	}

	rows := make([]GroupedRow, 0, len(totals))
	for k, total := range totals {
		rows = append(rows, GroupedRow{
			Despacho: k.despacho,
			Posicion: k.posicion,
			Currency: k.currency,
			Provider: k.provider,
			TotalFob: round2(total),
			Class:    lookup.Classify(k.posicion),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Posicion != rows[j].Posicion {
			return rows[i].Posicion < rows[j].Posicion
		}
		return rows[i].Provider < rows[j].Provider
	})
	return rows
}

// ProviderSummary aggregates grouped rows per provider with the share of
// FOB classified as capital goods, sorted by FOB total descending.
func ProviderSummary(rows []GroupedRow) []ProviderRow {
	totals := make(map[string]*ProviderRow)
	var order []string
	for i := range rows {
		r := totals[rows[i].Provider]
		if r == nil {
			r = &ProviderRow{Provider: rows[i].Provider}
			totals[rows[i].Provider] = r
			order = append(order, rows[i].Provider)
		}
		r.TotalFob += rows[i].TotalFob
		if rows[i].Class == domain.ClassBK {
			r.BKFob += rows[i].TotalFob
		}
	}

	out := make([]ProviderRow, 0, len(order))
	for _, p := range order {
		r := totals[p]
		r.TotalFob = round2(r.TotalFob)
		r.BKFob = round2(r.BKFob)
		if r.TotalFob != 0 {
			r.BKPercent = math.Round(r.BKFob/r.TotalFob*1000) / 10
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalFob != out[j].TotalFob {
			return out[i].TotalFob > out[j].TotalFob
		}
		return out[i].Provider < out[j].Provider
	})
	return out
}

// Reconcile sums the grouped rows and compares against the declared
// global FOB within a one-cent tolerance.
func Reconcile(rows []GroupedRow, globalFob *float64) Reconciliation {
	var total float64
	for i := range rows {
		total += rows[i].TotalFob
	}
	rec := Reconciliation{ItemsTotal: round2(total), GlobalFob: globalFob}
	if globalFob != nil {
		delta := round2(rec.ItemsTotal - *globalFob)
		rec.Delta = &delta
		rec.Matched = math.Abs(delta) < 0.01
	}
	return rec
}

func mapProvider(raw *string, mapping map[string]string) string {
	brand := ""
	if raw != nil {
		brand = strings.TrimSpace(*raw)
	}
	if brand == "" {
		return UnbrandedProvider
	}
	if mapped, ok := mapping[brand]; ok && strings.TrimSpace(mapped) != "" {
		return mapped
	}
	return brand
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
