package simparse

import (
	"log"
	"strings"
)

// coverWindow bounds, in bytes, the leading span of the document searched
// for the sale condition. The declaration appears on the cover page;
// scanning further picks up Incoterm lookalikes from item bodies.
const coverWindow = 6000

// Record is one extracted line item, principal or sub-item. Nil FobAmount
// or Provider means the field could not be resolved and is left for
// manual completion.
type Record struct {
	Despacho    string
	Posicion    string
	Currency    string
	FobAmount   *float64
	Provider    *string
	IsSubItem   bool
	HasSubItems bool
	ItemNumber  string
	ParentItem  *string
}

// Result is the complete output of one extraction run. It holds no
// references back into the source text.
type Result struct {
	DespachoNumber string
	Currency       string
	GlobalFob      *float64
	SaleCondition  *string
	Records        []Record
}

// Extractor orchestrates the full despacho extraction pipeline. It is
// stateless between calls; concurrent Extract calls on different
// documents need no coordination.
type Extractor struct {
	brands  *BrandResolver
	amounts *AmountResolver
}

// NewExtractor creates an Extractor with default resolver configs.
func NewExtractor() *Extractor {
	return NewExtractorWith(DefaultBrandConfig(), DefaultAmountConfig())
}

// NewExtractorWith creates an Extractor with explicit resolver configs.
func NewExtractorWith(brandCfg BrandConfig, amountCfg AmountConfig) *Extractor {
	return &Extractor{
		brands:  NewBrandResolver(brandCfg),
		amounts: NewAmountResolver(amountCfg),
	}
}

// Extract runs the pipeline over a document's full text. Empty input
// yields an empty result with nil scalars, not an error; malformed
// content never raises, it resolves to nil fields or dropped blocks.
func (e *Extractor) Extract(fullText string) *Result {
	res := &Result{Currency: "USD"}
	if fullText == "" {
		return res
	}
	fullText = strings.ReplaceAll(fullText, "\r\n", "\n")

	if m := despachoPattern.FindStringSubmatch(fullText); m != nil {
		res.DespachoNumber = strings.Join(m[1:], "")
	}
	if c := extractCurrency(fullText); c != "" {
		res.Currency = c
	}
	res.GlobalFob = extractGlobalFob(fullText)
	res.SaleCondition = extractSaleCondition(fullText)

	blocks := Segment(fullText)
	for i, block := range blocks {
		num, numLine := block.ItemNumber()
		posicion := block.Posicion(numLine)
		if posicion == "" {
			// Header lookalike with no tariff position: structural noise,
			// dropped rather than emitted half-empty.
			log.Printf("simparse: dropping block %d (no tariff position found)", i)
			continue
		}

		// Brand annotations sometimes land just before the block header,
		// so the brand span looks back over the previous block too.
		span := block.Text
		if i > 0 {
			span = blocks[i-1].Text + span
		}

		res.Records = append(res.Records, Record{
			Despacho:   res.DespachoNumber,
			Posicion:   posicion,
			Currency:   res.Currency,
			FobAmount:  e.amounts.Resolve(block.Text),
			Provider:   e.brands.Resolve(span),
			ItemNumber: num,
		})
	}

	for _, sub := range SubItems(fullText) {
		parent := sub.ParentItem
		res.Records = append(res.Records, Record{
			Despacho:   res.DespachoNumber,
			Posicion:   sub.Posicion,
			Currency:   res.Currency,
			FobAmount:  ParseNumber(sub.FobRaw),
			Provider:   e.validBrand(sub.BrandRaw),
			IsSubItem:  true,
			ItemNumber: sub.ItemNumber,
			ParentItem: &parent,
		})
	}

	markParents(res.Records)
	return res
}

// validBrand runs a sub-item's captured brand through the same validity
// filter as the principal-item cascade.
func (e *Extractor) validBrand(raw string) *string {
	if raw == "" {
		return nil
	}
	cand, ok := e.brands.normalize(raw)
	if !ok {
		return nil
	}
	return &cand
}

// markParents sets HasSubItems on principals owned by at least one
// sub-item. This has to be a post-pass over the complete set: a principal
// block's own text never declares whether sub-items exist, only the
// separate sub-item records prove it. Orphaned sub-items (parent number
// matching no principal) are accepted as-is.
func markParents(records []Record) {
	owned := make(map[string]bool)
	for i := range records {
		if records[i].IsSubItem && records[i].ParentItem != nil {
			owned[*records[i].ParentItem] = true
		}
	}
	for i := range records {
		if !records[i].IsSubItem && owned[records[i].ItemNumber] {
			records[i].HasSubItems = true
		}
	}
}

func extractCurrency(fullText string) string {
	if m := currencyAfterFobPattern.FindStringSubmatch(fullText); m != nil {
		return m[1]
	}
	if m := currencyLoosePattern.FindStringSubmatch(fullText); m != nil {
		return m[1]
	}
	return ""
}

func extractGlobalFob(fullText string) *float64 {
	m := globalFobPattern.FindStringSubmatch(fullText)
	if m == nil {
		return nil
	}
	return ParseNumber(m[1])
}

// extractSaleCondition searches the cover window for the explicit
// "Cond. Venta" label, then falls back to bare Incoterm words. Bare
// matches immediately followed by "Total" are label fragments ("FOB
// Total"), not the declared term, and when several bare matches survive
// the last one wins: the term is typically restated nearest the actual
// declaration, after earlier references.
func extractSaleCondition(fullText string) *string {
	window := fullText
	if len(window) > coverWindow {
		window = window[:coverWindow]
	}

	if m := condVentaPattern.FindStringSubmatch(window); m != nil {
		cond := strings.ToUpper(m[1])
		return &cond
	}

	matches := incotermPattern.FindAllStringSubmatchIndex(window, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][2], matches[i][3]
		rest := strings.TrimLeft(window[end:], " \t")
		if len(rest) >= 5 && strings.EqualFold(rest[:5], "Total") {
			continue
		}
		cond := strings.ToUpper(window[start:end])
		return &cond
	}
	return nil
}
