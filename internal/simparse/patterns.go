// Package simparse implements the heuristic extraction engine for text
// rendered from SIM despacho PDFs. The source format is not a grammar:
// field boundaries are inferred from keyword anchors, positional
// proximity, and fallback pattern cascades, so every matcher here is
// tolerant of line breaks injected mid-record by PDF text extraction.
package simparse

import "regexp"

var (
	// despachoPattern matches the five fixed-width groups of a despacho
	// number as printed on the cover page. The groups concatenated with no
	// separators form the declaration id.
	despachoPattern = regexp.MustCompile(`(\d{2})\s+(\d{3})\s+([A-Z0-9]{4})\s+(\d{6})\s+([A-Z])`)

	// posicionPattern matches a full SIM tariff position: four dotted
	// numeric groups plus a trailing uppercase letter, e.g. 8413.91.90.790R.
	posicionPattern = regexp.MustCompile(`(\d{4}\.\d{2}\.\d{2}\.\d{3}[A-Z])`)

	// ncmFragmentPattern matches the 4.2.2 dotted NCM fragment used in
	// capital-goods listings (no statistical suffix).
	ncmFragmentPattern = regexp.MustCompile(`(\d{4}\.\d{2}\.\d{2})`)

	// itemHeaderPattern delimits the start of each principal item block.
	// The header renders as "Nº Item", "N° Item" or plain "N Item"
	// depending on how the PDF text was extracted.
	itemHeaderPattern = regexp.MustCompile(`(?i)N.? Item`)

	// itemNumberPattern matches the item's own sequence number at the
	// start of a line, immediately followed by the header's N token.
	itemNumberPattern = regexp.MustCompile(`^(\d{4})\s+N\b`)

	// amountPattern matches locale-formatted monetary amounts:
	// thousands-dot groups with exactly two comma decimals.
	amountPattern = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*,\d{2}`)

	// amountStrictPattern additionally requires a word boundary after the
	// decimals so a longer digit run is never truncated into a fake amount.
	amountStrictPattern = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*,\d{2}\b`)

	// subItemPattern matches one self-contained detailed sub-item record.
	// These render elsewhere in the document than their parent block, so
	// the pattern is applied to the full text. Spans between the field
	// anchors are non-greedy; a greedy span would swallow the next record.
	subItemPattern = regexp.MustCompile(
		`(?i)Nro\.\s*ítem:\s*(\d+)\s+Posición\s+SIM:\s*([0-9.A-Z]+)\s+Subitem\s+Nro\.\s*:\s*(\d+)[\s\S]*?` +
			`Monto\s+FOB:\s*(\d{1,3}(?:\.\d{3})*,\d{2})[\s\S]*?` +
			`Sufijos\s+de\s+valor:[\s\S]*?AA\(\s*([^)]+?)\s*\)\s*=\s*MARCA`)

	// condVentaPattern matches the explicit sale-condition label on the
	// cover page, e.g. "Cond. Venta FOB".
	condVentaPattern = regexp.MustCompile(`(?i)Cond\.?\s*Venta\s*:?\s*([A-Za-z]{3})`)

	// incotermPattern matches any bare Incoterm used by the loose
	// sale-condition fallback.
	incotermPattern = regexp.MustCompile(`(?i)\b(FOB|CIF|EXW|FCA|CFR|CPT|CIP|DAP|DPU|DDP|FAS)\b`)

	// currencyAfterFobPattern anchors the currency code to the global FOB
	// label, which is the least ambiguous occurrence in the document.
	currencyAfterFobPattern = regexp.MustCompile(`FOB\s*Total\s*Divisa[\s\S]*?\b(USD|DOL|EUR|ARS)\b`)

	// currencyLoosePattern matches any bare currency code.
	currencyLoosePattern = regexp.MustCompile(`\b(USD|DOL|EUR|ARS)\b`)

	// globalFobPattern captures the document-wide FOB total following the
	// "FOB Total Divisa" label. The trailing boundary keeps a longer digit
	// run from being truncated into the total.
	globalFobPattern = regexp.MustCompile(`(?i)FOB\s*Total\s*Divisa[\s\S]*?(\d{1,3}(?:\.\d{3})*,\d{2})\b`)

	// cuitPattern matches a tax-id-shaped token (XX-XXXXXXXX-X); lines
	// carrying one are never vendor names.
	cuitPattern = regexp.MustCompile(`\d{2}-\d{8}-\d`)

	// internalCodePattern matches short all-caps alphanumeric codes with
	// no embedded spacing, used to discard internal ids in vendor scans.
	internalCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)
)
