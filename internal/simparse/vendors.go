package simparse

import (
	"sort"
	"strings"
	"unicode"
)

// VendorConfig holds the keyword sets driving the seller-block scan. The
// sets are injected rather than package globals so a document-type tuning
// can swap them without touching the extractor.
type VendorConfig struct {
	// WindowLines bounds how many lines below the VENDEDOR label are
	// scanned before giving up.
	WindowLines int
	// StopKeywords mark the start of an unrelated section; scanning halts
	// at the first line containing one.
	StopKeywords []string
	// TrashKeywords mark noise lines (amounts, tax labels, page numbers)
	// that are discarded without stopping the scan.
	TrashKeywords []string
	// CorporateSuffixes drive the whole-page fallback used when the
	// windowed scan finds nothing.
	CorporateSuffixes []string
	// ForbiddenContexts exclude lines naming other declaration roles from
	// the corporate-suffix fallback.
	ForbiddenContexts []string
}

// DefaultVendorConfig returns the keyword sets tuned against production
// despacho cover pages.
func DefaultVendorConfig() VendorConfig {
	return VendorConfig{
		WindowLines: 8,
		StopKeywords: []string{
			"VIA", "VÍA", "DOCUMENTO", "IDENTIFICADOR", "MANIFIESTO", "NOMBRE",
			"BANDERA", "PUERTO", "FECHA", "MARCAS", "EMBALAJE", "TOTAL", "PESO",
			"ADUANA", "SUBREGIMEN", "VALOR", "MERCADERIA", "LIQUIDACION",
			"INFORMACION", "NALADISA", "GATT", "AFIP", "ITEM", "POSICION", "SIM",
			"ESTADO", "ORIGEN", "PROCEDENCIA", "DESTINO", "UNIDAD",
		},
		TrashKeywords: []string{
			"IMPORTE", "TASA", "DERECHOS", "PAGADO", "GARANTIZADO", "A COBRAR",
			"CANAL", "OFICIALIZADO", "SIM", "HOJA", "PAGINA", "CUIT", "N°",
			"P/G/C", "CONCEPTOS", "KILOGRAMO", "CANTIDAD", "ESTADISTICA",
			"COEF.", "BASE IVA", "IMPUESTOS", "DECLARACION", "LIQUIDACION",
			"OM-1993", "2024", "2025",
		},
		CorporateSuffixes: []string{
			" S.A.", " S.R.L.", " S.P.A.", " INC.", " LTD.", " GMBH", " LLC", " CORP.",
		},
		ForbiddenContexts: []string{
			"DESPACHANTE", "IMPORTADOR", "EXPORTADOR", "AGENTE", "TRANSPORTISTA",
		},
	}
}

// VendorExtractor locates the seller block on a despacho's first page and
// extracts the declared vendor names.
type VendorExtractor struct {
	cfg VendorConfig
}

// NewVendorExtractor creates a VendorExtractor with the given config.
func NewVendorExtractor(cfg VendorConfig) *VendorExtractor {
	return &VendorExtractor{cfg: cfg}
}

// Extract returns the vendor names on the first page, deduplicated and
// sorted. The seller section has no fixed field count; it may declare 0,
// 1, or several vendors across one or more lines, and the surrounding
// page reuses similar vocabulary for unrelated sections, which is why the
// scan is bounded by both a window and the stop/trash keyword sets.
func (v *VendorExtractor) Extract(firstPageText string) []string {
	if firstPageText == "" {
		return nil
	}

	var lines []string
	for _, l := range strings.Split(firstPageText, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}

	// "VENDEDOR VARIOS" is the multi-vendor placeholder, not a section
	// start with names under it.
	start := -1
	for i, line := range lines {
		upper := strings.ToUpper(line)
		if strings.Contains(upper, "VENDEDOR") && !strings.Contains(upper, "VARIOS") {
			start = i
			break
		}
	}

	var candidates []string
	if start != -1 {
		candidates = v.scanWindow(lines, start)
	}
	if len(candidates) == 0 {
		candidates = v.corporateFallback(lines)
	}

	return dedupeSorted(candidates)
}

func (v *VendorExtractor) scanWindow(lines []string, start int) []string {
	var out []string
	scanned := 0
	for i := start + 1; i < len(lines); i++ {
		scanned++
		if scanned > v.cfg.WindowLines {
			break
		}
		line := lines[i]
		upper := strings.ToUpper(line)
		if containsAny(upper, v.cfg.StopKeywords) {
			break
		}
		if v.isTrash(line, upper) {
			continue
		}
		out = append(out, splitJointVendors(line)...)
	}
	return out
}

func (v *VendorExtractor) isTrash(line, upper string) bool {
	if len(line) < 3 {
		return true
	}
	if cuitPattern.MatchString(line) {
		return true
	}
	if containsAny(upper, v.cfg.TrashKeywords) {
		return true
	}
	// Short alphanumeric code with no letters: an internal id, not a name.
	if internalCodePattern.MatchString(line) && len(line) < 8 && !hasLetter(line) {
		return true
	}
	return false
}

// corporateFallback scans the whole page for lines carrying a corporate
// suffix when the windowed scan came up empty. Lines naming other
// declaration roles (broker, importer) carry the same suffixes and are
// excluded.
func (v *VendorExtractor) corporateFallback(lines []string) []string {
	var out []string
	for _, line := range lines {
		upper := strings.ToUpper(line)
		if !containsAny(upper, v.cfg.CorporateSuffixes) {
			continue
		}
		if containsAny(upper, v.cfg.ForbiddenContexts) {
			continue
		}
		if containsAny(upper, v.cfg.TrashKeywords) {
			continue
		}
		if cuitPattern.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// splitJointVendors splits a line that declares multiple vendors jointly.
// " - " is only a separator on digit-free lines; with digits present it is
// more likely part of an address or code.
func splitJointVendors(line string) []string {
	var parts []string
	switch {
	case strings.Contains(line, " / "):
		parts = strings.Split(line, " / ")
	case strings.Contains(line, " - ") && !strings.ContainsFunc(line, unicode.IsDigit):
		parts = strings.Split(line, " - ")
	default:
		parts = []string{line}
	}

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); len(p) > 2 {
			out = append(out, p)
		}
	}
	return out
}

func dedupeSorted(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if len(s) < 3 || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}
