package simparse

import (
	"regexp"
	"strings"
)

// fobAnchorPattern locates the per-item "FOB Total" label, optionally
// suffixed with the currency wording.
var fobAnchorPattern = regexp.MustCompile(`(?i)FOB\s*Total(?:\s*(?:en\s*)?Divisa)?`)

// AmountConfig holds the tuning knobs of the FOB amount resolver.
type AmountConfig struct {
	// AnchorSpan bounds how many bytes after the "FOB Total" label a
	// monetary token is accepted; beyond it the token more likely belongs
	// to the next record.
	AnchorSpan int
	// SkipVocabulary marks lines in the positional tier whose numbers are
	// quantities, weights, or statistical figures rather than prices.
	SkipVocabulary []string
}

// DefaultAmountConfig returns the resolver tuning used for production
// despachos.
func DefaultAmountConfig() AmountConfig {
	return AmountConfig{
		AnchorSpan: 160,
		SkipVocabulary: []string{
			"UNIDAD", "CANTIDAD", "KILOGRAMO", "PESO", "ESTADISTICA",
			"LITRO", "METRO",
		},
	}
}

// AmountResolver resolves an item's declared FOB amount from its text
// block using a two-tier strategy: an explicit "FOB Total" anchor first,
// then a positional fallback keyed off the UNIDAD/DIVISA header line.
type AmountResolver struct {
	cfg AmountConfig
}

// NewAmountResolver creates an AmountResolver with the given config.
func NewAmountResolver(cfg AmountConfig) *AmountResolver {
	return &AmountResolver{cfg: cfg}
}

// Resolve returns the FOB amount found in block, or nil when neither tier
// yields one. A nil result is expected and surfaced for manual review,
// never an error.
func (r *AmountResolver) Resolve(block string) *float64 {
	if n := r.resolveAnchored(block); n != nil {
		return n
	}
	return r.resolvePositional(block)
}

// resolveAnchored takes the first monetary token within a bounded span
// after a "FOB Total" label.
func (r *AmountResolver) resolveAnchored(block string) *float64 {
	loc := fobAnchorPattern.FindStringIndex(block)
	if loc == nil {
		return nil
	}
	end := loc[1] + r.cfg.AnchorSpan
	if end > len(block) {
		end = len(block)
	}
	token := amountStrictPattern.FindString(block[loc[1]:end])
	if token == "" {
		return nil
	}
	return ParseNumber(token)
}

// resolvePositional falls back to the column layout: locate the line
// carrying both UNIDAD and DIVISA (or UNIDAD alone), then take the first
// monetary token on a following line that is not quantity/weight
// vocabulary. Skipping by label rather than by token index is what keeps
// a gross-weight figure from being mistaken for the price.
func (r *AmountResolver) resolvePositional(block string) *float64 {
	lines := strings.Split(block, "\n")

	anchor := -1
	for i, line := range lines {
		upper := strings.ToUpper(line)
		if strings.Contains(upper, "UNIDAD") && strings.Contains(upper, "DIVISA") {
			anchor = i
			break
		}
	}
	if anchor == -1 {
		for i, line := range lines {
			if strings.Contains(strings.ToUpper(line), "UNIDAD") {
				anchor = i
				break
			}
		}
	}
	if anchor == -1 {
		return nil
	}

	for i := anchor; i < len(lines); i++ {
		if containsAny(strings.ToUpper(lines[i]), r.cfg.SkipVocabulary) {
			continue
		}
		if token := amountStrictPattern.FindString(lines[i]); token != "" {
			return ParseNumber(token)
		}
	}
	return nil
}
