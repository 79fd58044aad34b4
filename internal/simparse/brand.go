package simparse

import (
	"regexp"
	"strings"
)

// brandStrategy is one entry in the ordered brand extraction cascade. Each
// strategy is an independent matcher; the resolver takes the first
// strategy that yields at least one valid candidate.
type brandStrategy struct {
	name string
	re   *regexp.Regexp
}

// brandStrategies is the cascade in priority order. Within a strategy the
// last match in the span wins: later annotations in a block restate the
// final, corrected value (blocks often repeat country-of-origin text
// before the true brand annotation).
var brandStrategies = []brandStrategy{
	// Canonical form: AA(BRAND) = MARCA.
	{name: "aa_marca", re: regexp.MustCompile(`AA\s*\(\s*([^)]+?)\s*\)\s*=\s*MARCA`)},
	// Loose forms: (BRAND) = MARCA / (BRAND) : MARCA.
	{name: "paren_marca", re: regexp.MustCompile(`\(\s*([^)]+?)\s*\)\s*[=:]\s*MARCA`)},
	// Bare AA(BRAND) with no trailing keyword.
	{name: "aa_bare", re: regexp.MustCompile(`AA\s*\(\s*([^)]+?)\s*\)`)},
	// AA split from its parenthesis by a physical line break.
	{name: "aa_split", re: regexp.MustCompile(`AA[ \t]*\n+[ \t]*\(\s*([^)]+?)\s*\)`)},
}

// spacedLettersPattern matches candidates rendered as single characters
// separated by runs of whitespace ("C A T"), an OCR letter-spacing artifact.
var spacedLettersPattern = regexp.MustCompile(`^(?:\S\s+)+\S$`)

// BrandConfig holds the validity blacklist for brand candidates.
type BrandConfig struct {
	// Blacklist rejects structural false positives: the sub-item grammar
	// puts country names and field labels inside the same parentheses the
	// brand annotation uses.
	Blacklist []string
}

// DefaultBrandConfig returns the blacklist tuned against production
// despachos.
func DefaultBrandConfig() BrandConfig {
	return BrandConfig{
		Blacklist: []string{
			"SIN MARCA", "S/MARCA", "S/M", "CODIGO", "MODELO", "CANTIDAD",
			"UNIDAD", "KILOGRAMO", "TOTAL", "BULTOS", "ESTADO", "MERCADERIA",
			"CHINA", "ESTADOS UNIDOS", "BRASIL", "ALEMANIA", "JAPON", "ITALIA",
			"FRANCIA", "TAIWAN", "COREA", "INDIA", "MEXICO", "ARGENTINA",
			"REINO UNIDO", "ESPAÑA",
		},
	}
}

// BrandResolver resolves the declared brand (provider) string from an
// item's text span.
type BrandResolver struct {
	cfg BrandConfig
}

// NewBrandResolver creates a BrandResolver with the given config.
func NewBrandResolver(cfg BrandConfig) *BrandResolver {
	return &BrandResolver{cfg: cfg}
}

// Resolve runs the strategy cascade over span and returns the first valid
// candidate, or nil when every strategy fails. The span may include a
// lookback over the previous block: brand annotations sometimes land just
// before the current block's header, and last-match-wins keeps the
// current block's own annotations preferred over lookback text.
func (r *BrandResolver) Resolve(span string) *string {
	for _, strat := range brandStrategies {
		matches := strat.re.FindAllStringSubmatch(span, -1)
		for i := len(matches) - 1; i >= 0; i-- {
			if cand, ok := r.normalize(matches[i][1]); ok {
				return &cand
			}
		}
		// A strategy with only invalid candidates falls through to the
		// next one; blacklist rejection never ends the cascade early.
	}
	return nil
}

// normalize trims and, when the candidate is OCR letter-spaced, compacts
// it before running the validity filter.
func (r *BrandResolver) normalize(cand string) (string, bool) {
	cand = strings.TrimSpace(cand)
	if spacedLettersPattern.MatchString(cand) {
		compact := strings.Join(strings.Fields(cand), "")
		if float64(len(cand)) > 1.5*float64(len(compact)) {
			cand = compact
		}
	}
	if !r.isValid(cand) {
		return "", false
	}
	return cand, true
}

func (r *BrandResolver) isValid(cand string) bool {
	if len(cand) < 2 {
		return false
	}
	upper := strings.ToUpper(cand)
	for _, bad := range r.cfg.Blacklist {
		if strings.Contains(upper, bad) || strings.Contains(bad, upper) {
			return false
		}
	}
	return true
}
