// Package bk classifies tariff positions as capital goods (BK) against
// the maintained 8-digit NCM code list.
package bk

import (
	"strings"
	"unicode"

	"github.com/goldbach8/DespachoComex/internal/domain"
)

// NormalizeNCM reduces any string carrying an NCM to its 8-digit form:
// non-digits are stripped and the first 8 digits kept. It returns "" when
// fewer than 8 digits remain, since such a value cannot identify an NCM.
func NormalizeNCM(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
			if b.Len() == 8 {
				break
			}
		}
	}
	if b.Len() < 8 {
		return ""
	}
	return b.String()
}

// Lookup provides in-memory BK membership checks over the normalized code
// set. It is immutable after construction and safe for concurrent use.
type Lookup struct {
	codes map[string]bool
}

// NewLookup builds a Lookup from raw code strings, normalizing each entry
// so dotted and undotted list formats are both accepted.
func NewLookup(codes []string) *Lookup {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		if n := NormalizeNCM(c); n != "" {
			m[n] = true
		}
	}
	return &Lookup{codes: m}
}

// Len returns the number of distinct normalized codes in the list.
func (l *Lookup) Len() int {
	return len(l.codes)
}

// Classify returns ClassBK when the position's 8-digit NCM is in the
// list, ClassNoBK otherwise. Unresolvable positions classify as NO BK
// rather than erroring; the list is advisory for reporting.
func (l *Lookup) Classify(posicion string) domain.BKClass {
	if l == nil || len(l.codes) == 0 {
		return domain.ClassNoBK
	}
	ncm := NormalizeNCM(posicion)
	if ncm == "" || !l.codes[ncm] {
		return domain.ClassNoBK
	}
	return domain.ClassBK
}
