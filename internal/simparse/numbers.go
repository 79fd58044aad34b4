package simparse

import (
	"strconv"
	"strings"
)

// ParseNumber converts a SIM-formatted decimal string ("1.234,56") to a
// float (1234.56). It returns nil for empty or malformed input instead of
// an error: it runs inside bulk extraction loops where one bad token must
// not abort the rest of the document.
func ParseNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	normalized := strings.ReplaceAll(s, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	n, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &n
}
