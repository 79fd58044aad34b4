package simparse

import "strings"

// ExtractBKCodes scans a capital-goods listing's text for NCM fragments
// (4.2.2 dotted form) and returns them as 8-digit codes, dots stripped,
// in document order with duplicates preserved. The source is an official
// listing, so no validity filtering beyond the pattern itself is applied.
func ExtractBKCodes(fullText string) []string {
	if fullText == "" {
		return nil
	}
	matches := ncmFragmentPattern.FindAllString(fullText, -1)
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		codes = append(codes, strings.ReplaceAll(m, ".", ""))
	}
	return codes
}
