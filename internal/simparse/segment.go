package simparse

import (
	"strings"
)

// Block is a principal item's raw text span within the document.
type Block struct {
	Start int
	End   int
	Text  string
}

// SubItemRecord is one detailed sub-item match, fields still raw.
type SubItemRecord struct {
	ParentItem string // zero-padded to 4 digits
	Posicion   string
	ItemNumber string // zero-padded to 4 digits
	FobRaw     string
	BrandRaw   string
}

// Segment splits the full document text into principal item blocks. Every
// item-header occurrence starts a block; a block spans to the next header
// or the end of the document.
func Segment(fullText string) []Block {
	starts := itemHeaderPattern.FindAllStringIndex(fullText, -1)
	blocks := make([]Block, 0, len(starts))
	for i, loc := range starts {
		end := len(fullText)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, Block{Start: loc[0], End: end, Text: fullText[loc[0]:end]})
	}
	return blocks
}

// ItemNumber finds the block's own sequence number: a four-digit number at
// the start of a line, immediately followed by the header's N token. It
// also returns the index of that line so the position search can start
// from it.
func (b *Block) ItemNumber() (num string, lineIdx int) {
	for i, line := range b.lines() {
		if m := itemNumberPattern.FindStringSubmatch(line); m != nil {
			return m[1], i
		}
	}
	return "", -1
}

// Posicion locates the block's tariff position, searching forward from
// fromLine first and falling back to the whole block. Page-break
// artifacts can push the position above the number line, which is what
// the fallback covers. An empty return means the block is structural
// noise (a header lookalike) and must be dropped.
func (b *Block) Posicion(fromLine int) string {
	lines := b.lines()
	if fromLine >= 0 {
		for i := fromLine; i < len(lines); i++ {
			if m := posicionPattern.FindString(lines[i]); m != "" {
				return m
			}
		}
	}
	for _, line := range lines {
		if m := posicionPattern.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

func (b *Block) lines() []string {
	raw := strings.Split(b.Text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SubItems scans the entire document for detailed sub-item records. They
// are self-contained multi-field units formatted elsewhere in the
// document, so the scan is not confined to any principal block.
func SubItems(fullText string) []SubItemRecord {
	matches := subItemPattern.FindAllStringSubmatch(fullText, -1)
	records := make([]SubItemRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, SubItemRecord{
			ParentItem: zeroPad4(m[1]),
			Posicion:   strings.TrimSpace(m[2]),
			ItemNumber: zeroPad4(m[3]),
			FobRaw:     m[4],
			BrandRaw:   strings.TrimSpace(m[5]),
		})
	}
	return records
}

func zeroPad4(s string) string {
	if len(s) >= 4 {
		return s
	}
	return strings.Repeat("0", 4-len(s)) + s
}
