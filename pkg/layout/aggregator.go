// Package layout merges the renderer's span-level text into block-level
// records carrying the formatting cues the classifier needs.
package layout

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pyhub-apps/pdfstructure/pkg/pdf"
)

// DefaultFontSize is reported for a block with no spans
const DefaultFontSize = 12.0

// Block is one layout block reduced to its text and dominant formatting
type Block struct {
	Text     string
	FontSize float64 // mean across spans
	FontName string  // most frequent span font
	BBox     pdf.BoundingBox
	Page     int // 1-based
}

// Aggregate converts the raw blocks of one page, in order. Blocks whose
// text is empty after trimming are dropped.
func Aggregate(raw []pdf.RawBlock, page int) []Block {
	blocks := make([]Block, 0, len(raw))
	for _, rb := range raw {
		if block, ok := AggregateBlock(rb, page); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// AggregateBlock concatenates the spans of each line with no separator,
// joins lines with a single space, and averages font sizes over all spans.
func AggregateBlock(raw pdf.RawBlock, page int) (Block, bool) {
	var text strings.Builder
	var sizeSum float64
	var fonts []string

	for _, line := range raw.Lines {
		for _, span := range line.Spans {
			text.WriteString(norm.NFC.String(span.Text))
			sizeSum += span.FontSize
			fonts = append(fonts, span.FontName)
		}
		text.WriteString(" ")
	}

	trimmed := strings.TrimSpace(text.String())
	if trimmed == "" {
		return Block{}, false
	}

	fontSize := DefaultFontSize
	if len(fonts) > 0 {
		fontSize = sizeSum / float64(len(fonts))
	}

	return Block{
		Text:     trimmed,
		FontSize: fontSize,
		FontName: majorityFont(fonts),
		BBox:     raw.BBox,
		Page:     page,
	}, true
}

// majorityFont returns the most frequent name; ties go to the name seen first
func majorityFont(fonts []string) string {
	counts := make(map[string]int, len(fonts))
	var order []string
	for _, f := range fonts {
		if counts[f] == 0 {
			order = append(order, f)
		}
		counts[f]++
	}

	best := ""
	bestCount := 0
	for _, f := range order {
		if counts[f] > bestCount {
			best = f
			bestCount = counts[f]
		}
	}
	return best
}
