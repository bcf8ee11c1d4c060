package pdf

import (
	"math"
	"sort"
	"strings"
)

// glyph is one positioned text item as reported by a backend, already
// converted to top-left coordinates
type glyph struct {
	text string
	font string
	size float64
	bbox BoundingBox

	spaceBefore bool // a whitespace glyph preceded this one in content order
}

// fallbackGlyphWidth is the advance, in ems, assumed for glyphs whose font
// has no width table (standard 14 fonts embedded without /Widths)
const fallbackGlyphWidth = 0.5

// newGlyph converts a backend text item (baseline origin, PDF coordinates)
// into a glyph with a top-left bounding box
func newGlyph(s, font string, size, x, baseline, width, pageHeight float64) glyph {
	// Baseline is typically at 80% of font height
	top := baseline + size*0.8
	y0 := pageHeight - top
	if width <= 0 {
		width = size * fallbackGlyphWidth
	}
	return glyph{
		text: s,
		font: font,
		size: size,
		bbox: BoundingBox{X0: x, Y0: y0, X1: x + width, Y1: y0 + size},
	}
}

// buildBlocks groups glyphs into rows, rows into line fragments and spans,
// and vertically adjacent lines into blocks
func buildBlocks(glyphs []glyph, config layoutConfig) []RawBlock {
	rows := groupIntoRows(glyphs, config.YTolerance)

	var lines []Line
	for _, row := range rows {
		lines = append(lines, splitRow(row, config)...)
	}

	return groupIntoBlocks(lines, config)
}

// groupIntoRows sorts glyphs top to bottom and clusters those whose top
// edge lies within tolerance of the row's first glyph. Each row is sorted
// left to right. Whitespace glyphs are dropped but remembered on the
// glyph that follows them.
func groupIntoRows(glyphs []glyph, tolerance float64) [][]glyph {
	visible := make([]glyph, 0, len(glyphs))
	pendingSpace := false
	for _, g := range glyphs {
		if strings.TrimSpace(g.text) == "" {
			pendingSpace = true
			continue
		}
		g.spaceBefore = pendingSpace
		pendingSpace = false
		visible = append(visible, g)
	}
	if len(visible) == 0 {
		return nil
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].bbox.Y0 < visible[j].bbox.Y0
	})

	var rows [][]glyph
	current := []glyph{visible[0]}
	currentY := visible[0].bbox.Y0

	for _, g := range visible[1:] {
		if math.Abs(g.bbox.Y0-currentY) > tolerance {
			rows = append(rows, current)
			current = []glyph{g}
			currentY = g.bbox.Y0
		} else {
			current = append(current, g)
		}
	}
	rows = append(rows, current)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].bbox.X0 < row[j].bbox.X0
		})
	}

	return rows
}

// splitRow turns one row of glyphs into line fragments. A gap wider than
// the column gap starts a new line; a gap wider than the word gap, or a
// dropped whitespace glyph, inserts a space; a change of font or size
// starts a new span.
func splitRow(row []glyph, config layoutConfig) []Line {
	var lines []Line
	var spans []Span
	var span *Span

	flushLine := func() {
		if span != nil {
			spans = append(spans, *span)
			span = nil
		}
		if len(spans) == 0 {
			return
		}
		bbox := spans[0].BBox
		for _, s := range spans[1:] {
			bbox = bbox.Union(s.BBox)
		}
		lines = append(lines, Line{Spans: spans, BBox: bbox})
		spans = nil
	}

	for i, g := range row {
		space := false
		if i > 0 {
			prev := row[i-1]
			gap := g.bbox.X0 - prev.bbox.X1
			if gap > config.ColumnGap {
				flushLine()
			} else if gap > g.size*config.WordGapRatio || g.spaceBefore {
				space = true
			}
		}

		if span != nil && (span.FontName != g.font || span.FontSize != g.size) {
			spans = append(spans, *span)
			span = nil
		}

		if span == nil {
			text := g.text
			if space {
				text = " " + text
			}
			span = &Span{Text: text, FontSize: g.size, FontName: g.font, BBox: g.bbox}
			continue
		}

		if space {
			span.Text += " "
		}
		span.Text += g.text
		span.BBox = span.BBox.Union(g.bbox)
	}
	flushLine()

	return lines
}

// groupIntoBlocks attaches each line to the most recent block whose last
// line sits directly above it and overlaps it horizontally; otherwise the
// line opens a new block. Blocks keep creation order.
func groupIntoBlocks(lines []Line, config layoutConfig) []RawBlock {
	var blocks []RawBlock

	for _, line := range lines {
		target := -1
		for i := len(blocks) - 1; i >= 0; i-- {
			last := blocks[i].Lines[len(blocks[i].Lines)-1]
			if continuesBlock(last, line, config) {
				target = i
				break
			}
		}

		if target < 0 {
			blocks = append(blocks, RawBlock{Lines: []Line{line}, BBox: line.BBox})
			continue
		}

		blocks[target].Lines = append(blocks[target].Lines, line)
		blocks[target].BBox = blocks[target].BBox.Union(line.BBox)
	}

	return blocks
}

func continuesBlock(last, next Line, config layoutConfig) bool {
	if next.BBox.Y0-last.BBox.Y0 <= config.YTolerance {
		return false // same row
	}
	if !last.BBox.OverlapsX(next.BBox) {
		return false
	}
	gap := next.BBox.Y0 - last.BBox.Y1
	height := math.Max(last.BBox.Height(), next.BBox.Height())
	return gap <= height*config.BlockGapRatio
}
