// Package tables finds row-like groups of text fragments and lists the
// figures on a page. It does not reconstruct cells.
package tables

import (
	"math"
	"slices"
	"strings"

	"github.com/pyhub-apps/pdfstructure/pkg/pdf"
	"github.com/pyhub-apps/pdfstructure/pkg/structure"
)

const (
	// MinRowFragments is the number of fragments a vertical bucket needs
	// before it is considered a row
	MinRowFragments = 3

	minFilledCells = 2
	cellSeparator  = " | "
)

type fragment struct {
	text string
	x0   float64
}

// DetectRows scans every line of the page's raw blocks and reports the
// vertical positions that carry at least MinRowFragments line fragments.
// Fragments are bucketed by their top coordinate rounded half to even;
// buckets are reported in the order they are first seen.
func DetectRows(blocks []pdf.RawBlock, page int) []structure.TableRow {
	var order []int
	buckets := make(map[int][]fragment)

	for _, block := range blocks {
		for _, line := range block.Lines {
			text := lineText(line)
			if text == "" {
				continue
			}

			key := int(math.RoundToEven(line.BBox.Y0))
			if _, seen := buckets[key]; !seen {
				order = append(order, key)
			}
			buckets[key] = append(buckets[key], fragment{text: text, x0: line.BBox.X0})
		}
	}

	rows := make([]structure.TableRow, 0)
	for _, key := range order {
		if row, ok := bucketRow(buckets[key], page); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func bucketRow(cells []fragment, page int) (structure.TableRow, bool) {
	if len(cells) < MinRowFragments {
		return structure.TableRow{}, false
	}

	slices.SortStableFunc(cells, func(a, b fragment) int {
		switch {
		case a.x0 < b.x0:
			return -1
		case a.x0 > b.x0:
			return 1
		}
		return 0
	})

	texts := make([]string, 0, len(cells))
	filled := 0
	for _, cell := range cells {
		if cell.text != "" {
			filled++
		}
		texts = append(texts, cell.text)
	}
	if filled < minFilledCells {
		return structure.TableRow{}, false
	}

	return structure.TableRow{
		Type:    structure.TypeTableRow,
		Content: strings.Join(texts, cellSeparator),
		Page:    page,
		Columns: len(cells),
	}, true
}

// lineText joins the span texts of a line with single spaces
func lineText(line pdf.Line) string {
	parts := make([]string, 0, len(line.Spans))
	for _, span := range line.Spans {
		parts = append(parts, span.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
