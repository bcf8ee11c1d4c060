package structure

import (
	"strings"

	"github.com/pyhub-apps/pdfstructure/pkg/classify"
)

// ComputeStatistics counts words over paragraphs and list items, and
// paragraphs only for ParagraphCount. Subsections are not visited.
func ComputeStatistics(sections []Section) Statistics {
	var stats Statistics

	for _, section := range sections {
		for _, item := range section.Content {
			switch item.Type {
			case classify.RoleParagraph:
				stats.WordCount += len(strings.Fields(item.Text))
				stats.ParagraphCount++
			case classify.RoleListItem:
				stats.WordCount += len(strings.Fields(item.Text))
			}
		}
	}

	stats.SectionCount = len(sections)
	return stats
}

// UpdateStatistics recomputes d.Statistics from its sections
func (d *Document) UpdateStatistics() {
	d.Statistics = ComputeStatistics(d.Content.Sections)
}
