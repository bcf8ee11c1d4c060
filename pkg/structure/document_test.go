package structure

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdfstructure/pkg/classify"
)

func TestComputeStatistics(t *testing.T) {
	sections := []Section{
		{
			Heading: "S",
			Content: []ContentItem{
				{Type: classify.RoleParagraph, Text: "one two three four five"},
				{Type: classify.RoleListItem, Text: "- six  seven"},
			},
		},
	}

	stats := ComputeStatistics(sections)

	assert.Equal(t, Statistics{WordCount: 8, ParagraphCount: 1, SectionCount: 1}, stats)
}

func TestComputeStatisticsIgnoresSubsections(t *testing.T) {
	sections := []Section{
		{Heading: "A", Subsections: []Section{{Content: []ContentItem{{Type: classify.RoleParagraph, Text: "hidden words"}}}}},
		{Heading: "B"},
	}

	assert.Equal(t, Statistics{SectionCount: 2}, ComputeStatistics(sections))
}

func TestEmptyDocumentJSON(t *testing.T) {
	data, err := json.Marshal(EmptyDocument())
	require.NoError(t, err)

	want := `{
		"metadata": {"filename": "", "total_pages": 0, "title": "", "author": "", "subject": "", "creator": ""},
		"content": {"title": "", "sections": [], "tables": [], "figures": [], "footnotes": [], "references": []},
		"statistics": {"word_count": 0, "paragraph_count": 0, "section_count": 0}
	}`
	assert.JSONEq(t, want, string(data))
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.Metadata = Metadata{Filename: "report.pdf", TotalPages: 2, Title: "Rapport annuel", Author: "Zoë"}
	b := NewBuilder(doc)
	b.Add(block(classify.RoleTitle, "Annual Report", 1))
	b.Add(block(classify.RoleHeading, "Résumé", 1))
	b.Add(block(classify.RoleParagraph, "Growth was strong.", 1))
	b.Add(block(classify.RoleFootnote, "1 Unaudited.", 2))
	doc.Content.Tables = append(doc.Content.Tables, TableRow{Type: TypeTableRow, Content: "a | b | c", Page: 2, Columns: 3})
	doc.Content.Figures = append(doc.Content.Figures, Figure{Type: TypeImage, Page: 2, Index: 0, Description: "Figure 1 on page 2"})
	doc.UpdateStatistics()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *doc, decoded)
}
