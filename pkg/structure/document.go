// Package structure holds the structured document model and the builder
// that assembles classified blocks into it.
package structure

import "github.com/pyhub-apps/pdfstructure/pkg/classify"

const (
	// TypeTableRow tags every entry of Content.Tables
	TypeTableRow = "table_row"
	// TypeImage tags every entry of Content.Figures
	TypeImage = "image"

	// DefaultSectionHeading names the section opened for content that
	// appears before any heading
	DefaultSectionHeading = "Content"
)

// Document is the structured record produced for one input file
type Document struct {
	Metadata   Metadata   `json:"metadata"`
	Content    Content    `json:"content"`
	Statistics Statistics `json:"statistics"`
}

// Metadata describes the source file
type Metadata struct {
	Filename   string `json:"filename"`
	TotalPages int    `json:"total_pages"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Subject    string `json:"subject"`
	Creator    string `json:"creator"`
}

// Content is the inferred structure of the document
type Content struct {
	Title      string     `json:"title"`
	Sections   []Section  `json:"sections"`
	Tables     []TableRow `json:"tables"`
	Figures    []Figure   `json:"figures"`
	Footnotes  []Note     `json:"footnotes"`
	References []Note     `json:"references"`
}

// Section is a heading and the content that follows it up to the next
// heading. Sections form a flat list: Level is a tag, and Subsections is
// always empty.
type Section struct {
	Heading     string        `json:"heading"`
	Level       int           `json:"level"`
	Content     []ContentItem `json:"content"`
	Subsections []Section     `json:"subsections"`
	Page        int           `json:"page"`
}

// ContentItem is a paragraph or list item inside a section
type ContentItem struct {
	Type classify.Role `json:"type"`
	Text string        `json:"text"`
	Page int           `json:"page"`
}

// Note is a footnote or reference entry
type Note struct {
	Text string `json:"text"`
	Page int    `json:"page"`
}

// TableRow is one row-like line group found by the table detector
type TableRow struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Page    int    `json:"page"`
	Columns int    `json:"columns"`
}

// Figure is one embedded image
type Figure struct {
	Type        string `json:"type"`
	Page        int    `json:"page"`
	Index       int    `json:"index"`
	Description string `json:"description"`
}

// Statistics summarises the section content
type Statistics struct {
	WordCount      int `json:"word_count"`
	ParagraphCount int `json:"paragraph_count"`
	SectionCount   int `json:"section_count"`
}

// NewDocument returns a document with every list initialised, so that it
// serialises with [] rather than null
func NewDocument() *Document {
	return &Document{
		Content: Content{
			Sections:   []Section{},
			Tables:     []TableRow{},
			Figures:    []Figure{},
			Footnotes:  []Note{},
			References: []Note{},
		},
	}
}

// EmptyDocument returns the canonical record written for a file that could
// not be processed
func EmptyDocument() *Document {
	return NewDocument()
}

func newSection(heading string, level, page int) Section {
	return Section{
		Heading:     heading,
		Level:       level,
		Content:     []ContentItem{},
		Subsections: []Section{},
		Page:        page,
	}
}
