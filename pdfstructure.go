// Package pdfstructure infers the logical structure of PDF documents from
// their layout: title, sections, paragraphs and list items, footnotes,
// references, table-like rows and figures.
package pdfstructure

import (
	"context"

	"github.com/pyhub-apps/pdfstructure/pkg/classify"
	"github.com/pyhub-apps/pdfstructure/pkg/pdf"
	"github.com/pyhub-apps/pdfstructure/pkg/processor"
	"github.com/pyhub-apps/pdfstructure/pkg/structure"
)

// Re-export types for the public API
type (
	Document         = structure.Document
	Metadata         = structure.Metadata
	Content          = structure.Content
	Section          = structure.Section
	ContentItem      = structure.ContentItem
	Note             = structure.Note
	TableRow         = structure.TableRow
	Figure           = structure.Figure
	Statistics       = structure.Statistics
	Role             = classify.Role
	ClassifierConfig = classify.Config
	LayoutOption     = pdf.LayoutOption
	Option           = processor.Option
)

// Re-export option functions
var (
	WithClassifier    = processor.WithClassifier
	WithLayoutOptions = processor.WithLayoutOptions
	WithLogger        = processor.WithLogger
	WithYTolerance    = pdf.WithYTolerance
	WithWordGapRatio  = pdf.WithWordGapRatio
	WithColumnGap     = pdf.WithColumnGap
	WithBlockGapRatio = pdf.WithBlockGapRatio
)

// NewClassifier creates a block classifier with the given thresholds
func NewClassifier(config ClassifierConfig) *classify.Classifier {
	return classify.New(config)
}

// DefaultClassifierConfig returns the standard classification thresholds
func DefaultClassifierConfig() ClassifierConfig {
	return classify.DefaultConfig()
}

// ProcessFile extracts the structure of the PDF at path
func ProcessFile(ctx context.Context, path string, opts ...Option) (*Document, error) {
	return processor.New(opts...).ProcessFile(ctx, path)
}

// EmptyDocument returns the record used for files that cannot be processed
func EmptyDocument() *Document {
	return structure.EmptyDocument()
}
