// Package processor runs the layout-to-structure pipeline for a single
// document: aggregation, classification, structure building, table-row
// detection, figure listing and statistics.
package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdfstructure/pkg/classify"
	"github.com/pyhub-apps/pdfstructure/pkg/layout"
	"github.com/pyhub-apps/pdfstructure/pkg/pdf"
	"github.com/pyhub-apps/pdfstructure/pkg/structure"
	"github.com/pyhub-apps/pdfstructure/pkg/tables"
)

// OpenFunc opens a PDF for extraction
type OpenFunc func(path string, opts ...pdf.LayoutOption) (pdf.Document, error)

// MetadataFunc reads the information dictionary of a PDF file
type MetadataFunc func(path string) (pdf.Metadata, error)

// Processor converts documents into structure.Document records. It keeps
// no per-document state and may be shared between goroutines.
type Processor struct {
	classifier   *classify.Classifier
	layout       []pdf.LayoutOption
	logger       logrus.FieldLogger
	open         OpenFunc
	readMetadata MetadataFunc
}

// Option configures a Processor
type Option func(*Processor)

// New creates a processor with the default classifier and the real PDF
// backends
func New(opts ...Option) *Processor {
	p := &Processor{
		classifier:   classify.New(classify.DefaultConfig()),
		logger:       logrus.StandardLogger(),
		open:         pdf.Open,
		readMetadata: pdf.ReadMetadata,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithClassifier sets the block classifier
func WithClassifier(c *classify.Classifier) Option {
	return func(p *Processor) {
		if c != nil {
			p.classifier = c
		}
	}
}

// WithLayoutOptions sets the options passed to the PDF backend
func WithLayoutOptions(opts ...pdf.LayoutOption) Option {
	return func(p *Processor) {
		p.layout = append(p.layout, opts...)
	}
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithOpener replaces the PDF backend
func WithOpener(open OpenFunc) Option {
	return func(p *Processor) {
		if open != nil {
			p.open = open
		}
	}
}

// WithMetadataReader replaces the fallback metadata reader
func WithMetadataReader(read MetadataFunc) Option {
	return func(p *Processor) {
		if read != nil {
			p.readMetadata = read
		}
	}
}

// ProcessFile opens path and processes it. When the extraction backend
// reports no metadata, the fallback reader is consulted.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*structure.Document, error) {
	doc, err := p.open(path, p.layout...)
	if err != nil {
		return nil, &ProcessingError{Path: path, Stage: StageOpen, Err: err}
	}
	defer doc.Close()

	result, err := p.Process(ctx, filepath.Base(path), doc)
	if err != nil {
		return nil, err
	}

	if doc.GetMetadata().IsEmpty() {
		meta, err := p.readMetadata(path)
		if err != nil {
			p.logger.WithError(err).WithField("file", path).Debug("Fallback metadata unavailable")
		} else {
			setMetadata(&result.Metadata, meta)
		}
	}

	return result, nil
}

// Process runs the pipeline over an opened document. name is recorded as
// the document's filename. Pages are processed in order; the first page
// that fails aborts the document.
func (p *Processor) Process(ctx context.Context, name string, doc pdf.Document) (result *structure.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ProcessingError{Path: name, Stage: StagePanic, Err: fmt.Errorf("%v", r)}
		}
	}()

	result = structure.NewDocument()
	result.Metadata.Filename = name
	result.Metadata.TotalPages = doc.PageCount()
	setMetadata(&result.Metadata, doc.GetMetadata())

	builder := structure.NewBuilder(result)
	blockCount := 0

	for i := 0; i < doc.PageCount(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, &ProcessingError{Path: name, Stage: StageCanceled, Err: err}
		}

		page, err := doc.GetPage(i)
		if err != nil {
			return nil, &ProcessingError{Path: name, Stage: StagePage, Err: err}
		}
		pageNumber := page.GetPageNumber()

		raw, err := page.Blocks()
		if err != nil {
			return nil, &ProcessingError{Path: name, Stage: StageBlocks, Err: fmt.Errorf("page %d: %w", pageNumber, err)}
		}

		for _, block := range layout.Aggregate(raw, pageNumber) {
			builder.Add(p.classifier.ClassifyBlock(block))
			blockCount++
		}

		images, err := page.Images()
		if err != nil {
			return nil, &ProcessingError{Path: name, Stage: StageImages, Err: fmt.Errorf("page %d: %w", pageNumber, err)}
		}

		result.Content.Tables = append(result.Content.Tables, tables.DetectRows(raw, pageNumber)...)
		result.Content.Figures = append(result.Content.Figures, tables.ListFigures(images, pageNumber)...)
	}

	result.UpdateStatistics()

	p.logger.WithFields(logrus.Fields{
		"file":       name,
		"pages":      result.Metadata.TotalPages,
		"blocks":     blockCount,
		"sections":   result.Statistics.SectionCount,
		"tables":     len(result.Content.Tables),
		"figures":    len(result.Content.Figures),
		"footnotes":  len(result.Content.Footnotes),
		"references": len(result.Content.References),
	}).Debug("Document processed")

	return result, nil
}

// Classify returns the classified blocks of every page without building
// the structure
func (p *Processor) Classify(ctx context.Context, doc pdf.Document) ([]classify.ClassifiedBlock, error) {
	var out []classify.ClassifiedBlock

	for i := 0; i < doc.PageCount(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := doc.GetPage(i)
		if err != nil {
			return nil, err
		}

		raw, err := page.Blocks()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page.GetPageNumber(), err)
		}

		for _, block := range layout.Aggregate(raw, page.GetPageNumber()) {
			out = append(out, p.classifier.ClassifyBlock(block))
		}
	}

	return out, nil
}

// Open opens path with the configured backend and layout options
func (p *Processor) Open(path string) (pdf.Document, error) {
	return p.open(path, p.layout...)
}

func setMetadata(dst *structure.Metadata, src pdf.Metadata) {
	dst.Title = src.Title
	dst.Author = src.Author
	dst.Subject = src.Subject
	dst.Creator = src.Creator
}
