package pdf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Open opens a PDF file for layout extraction. The ledongthuc backend is
// tried first as it has the most accurate text positions; dslipak is the
// fallback. When neither can read the file a *DecodeError is returned.
func Open(filepath string, opts ...LayoutOption) (Document, error) {
	doc, lerr := OpenWithLedongthuc(filepath, opts...)
	if lerr == nil {
		return doc, nil
	}

	doc, derr := OpenWithDslipak(filepath, opts...)
	if derr == nil {
		return doc, nil
	}

	return nil, &DecodeError{
		Path: filepath,
		Err:  fmt.Errorf("%w: %w", ErrNoBackend, errors.Join(lerr, derr)),
	}
}

// ReadMetadata reads the document information dictionary with pdfcpu.
// It is used when the extraction backend found no Info dictionary, which
// happens for files whose trailer is in a cross-reference stream.
func ReadMetadata(filepath string) (meta Metadata, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdfcpu panicked reading metadata: %v", r)
		}
	}()

	ctx, err := api.ReadContextFile(filepath)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read PDF context: %w", err)
	}

	// Info fields are populated during validation
	if err := api.ValidateContext(ctx); err != nil {
		return Metadata{}, fmt.Errorf("invalid PDF: %w", err)
	}

	return Metadata{
		Title:   strings.TrimSpace(ctx.Title),
		Author:  strings.TrimSpace(ctx.Author),
		Subject: strings.TrimSpace(ctx.Subject),
		Creator: strings.TrimSpace(ctx.Creator),
	}, nil
}
