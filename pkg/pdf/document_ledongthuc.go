package pdf

import (
	"fmt"
	"io"
	"sort"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	metadata Metadata
	layout   layoutConfig
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string, opts ...LayoutOption) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ledongthuc panicked opening PDF: %v", r)
		}
	}()

	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	d := &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
		layout:   newLayoutConfig(opts),
	}
	d.extractMetadata()

	return d, nil
}

// extractMetadata reads the Info dictionary referenced by the trailer
func (d *LedongthucDocument) extractMetadata() {
	info := d.reader.Trailer().Key("Info")
	if info.Kind() != lpdf.Dict {
		return
	}

	d.metadata = Metadata{
		Title:   info.Key("Title").Text(),
		Author:  info.Key("Author").Text(),
		Subject: info.Key("Subject").Text(),
		Creator: info.Key("Creator").Text(),
	}
}

// GetMetadata returns the PDF metadata
func (d *LedongthucDocument) GetMetadata() Metadata {
	return d.metadata
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= d.PageCount() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrPageOutOfRange, index, d.PageCount())
	}
	return NewLedongthucPage(d.reader, index+1, d.layout)
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return d.reader.NumPage()
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	page       lpdf.Page
	pageNumber int
	height     float64 // for flipping baselines to top-left coordinates
	layout     layoutConfig
}

// NewLedongthucPage creates a new page using ledongthuc/pdf
func NewLedongthucPage(reader *lpdf.Reader, pageNumber int, layout layoutConfig) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	// Default to US Letter
	height := 792.0

	mediaBox := ledongthucInherited(page.V, "MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		// MediaBox is [x0, y0, x1, y1]
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	return &LedongthucPage{
		page:       page,
		pageNumber: pageNumber,
		height:     height,
		layout:     layout,
	}, nil
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// Blocks returns the page's text grouped into layout blocks
func (p *LedongthucPage) Blocks() (blocks []RawBlock, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream on page %d: %v", p.pageNumber, r)
		}
	}()

	content := p.page.Content()

	glyphs := make([]glyph, 0, len(content.Text))
	for _, text := range content.Text {
		glyphs = append(glyphs, newGlyph(text.S, text.Font, text.FontSize, text.X, text.Y, text.W, p.height))
	}

	return buildBlocks(glyphs, p.layout), nil
}

// Images returns the image XObjects in the page's resources, ordered by
// resource name
func (p *LedongthucPage) Images() (images []ImageRef, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed resources on page %d: %v", p.pageNumber, r)
		}
	}()

	xObjects := p.page.Resources().Key("XObject")
	if xObjects.Kind() != lpdf.Dict {
		return nil, nil
	}

	keys := xObjects.Keys()
	sort.Strings(keys)

	for _, key := range keys {
		obj := xObjects.Key(key)
		if obj.Key("Subtype").Name() != "Image" {
			continue
		}

		colorSpace := ""
		if cs := obj.Key("ColorSpace"); cs.Kind() == lpdf.Name {
			colorSpace = cs.Name()
		}

		images = append(images, ImageRef{
			Name:             key,
			Width:            int(obj.Key("Width").Int64()),
			Height:           int(obj.Key("Height").Int64()),
			ColorSpace:       colorSpace,
			BitsPerComponent: int(obj.Key("BitsPerComponent").Int64()),
		})
	}

	return images, nil
}

// ledongthucInherited looks a key up on the page and then its ancestors
func ledongthucInherited(v lpdf.Value, key string) lpdf.Value {
	for depth := 0; v.Kind() == lpdf.Dict && depth < 32; depth++ {
		if value := v.Key(key); !value.IsNull() {
			return value
		}
		v = v.Key("Parent")
	}
	return lpdf.Value{}
}
