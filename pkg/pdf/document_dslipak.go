package pdf

import (
	"fmt"
	"sort"

	gopdf "github.com/dslipak/pdf"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	reader   *gopdf.Reader
	filepath string
	metadata Metadata
	layout   layoutConfig
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string, opts ...LayoutOption) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dslipak panicked opening PDF: %v", r)
		}
	}()

	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	d := &DsliPakDocument{
		reader:   r,
		filepath: filepath,
		layout:   newLayoutConfig(opts),
	}
	d.extractMetadata()

	return d, nil
}

// extractMetadata reads the Info dictionary referenced by the trailer
func (d *DsliPakDocument) extractMetadata() {
	info := d.reader.Trailer().Key("Info")
	if info.Kind() != gopdf.Dict {
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
func (d *DsliPakDocument) GetMetadata() Metadata {
	return d.metadata
}

// GetPage returns a specific page by index (0-based)
func (d *DsliPakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= d.PageCount() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrPageOutOfRange, index, d.PageCount())
	}
	return NewDsliPakPage(d.reader, index+1, d.layout)
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	return d.reader.NumPage()
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	d.reader = nil
	return nil
}

// DsliPakPage implements the Page interface using dslipak/pdf
type DsliPakPage struct {
	page       gopdf.Page
	pageNumber int
	height     float64
	layout     layoutConfig
}

// NewDsliPakPage creates a new page using dslipak/pdf
func NewDsliPakPage(reader *gopdf.Reader, pageNumber int, layout layoutConfig) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	// 11 inches in points unless the MediaBox says otherwise
	height := 792.0

	mediaBox := dslipakInherited(page.V, "MediaBox")
	if mediaBox.Kind() == gopdf.Array && mediaBox.Len() == 4 {
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	return &DsliPakPage{
		page:       page,
		pageNumber: pageNumber,
		height:     height,
		layout:     layout,
	}, nil
}

// GetPageNumber returns the page number (1-based)
func (p *DsliPakPage) GetPageNumber() int {
	return p.pageNumber
}

// Blocks returns the page's text grouped into layout blocks
func (p *DsliPakPage) Blocks() (blocks []RawBlock, err error) {
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

// Images returns the image XObjects in the page's resources
func (p *DsliPakPage) Images() (images []ImageRef, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed resources on page %d: %v", p.pageNumber, r)
		}
	}()

	xObjects := p.page.Resources().Key("XObject")
	if xObjects.Kind() != gopdf.Dict {
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
		if cs := obj.Key("ColorSpace"); cs.Kind() == gopdf.Name {
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

func dslipakInherited(v gopdf.Value, key string) gopdf.Value {
	for depth := 0; v.Kind() == gopdf.Dict && depth < 32; depth++ {
		if value := v.Key(key); !value.IsNull() {
			return value
		}
		v = v.Key("Parent")
	}
	return gopdf.Value{}
}
