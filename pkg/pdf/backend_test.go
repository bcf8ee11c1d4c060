package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdfstructure/internal/testpdf"
)

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.pdf")

	info := testpdf.Info{Title: "Sample Title", Author: "Jane Roe", Subject: "Testing", Creator: "testpdf"}
	err := testpdf.Write(path, info,
		testpdf.Page{
			Texts: []testpdf.Text{
				{X: 72, Y: 100, Size: 18, Value: "Sample Title"},
				{X: 72, Y: 160, Size: 10, Value: "First line of text"},
			},
			Images: 2,
		},
		testpdf.Page{
			Texts: []testpdf.Text{{X: 72, Y: 100, Size: 10, Value: "Second page"}},
		},
	)
	require.NoError(t, err)
	return path
}

func blockTexts(blocks []RawBlock) []string {
	var texts []string
	for _, block := range blocks {
		for _, line := range block.Lines {
			text := ""
			for _, span := range line.Spans {
				text += span.Text
			}
			texts = append(texts, text)
		}
	}
	return texts
}

func TestLedongthucBackend(t *testing.T) {
	doc, err := OpenWithLedongthuc(writeSample(t))
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, 2, doc.PageCount())
	assert.Equal(t, Metadata{Title: "Sample Title", Author: "Jane Roe", Subject: "Testing", Creator: "testpdf"}, doc.GetMetadata())

	page, err := doc.GetPage(0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.GetPageNumber())
	assert.InDelta(t, 792, page.(*LedongthucPage).height, 0.01)

	blocks, err := page.Blocks()
	require.NoError(t, err)
	assert.Equal(t, []string{"Sample Title", "First line of text"}, blockTexts(blocks))
	require.Len(t, blocks, 2)
	assert.Equal(t, 18.0, blocks[0].Lines[0].Spans[0].FontSize)
	assert.Equal(t, "Helvetica", blocks[0].Lines[0].Spans[0].FontName)
	// baseline 100 from the top, ascent 0.8em
	assert.InDelta(t, 85.6, blocks[0].BBox.Y0, 0.01)

	images, err := page.Images()
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.NotEqual(t, images[0].Name, images[1].Name)
	assert.Equal(t, 8, images[0].Width)
	assert.Equal(t, 8, images[0].Height)
	assert.Equal(t, "DeviceGray", images[0].ColorSpace)
	assert.Equal(t, 8, images[0].BitsPerComponent)

	second, err := doc.GetPage(1)
	require.NoError(t, err)
	blocks, err = second.Blocks()
	require.NoError(t, err)
	assert.Equal(t, []string{"Second page"}, blockTexts(blocks))

	_, err = doc.GetPage(2)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestDslipakBackend(t *testing.T) {
	doc, err := OpenWithDslipak(writeSample(t))
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, 2, doc.PageCount())
	assert.Equal(t, "Sample Title", doc.GetMetadata().Title)

	page, err := doc.GetPage(1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.GetPageNumber())

	_, err = page.Blocks()
	assert.NoError(t, err)

	_, err = doc.GetPage(-1)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestOpenPrefersLedongthuc(t *testing.T) {
	doc, err := Open(writeSample(t), WithColumnGap(20))
	require.NoError(t, err)
	defer doc.Close()

	assert.IsType(t, &LedongthucDocument{}, doc)
}

func TestReadMetadata(t *testing.T) {
	meta, err := ReadMetadata(writeSample(t))
	require.NoError(t, err)
	assert.Equal(t, "Sample Title", meta.Title)
	assert.Equal(t, "Jane Roe", meta.Author)

	garbage := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("%PDF-1.4\nnot really\n"), 0o644))
	_, err = ReadMetadata(garbage)
	assert.Error(t, err)
}
