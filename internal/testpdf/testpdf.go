// Package testpdf renders small Letter-sized PDF files for tests
package testpdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// Text is one run of Helvetica text. X and Y are in points from the
// top-left corner of the page; Y is the baseline.
type Text struct {
	X, Y  float64
	Size  float64
	Value string
}

// Page lists the text runs of one page and the number of images drawn on it
type Page struct {
	Texts  []Text
	Images int
}

// Info is written to the document information dictionary
type Info struct {
	Title, Author, Subject, Creator string
}

// Write renders pages to path. Images are registered in the resource
// dictionary shared by all pages, so every page references all of them.
// Each image gets distinct pixels.
func Write(path string, info Info, pages ...Page) error {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetTitle(info.Title, false)
	doc.SetAuthor(info.Author, false)
	doc.SetSubject(info.Subject, false)
	doc.SetCreator(info.Creator, false)

	images := 0
	for _, page := range pages {
		doc.AddPage()

		for _, text := range page.Texts {
			doc.SetFont("Helvetica", "", text.Size)
			doc.Text(text.X, text.Y, text.Value)
		}

		for i := 0; i < page.Images; i++ {
			name := fmt.Sprintf("img%d", images)

			// identical bytes would be stored once as a single XObject
			data, err := grayPNG(images)
			if err != nil {
				return err
			}
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
			doc.ImageOptions(name, 400, 600+float64(i)*60, 50, 50, false, opts, 0, "")
			images++
		}
	}

	return doc.OutputFileAndClose(path)
}

// grayPNG draws an 8x8 gradient; seed shifts the shades so that every
// image has distinct content
func grayPNG(seed int) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x*32 + seed*7)})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
