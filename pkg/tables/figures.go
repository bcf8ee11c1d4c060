package tables

import (
	"fmt"

	"github.com/pyhub-apps/pdfstructure/pkg/pdf"
	"github.com/pyhub-apps/pdfstructure/pkg/structure"
)

// ListFigures emits one figure per image, in enumeration order
func ListFigures(images []pdf.ImageRef, page int) []structure.Figure {
	figures := make([]structure.Figure, 0, len(images))
	for i := range images {
		figures = append(figures, structure.Figure{
			Type:        structure.TypeImage,
			Page:        page,
			Index:       i,
			Description: fmt.Sprintf("Figure %d on page %d", i+1, page),
		})
	}
	return figures
}
