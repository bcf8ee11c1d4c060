package pdf

// BoundingBox represents a rectangular area with coordinates.
// Coordinates use a top-left origin: Y grows downward.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Union returns the smallest box containing both b and other
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		X0: min(b.X0, other.X0),
		Y0: min(b.Y0, other.Y0),
		X1: max(b.X1, other.X1),
		Y1: max(b.Y1, other.Y1),
	}
}

// OverlapsX reports whether the horizontal extents of b and other overlap
func (b BoundingBox) OverlapsX(other BoundingBox) bool {
	return b.X0 < other.X1 && other.X0 < b.X1
}

// Metadata represents the PDF document information dictionary
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Creator string
}

// IsEmpty reports whether no metadata field is set
func (m Metadata) IsEmpty() bool {
	return m.Title == "" && m.Author == "" && m.Subject == "" && m.Creator == ""
}

// Span is a run of glyphs on one line sharing font name and size
type Span struct {
	Text     string
	FontSize float64
	FontName string
	BBox     BoundingBox
}

// Line is a horizontal run of spans. Cells of a table row on the same
// baseline become separate lines when separated by a column gap.
type Line struct {
	Spans []Span
	BBox  BoundingBox
}

// RawBlock is a layout block as delivered by the renderer: vertically
// adjacent lines that overlap horizontally.
type RawBlock struct {
	Lines []Line
	BBox  BoundingBox
}

// ImageRef describes one image XObject referenced by a page
type ImageRef struct {
	Name             string
	Width            int
	Height           int
	ColorSpace       string
	BitsPerComponent int
}
