package pdf

// Document represents an opened PDF document
type Document interface {
	// GetMetadata returns the PDF information dictionary fields
	GetMetadata() Metadata

	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// PageCount returns the total number of pages
	PageCount() int

	// Close releases resources associated with the document
	Close() error
}

// Page represents a single page in a PDF document
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// Blocks returns the page's text grouped into layout blocks,
	// in reading order (top to bottom, left to right)
	Blocks() ([]RawBlock, error)

	// Images returns the image XObjects referenced by the page
	Images() ([]ImageRef, error)
}
