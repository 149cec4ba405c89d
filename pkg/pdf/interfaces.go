package pdf

// Document represents an open PDF document backed by one text engine
type Document interface {
	// PageCount returns the total number of pages
	PageCount() int

	// Page returns a specific page by index (0-based)
	Page(index int) (Page, error)

	// Close releases resources associated with the document
	Close() error
}

// Page represents a single page in a PDF document
type Page interface {
	// Number returns the page number (1-based)
	Number() int

	// ExtractText extracts the text of the page
	ExtractText() (string, error)
}
