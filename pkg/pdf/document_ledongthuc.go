package pdf

import (
	"io"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	file      io.Closer
	reader    *lpdf.Reader
	organizer *TextOrganizer
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF with ledongthuc")
	}

	return &LedongthucDocument{
		file:      f,
		reader:    r,
		organizer: NewTextOrganizer(),
	}, nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return d.reader.NumPage()
}

// Page returns a specific page by index (0-based)
func (d *LedongthucDocument) Page(index int) (Page, error) {
	if index < 0 || index >= d.PageCount() {
		return nil, pageIndexError(index, d.PageCount())
	}
	return &LedongthucPage{
		page:       d.reader.Page(index + 1),
		pageNumber: index + 1,
		organizer:  d.organizer,
	}, nil
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
	organizer  *TextOrganizer
}

// Number returns the page number (1-based)
func (p *LedongthucPage) Number() int {
	return p.pageNumber
}

// ExtractText returns the layout-ordered text of the page
func (p *LedongthucPage) ExtractText() (string, error) {
	if p.page.V.IsNull() {
		return "", nil
	}

	content := p.page.Content()
	glyphs := make([]Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, Glyph{
			S: t.S,
			X: t.X,
			Y: t.Y,
			W: t.W,
		})
	}

	return p.organizer.OrganizeText(glyphs), nil
}
