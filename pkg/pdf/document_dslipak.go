package pdf

import (
	"os"

	gopdf "github.com/dslipak/pdf"
	"github.com/pkg/errors"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	file      *os.File
	reader    *gopdf.Reader
	organizer *TextOrganizer
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "failed to stat file")
	}

	r, err := gopdf.NewReader(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "failed to open PDF with dslipak")
	}

	return &DsliPakDocument{
		file:      f,
		reader:    r,
		organizer: NewTextOrganizer(),
	}, nil
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	return d.reader.NumPage()
}

// Page returns a specific page by index (0-based)
func (d *DsliPakDocument) Page(index int) (Page, error) {
	if index < 0 || index >= d.PageCount() {
		return nil, pageIndexError(index, d.PageCount())
	}
	return &DsliPakPage{
		page:       d.reader.Page(index + 1),
		pageNumber: index + 1,
		organizer:  d.organizer,
	}, nil
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	d.reader = nil
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// DsliPakPage implements the Page interface using dslipak/pdf
type DsliPakPage struct {
	page       gopdf.Page
	pageNumber int
	organizer  *TextOrganizer
}

// Number returns the page number (1-based)
func (p *DsliPakPage) Number() int {
	return p.pageNumber
}

// ExtractText returns the layout-ordered text of the page
func (p *DsliPakPage) ExtractText() (string, error) {
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
