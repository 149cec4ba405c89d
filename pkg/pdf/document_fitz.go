//go:build cgo

package pdf

import (
	fitz "github.com/gen2brain/go-fitz"
	"github.com/pkg/errors"
)

// FitzDocument implements the Document interface using MuPDF through go-fitz
type FitzDocument struct {
	doc *fitz.Document
}

// OpenWithFitz opens a PDF file using MuPDF
func OpenWithFitz(filepath string) (Document, error) {
	doc, err := fitz.New(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF with mupdf")
	}
	return &FitzDocument{doc: doc}, nil
}

// PageCount returns the total number of pages
func (d *FitzDocument) PageCount() int {
	return d.doc.NumPage()
}

// Page returns a specific page by index (0-based)
func (d *FitzDocument) Page(index int) (Page, error) {
	if index < 0 || index >= d.PageCount() {
		return nil, pageIndexError(index, d.PageCount())
	}
	return &FitzPage{doc: d.doc, index: index}, nil
}

// Close releases resources associated with the document
func (d *FitzDocument) Close() error {
	return d.doc.Close()
}

// FitzPage implements the Page interface using MuPDF
type FitzPage struct {
	doc   *fitz.Document
	index int
}

// Number returns the page number (1-based)
func (p *FitzPage) Number() int {
	return p.index + 1
}

// ExtractText returns the raw text MuPDF reports for the page
func (p *FitzPage) ExtractText() (string, error) {
	text, err := p.doc.Text(p.index)
	if err != nil {
		return "", errors.Wrapf(err, "page %d", p.index+1)
	}
	return text, nil
}
