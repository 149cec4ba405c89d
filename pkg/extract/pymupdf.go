package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pyhub-apps/pdfextract-golang/pkg/pdf"
)

// PyMuPDF extracts raw per-page text with MuPDF and keeps every page,
// including empty ones.
type PyMuPDF struct {
	open func(string) (pdf.Document, error)
}

// NewPyMuPDF creates the MuPDF strategy
func NewPyMuPDF() *PyMuPDF {
	return &PyMuPDF{open: pdf.OpenWithFitz}
}

func (m *PyMuPDF) Method() Method { return MethodPyMuPDF }

func (m *PyMuPDF) Label() string { return "PyMuPDF" }

// Extract joins the text of all pages with a blank line
func (m *PyMuPDF) Extract(ctx context.Context, path string) (*Extraction, error) {
	doc, err := m.open(path)
	if err != nil {
		if errors.Is(err, pdf.ErrNotCompiled) {
			return nil, &UnavailableError{Msg: "PyMuPDF support not compiled in; rebuild with CGO_ENABLED=1"}
		}
		return nil, err
	}
	defer doc.Close()

	n := doc.PageCount()
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		page, err := doc.Page(i)
		if err != nil {
			return nil, err
		}
		text, err := page.ExtractText()
		if err != nil {
			return nil, err
		}
		parts = append(parts, text)
	}

	return &Extraction{
		Text: strings.Join(parts, "\n\n"),
		Metadata: Metadata{
			NumPages: n,
			Title:    filepath.Base(path),
		},
	}, nil
}
