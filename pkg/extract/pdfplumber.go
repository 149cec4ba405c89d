package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pyhub-apps/pdfextract-golang/pkg/pdf"
)

// Pdfplumber extracts layout-ordered text. The page count comes from the
// page tree, and pages without text contribute nothing to the output.
type Pdfplumber struct {
	open       func(string) (pdf.Document, error)
	countPages func(string) (int, error)
}

// NewPdfplumber creates the layout-ordered text strategy
func NewPdfplumber() *Pdfplumber {
	return &Pdfplumber{
		open:       pdf.Open,
		countPages: pdf.CountPages,
	}
}

func (p *Pdfplumber) Method() Method { return MethodPdfplumber }

func (p *Pdfplumber) Label() string { return "pdfplumber" }

// Extract joins the non-empty page texts with a blank line
func (p *Pdfplumber) Extract(ctx context.Context, path string) (*Extraction, error) {
	numPages, err := p.countPages(path)
	if err != nil {
		return nil, err
	}

	doc, err := p.open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	var parts []string
	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.Page(i)
		if err != nil {
			return nil, err
		}
		text, err := page.ExtractText()
		if err != nil {
			return nil, err
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	return &Extraction{
		Text: strings.Join(parts, "\n\n"),
		Metadata: Metadata{
			NumPages: numPages,
			Title:    filepath.Base(path),
		},
	}, nil
}
