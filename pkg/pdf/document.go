package pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pkg/errors"
)

// Open opens a PDF file for layout-ordered text extraction
func Open(filepath string) (Document, error) {
	// Try ledongthuc implementation first as it has the most accurate text extraction
	doc, err := OpenWithLedongthuc(filepath)
	if err == nil {
		return doc, nil
	}

	// Fallback to dslipak implementation
	doc, dErr := OpenWithDslipak(filepath)
	if dErr == nil {
		return doc, nil
	}

	return nil, errors.Wrapf(dErr, "%v; fallback", err)
}

func init() {
	// pdfcpu would otherwise create a config directory under the user's home
	api.DisableConfigDir()
}

// CountPages reads the document's page tree with pdfcpu and returns the
// number of pages it declares.
func CountPages(filepath string) (int, error) {
	ctx, err := api.ReadContextFile(filepath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read PDF context")
	}
	return ctx.PageCount, nil
}
