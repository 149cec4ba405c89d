// Package pdfextract extracts text and basic metadata from PDF files by
// trying docling, MuPDF and layout-ordered text extraction in that order.
package pdfextract

import (
	"context"

	"github.com/pyhub-apps/pdfextract-golang/pkg/extract"
)

// Re-export types from extract package for public API
type (
	Result         = extract.Result
	Metadata       = extract.Metadata
	Method         = extract.Method
	Strategy       = extract.Strategy
	Extraction     = extract.Extraction
	Dispatcher     = extract.Dispatcher
	Option         = extract.Option
	DoclingOptions = extract.DoclingOptions
)

// Re-export method tags
const (
	MethodDocling    = extract.MethodDocling
	MethodPyMuPDF    = extract.MethodPyMuPDF
	MethodPdfplumber = extract.MethodPdfplumber
)

// Re-export option functions
var (
	WithLogger     = extract.WithLogger
	WithStrategies = extract.WithStrategies
	WithDocling    = extract.WithDocling
	NewDispatcher  = extract.NewDispatcher
)

// Extract runs the default fallback chain on the PDF at path
func Extract(ctx context.Context, path string, opts ...Option) Result {
	return extract.NewDispatcher(opts...).Extract(ctx, path)
}
