package extract

import (
	"context"

	"github.com/pkg/errors"
)

// Extraction is what a strategy produces when it succeeds
type Extraction struct {
	Text     string
	Metadata Metadata
}

// Strategy is one extraction engine in the fallback chain
type Strategy interface {
	// Method returns the tag reported in results
	Method() Method

	// Label returns the human-readable engine name used in diagnostics
	Label() string

	// Extract extracts text and metadata from the PDF at path
	Extract(ctx context.Context, path string) (*Extraction, error)
}

// attempt runs s and converts any error or panic into a failed Result, so
// one engine's fault never aborts the chain.
func attempt(ctx context.Context, s Strategy, path string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failed(s.Method(), errors.Errorf("panic: %v", r))
		}
	}()

	ex, err := s.Extract(ctx, path)
	if err != nil {
		return Failed(s.Method(), err)
	}
	if ex == nil {
		return Failed(s.Method(), errors.New("no extraction returned"))
	}
	return Succeeded(s.Method(), ex.Text, ex.Metadata)
}
