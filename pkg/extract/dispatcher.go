// Package extract implements the PDF extraction fallback chain: docling,
// then MuPDF, then layout-ordered text, returning the first success.
package extract

import (
	"context"

	"github.com/rs/zerolog"
)

// Dispatcher tries its strategies in order and returns the first success
type Dispatcher struct {
	strategies []Strategy
	logger     zerolog.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger sets the logger used for fallthrough diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithStrategies replaces the default chain
func WithStrategies(strategies ...Strategy) Option {
	return func(d *Dispatcher) {
		d.strategies = strategies
	}
}

// WithDocling configures the docling strategy of the default chain
func WithDocling(opts DoclingOptions) Option {
	return func(d *Dispatcher) {
		d.strategies = DefaultStrategies(opts)
	}
}

// DefaultStrategies returns the fixed chain docling, pymupdf, pdfplumber
func DefaultStrategies(docling DoclingOptions) []Strategy {
	return []Strategy{
		NewDocling(docling),
		NewPyMuPDF(),
		NewPdfplumber(),
	}
}

// NewDispatcher creates a dispatcher with the default chain
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		strategies: DefaultStrategies(DefaultDoclingOptions()),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Extract runs the chain on path. It returns the first successful result,
// or the last strategy's failure when none succeeds. Each failure except
// the last logs one warning before falling through.
func (d *Dispatcher) Extract(ctx context.Context, path string) Result {
	if len(d.strategies) == 0 {
		return Fatal("no extraction strategies configured")
	}

	var res Result
	for i, s := range d.strategies {
		d.logger.Debug().Str("method", string(s.Method())).Str("path", path).Msg("attempting extraction")

		res = attempt(ctx, s, path)
		if res.Success {
			d.logger.Debug().
				Str("method", string(res.Method)).
				Int("num_pages", res.Metadata.NumPages).
				Msg("extraction succeeded")
			return res
		}

		if i < len(d.strategies)-1 {
			d.logger.Warn().Msgf("%s failed: %s, trying %s...", s.Label(), res.Error, d.strategies[i+1].Label())
		}
	}

	return res
}
