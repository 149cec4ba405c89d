package pdf

import "github.com/pkg/errors"

// ErrNotCompiled is returned by backends whose engine was not compiled into
// the binary.
var ErrNotCompiled = errors.New("engine not compiled in")

// Glyph is a positioned piece of text as reported by a content stream
// interpreter. Coordinates are in PDF user space, Y grows upward.
type Glyph struct {
	S string
	X float64
	Y float64
	W float64
}

// End returns the X coordinate where the glyph ends
func (g Glyph) End() float64 {
	return g.X + g.W
}

// pageIndexError reports an out-of-range page index
func pageIndexError(index, count int) error {
	return errors.Errorf("page index %d out of range [0, %d)", index, count)
}
