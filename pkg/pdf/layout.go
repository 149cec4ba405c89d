package pdf

import (
	"math"
	"sort"
	"strings"
)

// TextOrganizer organizes glyphs into lines of layout-ordered text
type TextOrganizer struct {
	xTolerance float64 // Horizontal gap that turns into a space
	yTolerance float64 // Baseline distance still considered the same line
}

// NewTextOrganizer creates a new text organizer with default tolerances
func NewTextOrganizer() *TextOrganizer {
	return &TextOrganizer{
		xTolerance: 3.0,
		yTolerance: 3.0,
	}
}

// SetTolerances sets the tolerances for text grouping
func (to *TextOrganizer) SetTolerances(xTol, yTol float64) {
	to.xTolerance = xTol
	to.yTolerance = yTol
}

// OrganizeText returns the glyphs as text, top to bottom and left to right,
// one output line per baseline.
func (to *TextOrganizer) OrganizeText(glyphs []Glyph) string {
	if len(glyphs) == 0 {
		return ""
	}

	lines := to.groupIntoLines(glyphs)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, to.lineText(line))
	}
	return strings.Join(out, "\n")
}

// groupIntoLines groups glyphs into lines based on baseline position
func (to *TextOrganizer) groupIntoLines(glyphs []Glyph) [][]Glyph {
	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)

	// PDF coordinates: Y increases upward, so the first line has the largest Y
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines [][]Glyph
	var current []Glyph
	currentY := sorted[0].Y

	for _, g := range sorted {
		if math.Abs(g.Y-currentY) > to.yTolerance {
			if len(current) > 0 {
				lines = append(lines, current)
			}
			current = []Glyph{g}
			currentY = g.Y
			continue
		}
		current = append(current, g)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	return lines
}

// lineText joins the glyphs of one line, inserting a space where the gap
// between two glyphs is wide enough and no space glyph is present.
func (to *TextOrganizer) lineText(line []Glyph) string {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].X < line[j].X
	})

	var b strings.Builder
	for i, g := range line {
		if i > 0 {
			prev := line[i-1]
			gap := g.X - prev.End()
			if gap > to.xTolerance && gap > g.W*0.5 &&
				!strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(g.S, " ") {
				b.WriteString(" ")
			}
		}
		b.WriteString(g.S)
	}
	return b.String()
}
