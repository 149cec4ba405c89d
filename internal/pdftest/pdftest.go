// Package pdftest generates small PDF fixtures for tests.
package pdftest

import (
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// Write renders one page per entry of pages, each line of an entry as its
// own text line, and returns the path of the written file. An empty entry
// produces a blank page.
func Write(t testing.TB, name string, pages ...[]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetCompression(false)
	for _, lines := range pages {
		doc.AddPage()
		doc.SetFont("Helvetica", "", 12)
		for _, line := range lines {
			doc.Cell(0, 16, line)
			doc.Ln(16)
		}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
