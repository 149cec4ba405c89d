package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyhub-apps/pdfextract-golang/internal/pdftest"
)

func TestOpenBackends(t *testing.T) {
	path := pdftest.Write(t, "sample.pdf",
		[]string{"Dummy PDF file"},
		[]string{"Second page"},
	)

	backends := map[string]func(string) (Document, error){
		"ledongthuc": OpenWithLedongthuc,
		"dslipak":    OpenWithDslipak,
		"default":    Open,
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			doc, err := open(path)
			if err != nil {
				t.Fatalf("Failed to open PDF: %v", err)
			}
			defer doc.Close()

			if doc.PageCount() != 2 {
				t.Fatalf("Expected 2 pages, got %d", doc.PageCount())
			}

			page, err := doc.Page(0)
			if err != nil {
				t.Fatalf("Failed to get page: %v", err)
			}
			if page.Number() != 1 {
				t.Errorf("Expected page number 1, got %d", page.Number())
			}

			text, err := page.ExtractText()
			if err != nil {
				t.Fatalf("ExtractText: %v", err)
			}
			if !strings.Contains(text, "Dummy PDF file") {
				t.Errorf("Expected text to contain 'Dummy PDF file', got: %q", text)
			}

			if _, err := doc.Page(2); err == nil {
				t.Error("Expected error for out-of-range page")
			}
		})
	}
}

func TestBlankPageHasNoText(t *testing.T) {
	path := pdftest.Write(t, "blank.pdf", []string{"Alpha"}, nil)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}
	text, err := page.ExtractText()
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Errorf("Expected blank page, got %q", text)
	}
}

func TestCountPages(t *testing.T) {
	path := pdftest.Write(t, "three.pdf", []string{"one"}, []string{"two"}, []string{"three"})

	n, err := CountPages(path)
	if err != nil {
		t.Fatalf("CountPages: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 pages, got %d", n)
	}
}

func TestOpenInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Expected error opening invalid PDF")
	}
	if _, err := CountPages(path); err == nil {
		t.Error("Expected pdfcpu to reject invalid PDF")
	}
}
