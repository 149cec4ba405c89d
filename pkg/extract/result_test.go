package extract

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func decode(t *testing.T, r Result) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if n := bytes.Count(buf.Bytes(), []byte("\n")); n != 1 {
		t.Fatalf("Expected one line of JSON, got %d newlines in %q", n, buf.String())
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return m
}

func TestSucceededJSON(t *testing.T) {
	m := decode(t, Succeeded(MethodPyMuPDF, "", Metadata{NumPages: 3, Title: "a.pdf"}))

	if m["success"] != true || m["method"] != "pymupdf" {
		t.Errorf("Unexpected fields: %v", m)
	}
	if text, ok := m["text"]; !ok || text != "" {
		t.Errorf("Expected empty text to be present, got %v", m)
	}
	md, ok := m["metadata"].(map[string]any)
	if !ok || md["num_pages"] != float64(3) || md["title"] != "a.pdf" {
		t.Errorf("Unexpected metadata: %v", m["metadata"])
	}
	if _, ok := m["error"]; ok {
		t.Error("Expected no error field on success")
	}
}

func TestFailedJSON(t *testing.T) {
	m := decode(t, Failed(MethodPdfplumber, errors.New("corrupt")))

	if m["success"] != false || m["error"] != "corrupt" || m["method"] != "pdfplumber" {
		t.Errorf("Unexpected fields: %v", m)
	}
	for _, k := range []string{"text", "metadata"} {
		if _, ok := m[k]; ok {
			t.Errorf("Expected no %s field on failure", k)
		}
	}
}

func TestFailedWithoutMessage(t *testing.T) {
	if r := Failed(MethodDocling, nil); r.Error != "Unknown error" {
		t.Errorf("Expected Unknown error, got %q", r.Error)
	}
}

func TestFatalJSONHasNoMethod(t *testing.T) {
	m := decode(t, Fatal("Usage: pdfextract <pdf_file_path>"))

	if len(m) != 2 {
		t.Errorf("Expected only success and error, got %v", m)
	}
	if m["error"] != "Usage: pdfextract <pdf_file_path>" {
		t.Errorf("Unexpected error: %v", m["error"])
	}
}

func TestJSONDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Fatal("Usage: pdfextract <pdf_file_path>").WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("<pdf_file_path>")) {
		t.Errorf("Expected literal angle brackets, got %s", buf.String())
	}
}
