package extract

import (
	"bytes"
	"encoding/json"
	"io"
)

// Method identifies the strategy that produced a Result
type Method string

const (
	MethodDocling    Method = "docling"
	MethodPyMuPDF    Method = "pymupdf"
	MethodPdfplumber Method = "pdfplumber"
)

// Metadata is the document metadata reported on success
type Metadata struct {
	NumPages int    `json:"num_pages"`
	Title    string `json:"title"`
}

// Result is the outcome of one extraction. Construct it with Succeeded,
// Failed or Fatal.
type Result struct {
	Success  bool
	Text     string
	Metadata Metadata
	Method   Method
	Error    string
}

// Succeeded returns a successful result produced by method
func Succeeded(method Method, text string, md Metadata) Result {
	return Result{Success: true, Text: text, Metadata: md, Method: method}
}

// Failed returns a failed result produced by method
func Failed(method Method, err error) Result {
	msg := "Unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Result{Method: method, Error: msg}
}

// Fatal returns a failure that happened before any strategy ran. It carries
// no method.
func Fatal(msg string) Result {
	return Result{Error: msg}
}

type successJSON struct {
	Success  bool     `json:"success"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
	Method   Method   `json:"method"`
}

type failureJSON struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Method  Method `json:"method,omitempty"`
}

// MarshalJSON emits text and metadata only on success, and error only on
// failure.
func (r Result) MarshalJSON() ([]byte, error) {
	var v any
	if r.Success {
		v = successJSON{Success: true, Text: r.Text, Metadata: r.Metadata, Method: r.Method}
	} else {
		v = failureJSON{Error: r.Error, Method: r.Method}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteJSON writes r to w as a single line of JSON
func (r Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
