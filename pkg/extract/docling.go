package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultDoclingBin     = "docling"
	defaultDoclingTimeout = 10 * time.Minute
	maxStderrTail         = 512
)

// DoclingOptions configures the docling CLI invocation
type DoclingOptions struct {
	// Bin is the docling executable name or path
	Bin string
	// Timeout bounds one conversion; zero disables the bound
	Timeout time.Duration
	// Args are appended to the conversion command line
	Args []string
}

// Docling converts documents with the docling CLI, exporting Markdown for the
// text and the DoclingDocument JSON for metadata.
type Docling struct {
	opts DoclingOptions
}

// DefaultDoclingOptions runs "docling" from PATH with a ten minute bound
func DefaultDoclingOptions() DoclingOptions {
	return DoclingOptions{Bin: defaultDoclingBin, Timeout: defaultDoclingTimeout}
}

// NewDocling creates the docling strategy. An empty Bin means "docling" on
// PATH.
func NewDocling(opts DoclingOptions) *Docling {
	if opts.Bin == "" {
		opts.Bin = defaultDoclingBin
	}
	return &Docling{opts: opts}
}

func (d *Docling) Method() Method { return MethodDocling }

func (d *Docling) Label() string { return "Docling" }

// doclingDocument holds the fields read from docling's JSON export
type doclingDocument struct {
	Name  string                     `json:"name"`
	Pages map[string]json.RawMessage `json:"pages"`
}

// Extract runs one docling conversion into a temporary directory
func (d *Docling) Extract(ctx context.Context, path string) (*Extraction, error) {
	bin, err := exec.LookPath(d.opts.Bin)
	if err != nil {
		return nil, &UnavailableError{Msg: "Docling library not installed. Run: pip install docling"}
	}

	outDir, err := os.MkdirTemp("", "pdfextract-docling-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create docling output directory")
	}
	defer os.RemoveAll(outDir)

	if d.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.Timeout)
		defer cancel()
	}

	// Images become placeholders so only text is exported
	args := []string{
		path,
		"--to", "md",
		"--to", "json",
		"--image-export-mode", "placeholder",
		"--output", outDir,
	}
	args = append(args, d.opts.Args...)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "docling conversion aborted")
		}
		if tail := stderrTail(stderr.String()); tail != "" {
			return nil, errors.Wrapf(err, "docling conversion failed: %s", tail)
		}
		return nil, errors.Wrap(err, "docling conversion failed")
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	text, err := os.ReadFile(filepath.Join(outDir, stem+".md"))
	if err != nil {
		return nil, errors.Wrap(err, "docling produced no markdown export")
	}

	md := Metadata{Title: base}
	raw, err := os.ReadFile(filepath.Join(outDir, stem+".json"))
	if err == nil {
		var doc doclingDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to parse docling JSON export")
		}
		md.NumPages = len(doc.Pages)
		if doc.Name != "" {
			md.Title = doc.Name
		}
	}

	return &Extraction{Text: string(text), Metadata: md}, nil
}

// stderrTail returns the end of a subprocess error stream folded onto one line
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderrTail {
		s = s[len(s)-maxStderrTail:]
	}
	return strings.Join(strings.Fields(s), " ")
}
