// Command pdfextract extracts text and metadata from a PDF and prints the
// result as one line of JSON.
//
// Usage:
//
//	pdfextract [-config file] [-v] [--] <pdf_file_path>
//
// A path starting with "-" must follow "--", otherwise it is read as a flag.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/pyhub-apps/pdfextract-golang/internal/config"
	"github.com/pyhub-apps/pdfextract-golang/pkg/extract"
)

const usage = "Usage: pdfextract <pdf_file_path>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one extraction and returns the process exit code. stdout
// receives exactly one JSON line; stderr only receives fallthrough
// diagnostics.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pdfextract", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", os.Getenv(config.EnvFile), "Path to YAML config file")
	verbose := fs.Bool("v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil || fs.NArg() < 1 {
		return emit(stdout, extract.Fatal(usage))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return emit(stdout, extract.Fatal(fmt.Sprintf("Invalid configuration: %v", err)))
	}
	if *verbose {
		cfg.Verbose = true
	}

	path := fs.Arg(0)
	if _, err := os.Stat(path); err != nil {
		return emit(stdout, extract.Fatal(fmt.Sprintf("File not found: %s", path)))
	}

	d := extract.NewDispatcher(
		extract.WithLogger(newLogger(stderr, cfg.Verbose)),
		extract.WithDocling(extract.DoclingOptions{
			Bin:     cfg.Docling.Bin,
			Timeout: cfg.Docling.Timeout,
			Args:    cfg.Docling.Args,
		}),
	)
	return emit(stdout, d.Extract(context.Background(), path))
}

// newLogger writes one plain line per event to w
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(level)
}

func emit(stdout io.Writer, res extract.Result) int {
	if err := res.WriteJSON(stdout); err != nil {
		return 1
	}
	if res.Success {
		return 0
	}
	return 1
}
