package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pdfextract.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
docling:
  bin: /opt/docling/bin/docling
  timeout: 90s
  args: ["--ocr"]
verbose: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Docling: Docling{Bin: "/opt/docling/bin/docling", Timeout: 90 * time.Second, Args: []string{"--ocr"}},
		Verbose: true,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "verbose: true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Docling.Bin != "docling" || cfg.Docling.Timeout != 10*time.Minute {
		t.Errorf("expected docling defaults, got %+v", cfg.Docling)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "docling:\n  bin: from-file\n")
	t.Setenv(EnvDoclingBin, "from-env")
	t.Setenv(EnvDoclingTimeout, "0s")
	t.Setenv(EnvVerbose, "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Docling.Bin != "from-env" || cfg.Docling.Timeout != 0 || !cfg.Verbose {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := Load(writeFile(t, "docling: [")); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv(EnvDoclingTimeout, "soon")
		if _, err := Load(""); err == nil {
			t.Error("expected error")
		}
	})
}
