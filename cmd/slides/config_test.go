package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tinytelemetry/slides/internal/model"
)

func TestLoadCLIConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadCLIConfig("")
	if err != nil {
		t.Fatalf("loadCLIConfig: %v", err)
	}
	if cfg.ServerURL != defaultServerURL {
		t.Fatalf("server-url = %q, want %q", cfg.ServerURL, defaultServerURL)
	}
	if cfg.MaxSlides != model.DefaultMaxSlides {
		t.Fatalf("max-slides = %d, want %d", cfg.MaxSlides, model.DefaultMaxSlides)
	}
	if cfg.RequestTimeout != model.DefaultRequestTimeout {
		t.Fatalf("request-timeout = %s, want %s", cfg.RequestTimeout, model.DefaultRequestTimeout)
	}
	if cfg.Skin != model.DefaultSkin {
		t.Fatalf("skin = %q, want %q", cfg.Skin, model.DefaultSkin)
	}
}

func TestLoadCLIConfig_FileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SLIDES_SESSION_ID", "from-env")

	path := filepath.Join(home, "custom.yml")
	content := "server-url: http://example.test:9000\nmax-slides: 5\nrequest-timeout: 30s\nexport-dir: ~/decks\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("loadCLIConfig: %v", err)
	}
	if cfg.ServerURL != "http://example.test:9000" {
		t.Fatalf("server-url = %q", cfg.ServerURL)
	}
	if cfg.MaxSlides != 5 {
		t.Fatalf("max-slides = %d, want 5", cfg.MaxSlides)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("request-timeout = %s, want 30s", cfg.RequestTimeout)
	}
	if cfg.SessionID != "from-env" {
		t.Fatalf("session-id = %q, want env override", cfg.SessionID)
	}
	if want := filepath.Join(home, "decks"); cfg.ExportDir != want {
		t.Fatalf("export-dir = %q, want %q", cfg.ExportDir, want)
	}
}

func TestLoadCLIConfig_RejectsOutOfRangeSlides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SLIDES_MAX_SLIDES", "20")

	_, err := loadCLIConfig("")
	if err == nil {
		t.Fatal("expected error for max-slides=20")
	}
	if !model.IsType(err, model.ErrorTypeConfig) {
		t.Fatalf("error type = %v, want config", err)
	}
}
