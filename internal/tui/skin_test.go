package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParseSkin_FillsMissingColors(t *testing.T) {
	t.Parallel()

	s, err := parseSkin([]byte("name: ocean\ncolors:\n  accent: \"33\"\n"))
	if err != nil {
		t.Fatalf("parseSkin: %v", err)
	}
	if s.Name != "ocean" || s.Colors.Accent != "33" {
		t.Fatalf("skin = %+v", s)
	}
	if s.Colors.Error != defaultSkin.Colors.Error {
		t.Fatalf("error color = %q, want default %q", s.Colors.Error, defaultSkin.Colors.Error)
	}
}

func TestParseSkin_InvalidYAML(t *testing.T) {
	t.Parallel()

	if _, err := parseSkin([]byte("colors: [unclosed")); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

// Not parallel: skins mutate package-level styles.
func TestInitializeSkin(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skins", "ocean.yml"), []byte("colors:\n  accent: \"33\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer applySkin(defaultSkin)

	if err := InitializeSkin("ocean", dir); err != nil {
		t.Fatalf("InitializeSkin: %v", err)
	}
	if ColorAccent != lipgloss.Color("33") {
		t.Fatalf("accent = %q, want 33", ColorAccent)
	}

	if err := InitializeSkin("missing", dir); err == nil {
		t.Fatal("expected error for missing skin")
	}
	if ColorAccent != lipgloss.Color(defaultSkin.Colors.Accent) {
		t.Fatalf("accent = %q, want default after failed load", ColorAccent)
	}
}
