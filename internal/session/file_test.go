package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileSession_Metadata(t *testing.T) {
	t.Parallel()

	s := NewFileSession("notes.md", "# Title\n\nOne two three.\fFour five\f\n  \n")

	info := s.Info()
	if info.FileName != "notes.md" {
		t.Errorf("file name = %q", info.FileName)
	}
	if info.WordCount != 7 {
		t.Errorf("word count = %d, want 7", info.WordCount)
	}
	if info.PageCount != 2 {
		t.Errorf("page count = %d, want 2", info.PageCount)
	}
	if info.SessionID == "" || info.SessionID != s.ID() {
		t.Errorf("session id = %q, ID() = %q", info.SessionID, s.ID())
	}
	if !s.Active() {
		t.Error("session with text is not active")
	}
}

func TestNewFileSession_BlankIsInactive(t *testing.T) {
	t.Parallel()

	s := NewFileSession("empty.txt", " \n\t ")
	if s.Active() {
		t.Fatal("blank document reported active")
	}
	if got := s.Info().PageCount; got != 0 {
		t.Fatalf("page count = %d, want 0", got)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "brief.txt")
	if err := os.WriteFile(path, []byte("alpha beta gamma"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Info().FileName != "brief.txt" || s.Info().WordCount != 3 {
		t.Fatalf("info = %+v", s.Info())
	}

	if _, err := LoadFile(filepath.Join(dir, "deck.pdf")); err == nil {
		t.Fatal("LoadFile accepted a pdf")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.md")); err == nil {
		t.Fatal("LoadFile accepted a missing file")
	}
	if _, err := LoadFile("  "); err == nil {
		t.Fatal("LoadFile accepted an empty path")
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	b := NewFileSession("b.md", "bravo")
	a := NewFileSession("a.md", "alpha")
	r.Add(b)
	id := r.Add(a)

	if got, ok := r.Get(id); !ok || got != a {
		t.Fatalf("Get(%q) = %v, %v", id, got, ok)
	}
	list := r.List()
	if len(list) != 2 || list[0] != a || list[1] != b {
		t.Fatalf("List order wrong: %v", list)
	}

	r.Remove(id)
	r.Remove("unknown")
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}
