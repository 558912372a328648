package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tinytelemetry/slides/internal/model"
)

// supportedExtensions lists the document types a FileSession can load.
// Binary formats need an extraction step that lives outside this module.
var supportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// FileSession is a document loaded from a plain-text or markdown file.
type FileSession struct {
	id       string
	fileName string
	text     string
	words    int
	pages    int
}

// LoadFile reads path and registers it as a new document session.
func LoadFile(path string) (*FileSession, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("session: path is empty")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("session: unsupported document type %q", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session: read document: %w", err)
	}
	return NewFileSession(filepath.Base(path), string(data)), nil
}

// NewFileSession builds a session from already-read document text.
func NewFileSession(fileName, text string) *FileSession {
	return &FileSession{
		id:       uuid.NewString(),
		fileName: fileName,
		text:     text,
		words:    countWords(text),
		pages:    countPages(text),
	}
}

// Active reports whether the session holds any document text.
func (s *FileSession) Active() bool {
	return s != nil && strings.TrimSpace(s.text) != ""
}

// Info returns the document metadata.
func (s *FileSession) Info() model.DocumentInfo {
	return model.DocumentInfo{
		SessionID: s.id,
		FileName:  s.fileName,
		WordCount: s.words,
		PageCount: s.pages,
	}
}

// ID returns the session identifier.
func (s *FileSession) ID() string { return s.id }

// Text returns the full document text.
func (s *FileSession) Text() string { return s.text }

func countWords(text string) int {
	return len(strings.Fields(text))
}

// countPages counts form-feed separated pages, ignoring blank ones.
func countPages(text string) int {
	n := 0
	for _, page := range strings.Split(text, "\f") {
		if strings.TrimSpace(page) != "" {
			n++
		}
	}
	return n
}
