package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tinytelemetry/slides/internal/model"
)

const (
	bulletPrefix   = "• "
	slideSeparator = "---"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	pathSeparators = strings.NewReplacer("/", "-", `\`, "-")
)

// ToMarkdown renders a deck as a markdown document. The output depends only
// on the deck's title and slides.
func ToMarkdown(deck model.Deck) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", deck.Title)
	for i, slide := range deck.Slides {
		fmt.Fprintf(&b, "## Slide %d: %s\n\n", i+1, slide.Title)
		for _, line := range slide.Content {
			b.WriteString(bulletPrefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("\n" + slideSeparator + "\n\n")
	}
	return b.String()
}

// FileName returns the download name for a deck title: whitespace runs
// become single underscores and ".md" is appended.
func FileName(title string) string {
	return whitespaceRun.ReplaceAllString(title, "_") + ".md"
}

// SafeFileName is FileName with path separators replaced by "-", so the
// result is a single path segment on disk and in URLs.
func SafeFileName(title string) string {
	return pathSeparators.Replace(FileName(title))
}

// WriteMarkdown writes the markdown export of deck into dir. A nil deck is a
// no-op that reports false and writes nothing.
func WriteMarkdown(dir string, deck *model.Deck) (string, bool, error) {
	if deck == nil {
		return "", false, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, model.ExportError("create export directory", err)
	}

	path := filepath.Join(dir, SafeFileName(deck.Title))
	if err := os.WriteFile(path, []byte(ToMarkdown(*deck)), 0o644); err != nil {
		return "", false, model.ExportError("write markdown", err)
	}
	return path, true, nil
}
