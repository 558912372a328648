// Package templategen builds slide decks from document text without a model.
// It is the degraded generation path: deterministic and purely structural.
package templategen

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/tinytelemetry/slides/internal/model"
)

const (
	maxBulletsPerSlide = 5
	maxBulletRunes     = 120
	maxTitleRunes      = 80
	untitledSection    = "Key Points"
)

// Source is the document a deck is generated from.
type Source struct {
	FileName  string
	Text      string
	WordCount int
	PageCount int
}

type section struct {
	title string
	body  []string
}

// Generate builds a deck of at most maxSlides slides from src. A non-empty
// topic becomes the deck title; otherwise the title is derived from the
// document's first heading or its file name.
func Generate(src Source, topic string, maxSlides int) model.Deck {
	maxSlides = model.ClampSlides(maxSlides)
	title := deriveTitle(src, topic)

	slides := []model.Slide{{
		Title: title,
		Content: []string{
			"Source: " + src.FileName,
			fmt.Sprintf("%d words across %d pages", src.WordCount, max(src.PageCount, 1)),
		},
	}}

	for _, sec := range splitSections(src.Text) {
		bullets := toBullets(sec.body)
		for part := 0; len(bullets) > 0; part++ {
			if len(slides) >= maxSlides {
				break
			}
			n := min(len(bullets), maxBulletsPerSlide)
			slideTitle := sec.title
			if part > 0 {
				slideTitle += " (cont.)"
			}
			slides = append(slides, model.Slide{Title: slideTitle, Content: bullets[:n]})
			bullets = bullets[n:]
		}
	}

	return model.Deck{
		Title:      title,
		Slides:     slides,
		SlideCount: len(slides),
		Theme:      model.DefaultTheme,
	}
}

func deriveTitle(src Source, topic string) string {
	if t := strings.TrimSpace(topic); t != "" {
		return truncate(t, maxTitleRunes)
	}
	for _, line := range strings.Split(src.Text, "\n") {
		if h, ok := heading(line); ok && h != "" {
			return truncate(h, maxTitleRunes)
		}
	}
	base := strings.TrimSuffix(src.FileName, filepath.Ext(src.FileName))
	base = strings.Join(strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}), " ")
	if base == "" {
		return model.DefaultTitle
	}
	return truncate(base, maxTitleRunes)
}

// heading returns the text of a markdown ATX heading line.
func heading(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	text := strings.TrimLeft(trimmed, "#")
	if text != "" && !unicode.IsSpace(rune(text[0])) {
		return "", false
	}
	return strings.TrimSpace(text), true
}

// splitSections groups lines under their headings. Text before the first
// heading, or a document without headings, is split into paragraphs.
func splitSections(text string) []section {
	var (
		out     []section
		current *section
	)
	flush := func() {
		if current != nil && len(current.body) > 0 {
			out = append(out, *current)
		}
	}

	var preamble []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\f", "\n"), "\n") {
		if h, ok := heading(line); ok {
			flush()
			if h == "" {
				h = untitledSection
			}
			current = &section{title: truncate(h, maxTitleRunes)}
			continue
		}
		if current == nil {
			preamble = append(preamble, line)
			continue
		}
		current.body = append(current.body, line)
	}
	flush()

	return append(paragraphSections(preamble), out...)
}

func paragraphSections(lines []string) []section {
	var (
		out  []section
		para []string
	)
	flush := func() {
		if len(para) == 0 {
			return
		}
		out = append(out, section{title: paragraphTitle(para), body: para})
		para = nil
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()
	return out
}

// paragraphTitle uses the first few words of a paragraph as its title.
func paragraphTitle(para []string) string {
	words := strings.Fields(strings.Join(para, " "))
	if len(words) > 6 {
		return strings.Join(words[:6], " ") + "…"
	}
	return strings.Join(words, " ")
}

// toBullets turns body lines into sentence bullets. List items stay as-is.
func toBullets(body []string) []string {
	var (
		bullets []string
		prose   []string
	)
	flushProse := func() {
		for _, s := range sentences(strings.Join(prose, " ")) {
			bullets = append(bullets, truncate(s, maxBulletRunes))
		}
		prose = nil
	}
	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flushProse()
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "), strings.HasPrefix(trimmed, "• "):
			flushProse()
			item := strings.TrimSpace(strings.TrimLeft(trimmed, "-*• "))
			if item != "" {
				bullets = append(bullets, truncate(item, maxBulletRunes))
			}
		default:
			prose = append(prose, trimmed)
		}
	}
	flushProse()
	return bullets
}

// sentences splits prose on terminal punctuation followed by whitespace.
func sentences(text string) []string {
	var (
		out   []string
		start int
	)
	runes := []rune(text)
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			out = append(out, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}
