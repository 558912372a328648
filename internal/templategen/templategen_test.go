package templategen

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tinytelemetry/slides/internal/model"
)

const sampleDoc = `# Annual Report

Intro paragraph before any section.

## Revenue
Revenue grew 12% year over year. Margins improved! Was it enough? Analysts think so.

## Risks
- Supply chain
- Currency exposure

## Empty

`

func TestGenerate_TitleDerivation(t *testing.T) {
	t.Parallel()

	src := Source{FileName: "annual_report-2024.md", Text: sampleDoc, WordCount: 30, PageCount: 1}

	if got := Generate(src, "  Board Update ", 8).Title; got != "Board Update" {
		t.Errorf("topic title = %q", got)
	}
	if got := Generate(src, "", 8).Title; got != "Annual Report" {
		t.Errorf("heading title = %q", got)
	}
	src.Text = "no headings here"
	if got := Generate(src, "", 8).Title; got != "annual report 2024" {
		t.Errorf("file name title = %q", got)
	}
	src.FileName = ".md"
	if got := Generate(src, "", 8).Title; got != model.DefaultTitle {
		t.Errorf("fallback title = %q", got)
	}
}

func TestGenerate_Structure(t *testing.T) {
	t.Parallel()

	src := Source{FileName: "report.md", Text: sampleDoc, WordCount: 30, PageCount: 2}
	deck := Generate(src, "", 10)

	titles := make([]string, 0, len(deck.Slides))
	for _, s := range deck.Slides {
		titles = append(titles, s.Title)
	}
	want := []string{"Annual Report", "Annual Report", "Revenue", "Risks"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("titles = %q, want %q", titles, want)
	}

	if deck.SlideCount != len(deck.Slides) || deck.Theme != model.DefaultTheme {
		t.Fatalf("deck = %+v", deck)
	}
	if got := deck.Slides[0].Content[1]; got != "30 words across 2 pages" {
		t.Errorf("overview line = %q", got)
	}
	revenue := deck.Slides[2].Content
	if len(revenue) != 4 || revenue[1] != "Margins improved!" || revenue[2] != "Was it enough?" {
		t.Errorf("revenue bullets = %q", revenue)
	}
	if risks := deck.Slides[3].Content; !reflect.DeepEqual(risks, []string{"Supply chain", "Currency exposure"}) {
		t.Errorf("risk bullets = %q", risks)
	}
}

func TestGenerate_RespectsMaxSlidesAndSplitsLongSections(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("## Long\n")
	for range 23 {
		b.WriteString("A sentence. ")
	}
	src := Source{FileName: "long.txt", Text: b.String()}

	deck := Generate(src, "", 4)
	if len(deck.Slides) != 4 {
		t.Fatalf("slides = %d, want 4", len(deck.Slides))
	}
	if deck.Slides[2].Title != "Long (cont.)" {
		t.Errorf("continuation title = %q", deck.Slides[2].Title)
	}
	for _, s := range deck.Slides[1:] {
		if len(s.Content) > maxBulletsPerSlide {
			t.Errorf("slide %q has %d bullets", s.Title, len(s.Content))
		}
	}

	if got := len(Generate(src, "", 1).Slides); got != model.MinSlides {
		t.Errorf("clamped slides = %d, want %d", got, model.MinSlides)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	src := Source{FileName: "report.md", Text: sampleDoc}
	if !reflect.DeepEqual(Generate(src, "", 6), Generate(src, "", 6)) {
		t.Fatal("Generate is not deterministic")
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("é", 200)
	got := truncate(long, maxBulletRunes)
	if utf8.RuneCountInString(got) != maxBulletRunes || !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate produced %d runes", utf8.RuneCountInString(got))
	}
	if truncate("short", 10) != "short" {
		t.Fatal("short string changed")
	}
}

func TestSentences_KeepsDecimals(t *testing.T) {
	t.Parallel()

	got := sentences("Growth was 3.5 percent. Next")
	want := []string{"Growth was 3.5 percent.", "Next"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sentences = %q, want %q", got, want)
	}
}
