package generation

import (
	"strings"
	"testing"

	"github.com/tinytelemetry/slides/internal/model"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	deck := model.Deck{Title: "T", Slides: []model.Slide{{Title: "a"}}, SlideCount: 1}

	nominal := Classify(model.Succeeded(deck, "", false, "done"))
	if nominal.Severity != SeveritySuccess || nominal.Duration != SuccessNoticeDuration {
		t.Errorf("nominal notice = %+v", nominal)
	}

	fallback := Classify(model.Succeeded(deck, "", true, "AI quota exceeded"))
	if fallback.Severity != SeverityWarning {
		t.Errorf("fallback severity = %v", fallback.Severity)
	}
	if fallback.Duration <= nominal.Duration {
		t.Errorf("fallback duration %v not longer than nominal %v", fallback.Duration, nominal.Duration)
	}
	if !strings.Contains(fallback.Text, "AI quota exceeded") {
		t.Errorf("fallback text %q lacks reason", fallback.Text)
	}

	failed := Classify(model.Failed("quota exceeded"))
	if failed.Severity != SeverityError || failed.Text != "quota exceeded" {
		t.Errorf("failure notice = %+v", failed)
	}
}

func TestClassify_FallbackWithoutReason(t *testing.T) {
	t.Parallel()

	n := Classify(model.Succeeded(model.Deck{}, "", true, "  "))
	if strings.HasSuffix(n.Text, ": ") || strings.HasSuffix(n.Text, ":") {
		t.Fatalf("dangling separator in %q", n.Text)
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	if SeverityWarning.String() != "warning" || Severity(42).String() != "info" {
		t.Fatal("unexpected severity names")
	}
}
