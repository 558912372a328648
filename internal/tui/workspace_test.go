package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tinytelemetry/slides/internal/generation"
	"github.com/tinytelemetry/slides/internal/model"
	"github.com/tinytelemetry/slides/internal/session"
)

type fakeSession struct {
	active bool
	info   model.DocumentInfo
}

func (s *fakeSession) Active() bool             { return s.active }
func (s *fakeSession) Info() model.DocumentInfo { return s.info }

type fakeGenerator struct {
	mu      sync.Mutex
	calls   []model.GenerationRequest
	outcome model.Outcome
}

func (g *fakeGenerator) Generate(_ context.Context, req model.GenerationRequest) model.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, req)
	return g.outcome
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func sampleDeck(n int) model.Deck {
	slides := make([]model.Slide, n)
	for i := range slides {
		slides[i] = model.Slide{Title: "Slide", Content: []string{"one", "two"}}
	}
	return model.Deck{Title: "Quarterly Review", Slides: slides, SlideCount: n, Theme: model.DefaultTheme}
}

func newTestWorkspace(t *testing.T, ready bool, gen model.Generator) *Workspace {
	t.Helper()
	sess := &fakeSession{
		active: ready,
		info:   model.DocumentInfo{SessionID: "s1", FileName: "report.md", WordCount: 120, PageCount: 2},
	}
	return NewWorkspace(WorkspaceConfig{
		Gate:      session.NewGate(sess),
		Generator: gen,
		ExportDir: t.TempDir(),
		Logger:    zerolog.Nop(),
	})
}

// runGeneration executes the generation command, skipping the spinner tick.
func runGeneration(t *testing.T, cmd tea.Cmd) generationDoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		batch = tea.BatchMsg{func() tea.Msg { return msg }}
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if done, ok := c().(generationDoneMsg); ok {
			return done
		}
	}
	t.Fatal("no generationDoneMsg produced")
	return generationDoneMsg{}
}

func TestWorkspaceGenerate_NoDocumentSkipsCall(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{outcome: model.Succeeded(sampleDeck(3), "", false, "")}
	ws := newTestWorkspace(t, false, gen)

	if cmd := ws.generate("topic", 5); cmd == nil {
		t.Fatal("expected a notice command")
	}
	if gen.callCount() != 0 {
		t.Fatalf("generator called %d times, want 0", gen.callCount())
	}
	if ws.Generating() {
		t.Fatal("workspace should not be generating")
	}
	notice, ok := ws.notices.active()
	if !ok {
		t.Fatal("expected a precondition notice")
	}
	if notice.Text != generation.PreconditionNotice().Text {
		t.Fatalf("notice = %q", notice.Text)
	}
}

func TestWorkspaceGenerate_InFlightGuard(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{outcome: model.Succeeded(sampleDeck(3), "", false, "")}
	ws := newTestWorkspace(t, true, gen)

	first := ws.generate("", 5)
	if first == nil || !ws.Generating() {
		t.Fatal("first generate should start a call")
	}
	if second := ws.generate("", 5); second != nil {
		t.Fatal("second generate while in flight should be ignored")
	}

	done := runGeneration(t, first)
	if gen.callCount() != 1 {
		t.Fatalf("generator called %d times, want 1", gen.callCount())
	}
	if done.req.SessionID != "s1" || done.req.MaxSlides != 5 {
		t.Fatalf("request = %+v", done.req)
	}

	ws.update(done)
	if ws.Generating() {
		t.Fatal("generating flag should clear on completion")
	}
	if !ws.Store().HasDeck() {
		t.Fatal("successful outcome should be stored")
	}
}

func TestWorkspaceUpdate_FailedRegenerationKeepsDeck(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t, true, &fakeGenerator{})
	ws.Store().Replace(sampleDeck(4), "", false)
	ws.Store().Navigator().GoTo(2)

	ws.generating = true
	ws.update(generationDoneMsg{outcome: model.Failed("quota exceeded")})

	deck, ok := ws.Store().Deck()
	if !ok || deck.Len() != 4 {
		t.Fatal("prior deck should survive a failed regeneration")
	}
	notice, ok := ws.notices.active()
	if !ok || notice.Severity != generation.SeverityError || notice.Text != "quota exceeded" {
		t.Fatalf("notice = %+v, ok=%v", notice, ok)
	}
}

func TestWorkspaceRegenerate_ReusesParameters(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{outcome: model.Succeeded(sampleDeck(3), "", false, "")}
	ws := newTestWorkspace(t, true, gen)

	ws.update(runGeneration(t, ws.generate("  Pricing  ", 7)))
	ws.update(runGeneration(t, ws.regenerate()))

	if gen.callCount() != 2 {
		t.Fatalf("generator called %d times, want 2", gen.callCount())
	}
	second := gen.calls[1]
	if second.Topic != "Pricing" || second.MaxSlides != 7 {
		t.Fatalf("regenerate request = %+v", second)
	}
}

func TestWorkspaceExportMarkdown_NoDeckIsNoop(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t, true, &fakeGenerator{})
	if cmd := ws.exportMarkdown(); cmd != nil {
		t.Fatal("export without a deck should do nothing")
	}
	if cmd := ws.download(); cmd != nil {
		t.Fatal("download without an artifact should do nothing")
	}
}

func TestWorkspaceExportMarkdown_WritesFile(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t, true, &fakeGenerator{})
	ws.Store().Replace(sampleDeck(2), "", false)

	msg, ok := ws.exportMarkdown()().(exportDoneMsg)
	if !ok {
		t.Fatal("expected exportDoneMsg")
	}
	if msg.err != nil {
		t.Fatalf("export: %v", msg.err)
	}
	if msg.path == "" {
		t.Fatal("export path is empty")
	}
	ws.update(msg)
	notice, ok := ws.notices.active()
	if !ok || notice.Severity != generation.SeveritySuccess {
		t.Fatalf("notice = %+v", notice)
	}
}

func TestNotifier_StaleExpiryKeepsNewerNotice(t *testing.T) {
	t.Parallel()

	var n notifier
	n.push(generation.Notice{Text: "first"})
	n.push(generation.Notice{Text: "second"})

	n.expire(1)
	if got, ok := n.active(); !ok || got.Text != "second" {
		t.Fatalf("active = %+v, ok=%v", got, ok)
	}
	n.expire(2)
	if _, ok := n.active(); ok {
		t.Fatal("notice should be cleared")
	}
}
