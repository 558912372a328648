package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tinytelemetry/slides/internal/export"
	"github.com/tinytelemetry/slides/internal/generation"
	"github.com/tinytelemetry/slides/internal/model"
	"github.com/tinytelemetry/slides/internal/presentation"
	"github.com/tinytelemetry/slides/internal/session"
)

// SessionRefresher re-reads the document session status.
type SessionRefresher interface {
	Refresh(ctx context.Context) error
}

// ArtifactDownloader saves a server-hosted artifact into a directory.
type ArtifactDownloader interface {
	Download(ctx context.Context, rawURL, dir string) (string, error)
}

const (
	exportKindMarkdown = "markdown"
	exportKindDownload = "download"
)

// WorkspaceConfig wires the collaborators shared by all pages.
type WorkspaceConfig struct {
	Gate       *session.Gate
	Session    SessionRefresher
	Generator  model.Generator
	Downloader ArtifactDownloader
	ExportDir  string
	MaxSlides  int
	Timeout    time.Duration
	Logger     zerolog.Logger
}

// Workspace is the state shared by the configure and viewer pages: the
// presentation store, the in-flight generation flag and the notice area.
// It is only touched from the Bubble Tea event loop.
type Workspace struct {
	gate       *session.Gate
	session    SessionRefresher
	generator  model.Generator
	downloader ArtifactDownloader
	exportDir  string
	timeout    time.Duration
	logger     zerolog.Logger

	store      *presentation.Store
	notices    notifier
	spinner    spinner.Model
	generating bool

	topic     string
	maxSlides int
	lastReq   *model.GenerationRequest
}

// NewWorkspace creates the shared page state.
func NewWorkspace(cfg WorkspaceConfig) *Workspace {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = headerStyle

	maxSlides := cfg.MaxSlides
	if maxSlides == 0 {
		maxSlides = model.DefaultMaxSlides
	}
	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}
	return &Workspace{
		gate:       cfg.Gate,
		session:    cfg.Session,
		generator:  cfg.Generator,
		downloader: cfg.Downloader,
		exportDir:  exportDir,
		timeout:    cfg.Timeout,
		logger:     cfg.Logger.With().Str("component", "tui").Logger(),
		store:      presentation.NewStore(),
		spinner:    sp,
		maxSlides:  model.ClampSlides(maxSlides),
	}
}

// Store exposes the presentation store.
func (w *Workspace) Store() *presentation.Store { return w.store }

// Generating reports whether a generation call is outstanding.
func (w *Workspace) Generating() bool { return w.generating }

// generate starts a generation call with the given form values. Without a
// document it shows the precondition notice and issues no call. While a call
// is outstanding it does nothing.
func (w *Workspace) generate(topic string, maxSlides int) tea.Cmd {
	if w.generating {
		return nil
	}
	w.topic = topic
	w.maxSlides = model.ClampSlides(maxSlides)

	req, err := generation.NewRequest(w.gate, topic, maxSlides)
	if err != nil {
		w.logger.Debug().Err(err).Msg("generation blocked")
		return w.notices.push(generation.PreconditionNotice())
	}
	if w.generator == nil {
		return w.notices.push(generation.Classify(model.Failed("")))
	}

	w.generating = true
	w.lastReq = &req
	gen := w.generator
	timeout := w.timeout
	return tea.Batch(w.spinner.Tick, func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return generationDoneMsg{req: req, outcome: gen.Generate(ctx, req)}
	})
}

// regenerate repeats the last request's parameters against the current
// document.
func (w *Workspace) regenerate() tea.Cmd {
	return w.generate(w.topic, w.maxSlides)
}

func (w *Workspace) refreshSession() tea.Cmd {
	if w.session == nil {
		return nil
	}
	s := w.session
	timeout := w.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return sessionRefreshedMsg{err: s.Refresh(ctx)}
	}
}

// exportMarkdown writes the current deck as markdown. Without a deck it does
// nothing.
func (w *Workspace) exportMarkdown() tea.Cmd {
	deck, ok := w.store.Deck()
	if !ok {
		return nil
	}
	d := *deck
	dir := w.exportDir
	return func() tea.Msg {
		path, _, err := export.WriteMarkdown(dir, &d)
		return exportDoneMsg{kind: exportKindMarkdown, path: path, err: err}
	}
}

// download saves the server-hosted artifact. Without one it does nothing.
func (w *Workspace) download() tea.Cmd {
	ref, ok := w.store.ArtifactURL()
	if !ok || w.downloader == nil {
		return nil
	}
	dl := w.downloader
	dir := w.exportDir
	timeout := w.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		path, err := dl.Download(ctx, ref, dir)
		return exportDoneMsg{kind: exportKindDownload, path: path, err: err}
	}
}

// update handles the messages every page shares.
func (w *Workspace) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case generationDoneMsg:
		w.generating = false
		w.store.Apply(msg.outcome)
		return w.notices.push(generation.Classify(msg.outcome))

	case spinner.TickMsg:
		if !w.generating {
			return nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return cmd

	case noticeExpiredMsg:
		w.notices.expire(msg.id)
		return nil

	case sessionRefreshedMsg:
		if msg.err != nil {
			w.logger.Warn().Err(msg.err).Msg("session refresh failed")
			return w.notices.push(generation.Notice{
				Severity: generation.SeverityWarning,
				Text:     "No document loaded: " + userMessage(msg.err),
				Duration: generation.ErrorNoticeDuration,
			})
		}
		if info, ok := w.gate.Info(); ok {
			return w.notices.push(generation.Notice{
				Severity: generation.SeverityInfo,
				Text:     "Document ready: " + info.FileName,
				Duration: generation.InfoNoticeDuration,
			})
		}
		return nil

	case exportDoneMsg:
		if msg.err != nil {
			w.logger.Error().Err(msg.err).Str("kind", msg.kind).Msg("export failed")
			text := "Markdown export failed: "
			if msg.kind == exportKindDownload {
				text = "Download failed: "
			}
			return w.notices.push(generation.Notice{
				Severity: generation.SeverityError,
				Text:     text + userMessage(msg.err),
				Duration: generation.ErrorNoticeDuration,
			})
		}
		text := "Markdown saved to " + msg.path
		if msg.kind == exportKindDownload {
			text = "Presentation downloaded to " + msg.path
		}
		return w.notices.push(generation.Notice{
			Severity: generation.SeveritySuccess,
			Text:     text,
			Duration: generation.SuccessNoticeDuration,
		})
	}
	return nil
}

func userMessage(err error) string {
	var de *model.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
