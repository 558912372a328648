package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/slides/internal/model"
)

// Page identifiers.
const (
	PageConfigure = "configure"
	PageViewer    = "viewer"
)

type configureField int

const (
	fieldTopic configureField = iota
	fieldSlides
	fieldGenerate
	fieldCount
)

// ConfigurePage collects the optional topic and slide count and starts
// generation.
type ConfigurePage struct {
	ws     *Workspace
	keys   KeyMap
	topic  textinput.Model
	slides int
	focus  configureField
	width  int
	height int
}

// NewConfigurePage creates the configure page over the shared workspace.
func NewConfigurePage(ws *Workspace, keys KeyMap) *ConfigurePage {
	ti := textinput.New()
	ti.Placeholder = "Optional topic, e.g. quarterly results"
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	return &ConfigurePage{
		ws:     ws,
		keys:   keys,
		topic:  ti,
		slides: ws.maxSlides,
	}
}

func (p *ConfigurePage) ID() string { return PageConfigure }

func (p *ConfigurePage) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, p.ws.refreshSession())
}

func (p *ConfigurePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	cmd := p.ws.update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		return cmd, nil

	case generationDoneMsg:
		if msg.outcome.OK() {
			return cmd, &PageNav{PageID: PageViewer}
		}
		return cmd, nil

	case tea.KeyMsg:
		return p.handleKey(msg), nil
	}

	if p.focus == fieldTopic {
		var tiCmd tea.Cmd
		p.topic, tiCmd = p.topic.Update(msg)
		return tea.Batch(cmd, tiCmd), nil
	}
	return cmd, nil
}

func (p *ConfigurePage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, p.keys.ForceQuit) {
		return tea.Quit
	}
	// Controls are locked while a request is outstanding.
	if p.ws.generating {
		return nil
	}

	switch {
	case key.Matches(msg, p.keys.NextField):
		if msg.String() == "shift+tab" {
			p.setFocus((p.focus + fieldCount - 1) % fieldCount)
		} else {
			p.setFocus((p.focus + 1) % fieldCount)
		}
		return nil
	case key.Matches(msg, p.keys.Generate):
		return p.ws.generate(p.topic.Value(), p.slides)
	}

	if p.focus == fieldTopic {
		if key.Matches(msg, p.keys.Blur) {
			p.setFocus(fieldSlides)
			return nil
		}
		var cmd tea.Cmd
		p.topic, cmd = p.topic.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, p.keys.Quit):
		return tea.Quit
	case key.Matches(msg, p.keys.RefreshSession):
		return p.ws.refreshSession()
	case key.Matches(msg, p.keys.FewerSlides):
		p.slides = model.ClampSlides(p.slides - 1)
	case key.Matches(msg, p.keys.MoreSlides):
		p.slides = model.ClampSlides(p.slides + 1)
	}
	return nil
}

func (p *ConfigurePage) setFocus(f configureField) {
	p.focus = f
	if f == fieldTopic {
		p.topic.Focus()
	} else {
		p.topic.Blur()
	}
}

func (p *ConfigurePage) View(width, height int) string {
	contentWidth := min(max(width-4, 40), 80)

	sections := []string{
		headerStyle.Render("slides") + mutedStyle.Render("  presentation generator"),
		"",
		p.renderDocument(contentWidth),
		"",
		p.renderField(fieldTopic, "Topic", p.topic.View(), contentWidth),
		p.renderField(fieldSlides, "Slides", p.renderSlider(), contentWidth),
		"",
		p.renderGenerate(),
	}
	if p.ws.generating {
		sections = append(sections, "", p.ws.spinner.View()+" "+textStyle.Render("Generating presentation..."))
	}
	if n := p.ws.notices.view(contentWidth); n != "" {
		sections = append(sections, "", n)
	}
	sections = append(sections, "", p.renderHelp())

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (p *ConfigurePage) renderDocument(width int) string {
	info, ok := p.ws.gate.Info()
	if !ok {
		msg := lipgloss.JoinVertical(lipgloss.Left,
			textStyle.Render("No document loaded"),
			mutedStyle.Render("Upload a document, then press r to refresh."),
		)
		return panelStyle.Width(width).Render(msg)
	}
	lines := []string{
		titleStyle.Render(info.FileName),
		mutedStyle.Render(fmt.Sprintf("%d words · %d pages", info.WordCount, info.PageCount)),
		mutedStyle.Render("session " + info.SessionID),
	}
	return panelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (p *ConfigurePage) renderField(f configureField, label, content string, width int) string {
	style := panelStyle
	if p.focus == f && !p.ws.generating {
		style = activePanel
	}
	return style.Width(width).Render(mutedStyle.Render(label) + "\n" + content)
}

func (p *ConfigurePage) renderSlider() string {
	const track = model.MaxSlides - model.MinSlides + 1
	pos := p.slides - model.MinSlides
	var b strings.Builder
	for i := 0; i < track; i++ {
		switch {
		case i == pos:
			b.WriteString(headerStyle.Render("●"))
		case i < pos:
			b.WriteString(headerStyle.Render("━"))
		default:
			b.WriteString(mutedStyle.Render("─"))
		}
	}
	return fmt.Sprintf("%s %s  %s",
		mutedStyle.Render(fmt.Sprintf("%d", model.MinSlides)),
		b.String(),
		titleStyle.Render(fmt.Sprintf("%d", p.slides))+mutedStyle.Render(fmt.Sprintf(" / %d", model.MaxSlides)),
	)
}

func (p *ConfigurePage) renderGenerate() string {
	label := "Generate presentation"
	if p.ws.generating {
		label = "Generating..."
	}
	if p.ws.generating || !p.ws.gate.IsReady() {
		return buttonDisabled.Render(label)
	}
	if p.focus == fieldGenerate {
		return buttonStyle.Underline(true).Render(label)
	}
	return buttonStyle.Render(label)
}

func (p *ConfigurePage) renderHelp() string {
	bindings := []key.Binding{p.keys.NextField, p.keys.Generate}
	if p.focus == fieldTopic {
		bindings = append(bindings, p.keys.Blur)
	} else {
		bindings = append(bindings, p.keys.FewerSlides, p.keys.MoreSlides, p.keys.RefreshSession, p.keys.Quit)
	}
	return renderHelpLine(bindings)
}

func renderHelpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, textStyle.Render(h.Key)+" "+mutedStyle.Render(h.Desc))
	}
	return strings.Join(parts, mutedStyle.Render(" • "))
}
