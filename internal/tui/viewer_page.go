package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	outlineWidth  = 24
	viewerChrome  = 12
	minBodyHeight = 4
)

// ViewerPage shows one slide at a time with navigation and export controls.
type ViewerPage struct {
	ws     *Workspace
	keys   KeyMap
	body   viewport.Model
	width  int
	height int
}

// NewViewerPage creates the viewer page over the shared workspace.
func NewViewerPage(ws *Workspace, keys KeyMap) *ViewerPage {
	return &ViewerPage{
		ws:   ws,
		keys: keys,
		body: viewport.New(60, 10),
	}
}

func (p *ViewerPage) ID() string { return PageViewer }

func (p *ViewerPage) Init() tea.Cmd {
	p.syncBody()
	return nil
}

func (p *ViewerPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	cmd := p.ws.update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.resize()
		p.syncBody()
		return cmd, nil

	case generationDoneMsg:
		p.syncBody()
		return cmd, nil

	case tea.KeyMsg:
		keyCmd, nav := p.handleKey(msg)
		return tea.Batch(cmd, keyCmd), nav
	}
	return cmd, nil
}

func (p *ViewerPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	switch {
	case key.Matches(msg, p.keys.ForceQuit), key.Matches(msg, p.keys.Quit):
		return tea.Quit, nil
	}
	if p.ws.generating {
		return nil, nil
	}

	store := p.ws.store
	nav := store.Navigator()
	switch {
	case key.Matches(msg, p.keys.PrevSlide):
		nav.Previous()
		p.syncBody()
	case key.Matches(msg, p.keys.NextSlide):
		nav.Next()
		p.syncBody()
	case key.Matches(msg, p.keys.FirstSlide):
		nav.First()
		p.syncBody()
	case key.Matches(msg, p.keys.LastSlide):
		nav.Last()
		p.syncBody()
	case key.Matches(msg, p.keys.ExportMarkdown):
		return p.ws.exportMarkdown(), nil
	case key.Matches(msg, p.keys.Download):
		return p.ws.download(), nil
	case key.Matches(msg, p.keys.Regenerate):
		return p.ws.regenerate(), nil
	case key.Matches(msg, p.keys.NewDeck):
		store.Clear()
		return nil, &PageNav{PageID: PageConfigure}
	case key.Matches(msg, p.keys.ScrollUp), key.Matches(msg, p.keys.ScrollDown):
		var cmd tea.Cmd
		p.body, cmd = p.body.Update(msg)
		return cmd, nil
	}
	return nil, nil
}

func (p *ViewerPage) resize() {
	w := p.width - outlineWidth - 10
	if w < 20 {
		w = 20
	}
	h := p.height - viewerChrome
	if h < minBodyHeight {
		h = minBodyHeight
	}
	p.body.Width = w
	p.body.Height = h
}

// syncBody loads the current slide into the viewport.
func (p *ViewerPage) syncBody() {
	slide, _, ok := p.ws.store.CurrentSlide()
	if !ok {
		p.body.SetContent("")
		return
	}
	var b strings.Builder
	b.WriteString(slideTitleStyle.Render(slide.Title))
	b.WriteString("\n")
	points := slidePoints(slide.Content)
	if len(points) == 0 {
		b.WriteString(mutedStyle.Render("(no content)"))
	}
	for _, pt := range points {
		b.WriteString(bulletStyle.Width(p.body.Width).Render("• " + pt))
		b.WriteString("\n")
	}
	p.body.SetContent(b.String())
	p.body.GotoTop()
}

func (p *ViewerPage) View(width, height int) string {
	deck, ok := p.ws.store.Deck()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			mutedStyle.Render("No presentation. Press n to configure one."))
	}

	header := headerStyle.Render(deck.Title)
	if p.ws.store.UsedFallback() {
		header += " " + badgeWarning.Render("FALLBACK")
	}
	header += mutedStyle.Render(fmt.Sprintf("  %s theme", deck.Theme))

	var main string
	nav := p.ws.store.Navigator()
	idx, hasSlide := nav.Current()
	if !hasSlide {
		main = panelStyle.Width(p.body.Width).Height(p.body.Height).
			Render(mutedStyle.Render("This presentation has no slides."))
	} else {
		counter := mutedStyle.Render(fmt.Sprintf("Slide %d of %d", idx+1, nav.Count()))
		slidePanel := activePanel.Render(counter + "\n" + p.body.View())
		outline := panelStyle.Width(outlineWidth).Render(
			mutedStyle.Render("Outline") + "\n" +
				renderOutline(deck.Slides, idx, outlineWidth-2, p.body.Height),
		)
		main = lipgloss.JoinHorizontal(lipgloss.Top, slidePanel, " ", outline)
	}

	sections := []string{header, "", main, "", p.renderControls()}
	if p.ws.generating {
		sections = append(sections, "", p.ws.spinner.View()+" "+textStyle.Render("Regenerating presentation..."))
	}
	if n := p.ws.notices.view(width - 4); n != "" {
		sections = append(sections, "", n)
	}
	sections = append(sections, "", p.renderHelp())

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (p *ViewerPage) renderControls() string {
	nav := p.ws.store.Navigator()
	busy := p.ws.generating
	_, hasArtifact := p.ws.store.ArtifactURL()

	button := func(label string, enabled bool) string {
		if !enabled || busy {
			return buttonDisabled.Render(label)
		}
		return buttonStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		button("◀ Prev", !nav.AtFirst()), " ",
		button("Next ▶", !nav.AtLast()), "   ",
		button("Export .md", true), " ",
		button("Download", hasArtifact),
	)
}

func (p *ViewerPage) renderHelp() string {
	bindings := []key.Binding{
		p.keys.PrevSlide, p.keys.NextSlide, p.keys.FirstSlide, p.keys.LastSlide,
		p.keys.ExportMarkdown,
	}
	if _, ok := p.ws.store.ArtifactURL(); ok {
		bindings = append(bindings, p.keys.Download)
	}
	bindings = append(bindings, p.keys.Regenerate, p.keys.NewDeck, p.keys.Quit)
	return renderHelpLine(bindings)
}
