package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding

	// Configure page
	NextField      key.Binding
	Generate       key.Binding
	FewerSlides    key.Binding
	MoreSlides     key.Binding
	RefreshSession key.Binding
	Blur           key.Binding

	// Viewer page
	PrevSlide      key.Binding
	NextSlide      key.Binding
	FirstSlide     key.Binding
	LastSlide      key.Binding
	ScrollUp       key.Binding
	ScrollDown     key.Binding
	ExportMarkdown key.Binding
	Download       key.Binding
	Regenerate     key.Binding
	NewDeck        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		FewerSlides: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("←/-", "fewer slides"),
		),
		MoreSlides: key.NewBinding(
			key.WithKeys("right", "+", "="),
			key.WithHelp("→/+", "more slides"),
		),
		RefreshSession: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh document"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave topic"),
		),

		PrevSlide: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous"),
		),
		NextSlide: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l", "next"),
		),
		FirstSlide: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first"),
		),
		LastSlide: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		ExportMarkdown: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export .md"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download file"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "regenerate"),
		),
		NewDeck: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new presentation"),
		),
	}
}
