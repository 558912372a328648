package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/slides/internal/generation"
)

// noticeExpiredMsg clears a notice once its display time has elapsed.
type noticeExpiredMsg struct{ id int }

// notifier shows at most one transient notice. A newer notice replaces the
// current one; a stale expiry never clears its successor.
type notifier struct {
	current *generation.Notice
	id      int
}

func (n *notifier) push(notice generation.Notice) tea.Cmd {
	n.id++
	n.current = &notice
	id := n.id
	d := notice.Duration
	if d <= 0 {
		d = generation.InfoNoticeDuration
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (n *notifier) expire(id int) {
	if id == n.id {
		n.current = nil
	}
}

func (n *notifier) active() (generation.Notice, bool) {
	if n.current == nil {
		return generation.Notice{}, false
	}
	return *n.current, true
}

func (n *notifier) view(width int) string {
	notice, ok := n.active()
	if !ok {
		return ""
	}
	var color lipgloss.Color
	icon := "ℹ"
	switch notice.Severity {
	case generation.SeveritySuccess:
		color, icon = ColorSuccess, "✓"
	case generation.SeverityWarning:
		color, icon = ColorWarning, "!"
	case generation.SeverityError:
		color, icon = ColorError, "✗"
	default:
		color = ColorAccent
	}
	style := lipgloss.NewStyle().
		Foreground(color).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1)
	if width > 4 {
		style = style.MaxWidth(width)
	}
	return style.Render(icon + " " + notice.Text)
}
