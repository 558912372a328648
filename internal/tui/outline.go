package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/slides/internal/model"
)

// slidePoints returns the slide's non-blank content lines.
func slidePoints(content []string) []string {
	out := make([]string, 0, len(content))
	for _, line := range content {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// renderOutline draws one bar per slide, sized by its number of points,
// with the current slide highlighted.
func renderOutline(slides []model.Slide, current, width, height int) string {
	if len(slides) == 0 {
		return mutedStyle.Render("No slides")
	}
	chartHeight := height - 2
	if chartHeight < 3 {
		chartHeight = 3
	}
	if width < 8 {
		width = 8
	}

	// Two columns per bar: bar plus gap.
	maxBars := width / 2
	start := 0
	if len(slides) > maxBars {
		start = current - maxBars/2
		if start < 0 {
			start = 0
		}
		if start+maxBars > len(slides) {
			start = len(slides) - maxBars
		}
	}
	end := min(len(slides), start+maxBars)

	bc := barchart.New(width, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)

	normal := lipgloss.NewStyle().Foreground(ColorBar).Background(ColorBar)
	highlight := lipgloss.NewStyle().Foreground(ColorAccent).Background(ColorAccent)
	for i := start; i < end; i++ {
		style := normal
		if i == current {
			style = highlight
		}
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: fmt.Sprintf("%d", i+1), Value: float64(len(slidePoints(slides[i].Content))), Style: style},
			},
		})
	}
	bc.Draw()

	points := len(slidePoints(slides[current].Content))
	legend := mutedStyle.Render(fmt.Sprintf("slide %d · %d points", current+1, points))
	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), legend)
}
