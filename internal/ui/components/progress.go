package components

import (
	"strings"

	"github.com/abhisek/timestables/internal/ui/theme"
)

// ProgressBar shows how many of a game's questions have been answered.
type ProgressBar struct {
	Answered int
	Total    int
	Width    int
}

// NewProgressBar creates a progress bar of the given cell width.
func NewProgressBar(answered, total, width int) ProgressBar {
	return ProgressBar{Answered: answered, Total: total, Width: width}
}

// Filled returns the number of filled cells.
func (p ProgressBar) Filled() int {
	width := max(p.Width, 4)
	if p.Total <= 0 {
		return 0
	}
	return min(max(width*p.Answered/p.Total, 0), width)
}

// View renders the bar.
func (p ProgressBar) View() string {
	width := max(p.Width, 4)
	filled := p.Filled()
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", width-filled))
}
