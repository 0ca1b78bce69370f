package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/ui/components"
	"github.com/abhisek/timestables/internal/ui/layout"
	"github.com/abhisek/timestables/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	if g.errMsg != "" {
		return renderError(width, g.errMsg)
	}
	if g.confirmQuit {
		return renderQuitConfirm(width)
	}

	gap := "\n\n"
	if layout.IsCompactHeight(height) {
		gap = "\n"
	}

	var b strings.Builder

	prompt := g.session.Prompt() + " " + g.input.View()
	b.WriteString(theme.Prompt.Width(width).Render(prompt))
	b.WriteString(gap)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.grid.View()))
	b.WriteString(gap)

	b.WriteString(g.renderBanner(width))
	b.WriteString(gap)

	b.WriteString(g.renderProgress(width))
	return b.String()
}

// renderBanner shows the answer feedback, or a hint while answering.
func (g *GameScreen) renderBanner(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if g.outcome == nil {
		return center.Inherit(theme.Hint).Render(g.hint)
	}
	if g.outcome.Correct {
		return center.Inherit(theme.Correct).Render("Correct!")
	}
	return center.Inherit(theme.Incorrect).Render(
		fmt.Sprintf("Incorrect. The answer is %d.", g.outcome.Answer))
}

func (g *GameScreen) renderProgress(width int) string {
	idx, total := g.session.Progress()
	answered := idx
	if g.session.Answered() {
		answered++
	}

	score := lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Score: %d    Question %d of %d", g.session.Score(), idx+1, total))

	bar := components.NewProgressBar(answered, total, min(width-8, 40)).View()

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, score+"   "+bar)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("End this game?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Your score won't be kept."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, end game"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep playing"))
	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
