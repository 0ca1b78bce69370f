package gameover

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/router"
	"github.com/abhisek/timestables/internal/screen"
	"github.com/abhisek/timestables/internal/session"
	"github.com/abhisek/timestables/internal/ui/components"
	"github.com/abhisek/timestables/internal/ui/layout"
	"github.com/abhisek/timestables/internal/ui/theme"
)

// ReplayFunc starts a new game with the given settings.
type ReplayFunc func(sum *session.Summary) (screen.Screen, error)

// GameOverScreen shows the final score and offers another round.
type GameOverScreen struct {
	summary *session.Summary
	replay  ReplayFunc
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*GameOverScreen)(nil)
var _ screen.KeyHintProvider = (*GameOverScreen)(nil)

// New creates a GameOverScreen. replay may be nil, which disables
// "Play again".
func New(summary *session.Summary, replay ReplayFunc) *GameOverScreen {
	s := &GameOverScreen{summary: summary, replay: replay}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Play again", Shortcut: "p", Action: s.playAgain, Disabled: replay == nil},
		{Label: "Exit", Shortcut: "x", Action: exit},
	})
	return s
}

func (s *GameOverScreen) Init() tea.Cmd {
	return nil
}

func (s *GameOverScreen) Title() string {
	return "Game Over"
}

func (s *GameOverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "P", Description: "Play again"},
		{Key: "Esc", Description: "Settings"},
	}
}

func (s *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return s, exit()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *GameOverScreen) playAgain() tea.Cmd {
	next, err := s.replay(s.summary)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// exit returns to the settings screen underneath.
func exit() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *GameOverScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Title).Render("Game over!"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("You scored %d out of %d", sum.Score, sum.Total)))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Accuracy: %.0f%%    Time: %d:%02d", sum.Accuracy*100, mins, secs)))
	b.WriteString("\n\n")

	if best := sum.BestStreak(); session.StreakMilestone(best) > 0 {
		b.WriteString(center.Foreground(theme.Secondary).Render(
			fmt.Sprintf("Best streak: %d in a row!", best)))
		b.WriteString("\n\n")
	}

	card := theme.Card.Render(renderRecap(sum))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if q, ok := sum.PracticeNext(); ok {
		b.WriteString(center.Foreground(theme.Accent).Render(
			fmt.Sprintf("Practise %d × %d next time", q.Multiplicand, q.Multiplier)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(center.Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}

// renderRecap lists every question with the player's answer.
func renderRecap(sum *session.Summary) string {
	lines := make([]string, 0, len(sum.Results))
	for _, r := range sum.Results {
		line := fmt.Sprintf("%s %d", r.Question.Text(r.Flipped), r.Question.Answer())
		if r.Correct {
			lines = append(lines, theme.Correct.Render("✓ "+line))
		} else {
			lines = append(lines, theme.Incorrect.Render(
				fmt.Sprintf("✗ %s  (you said %d)", line, r.Chosen)))
		}
	}
	return strings.Join(lines, "\n")
}
