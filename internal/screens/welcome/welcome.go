package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/router"
	"github.com/abhisek/timestables/internal/screen"
	"github.com/abhisek/timestables/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	// fillEnd is when every product of the splash grid is showing.
	fillEnd = time.Duration(gridSize*gridSize) * tickInterval
	// titleEnd is when the rotating facts and the key hint appear.
	titleEnd = fillEnd + 600*time.Millisecond
	totalDur = 4500 * time.Millisecond

	// factTicks is how long each fact stays up.
	factTicks = 10
)

// gridFactors label the rows and columns of the splash grid.
var gridFactors = []int{2, 3, 4}

const gridSize = 3

// facts rotate under the title once the grid is complete.
var facts = [][2]int{{7, 8}, {6, 9}, {12, 12}, {8, 4}, {9, 11}}

type tickMsg time.Time

// WelcomeScreen fills in a small multiplication grid one product per tick,
// then shows the title and a rotating fact until a key is pressed.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with nextFactory's
// screen on the first key press.
func New(nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{nextFactory: nextFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// revealed is the number of grid products showing.
func (w *WelcomeScreen) revealed() int {
	return min(int(w.elapsed/tickInterval), gridSize*gridSize)
}

// fact returns the fact currently shown under the title.
func (w *WelcomeScreen) fact() string {
	f := facts[(w.tickCount/factTicks)%len(facts)]
	return fmt.Sprintf("%d × %d = %d", f[0], f[1], f[0]*f[1])
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{renderGrid(w.revealed())}

	if w.elapsed >= fillEnd {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("How fast can you multiply?")
		sections = append(sections, "", RenderBanner(width), "", tagline)
	}

	if w.elapsed >= titleEnd {
		fact := lipgloss.NewStyle().Foreground(theme.Secondary).Render(w.fact())
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to start")
		sections = append(sections, "", fact, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderGrid draws the splash grid with the first n products filled in,
// row by row. The newest product is highlighted.
func renderGrid(n int) string {
	frame := lipgloss.NewStyle().Foreground(theme.Primary)
	head := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	product := lipgloss.NewStyle().Foreground(theme.Text)
	newest := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	blank := lipgloss.NewStyle().Foreground(theme.TextFaded)

	cell := func(s string) string { return fmt.Sprintf("%3s ", s) }
	rule := func(l, m, r string) string {
		return frame.Render(l + strings.Repeat("────"+m, gridSize) + "────" + r)
	}
	bar := frame.Render("│")

	var b strings.Builder
	b.WriteString(rule("┌", "┬", "┐") + "\n")
	b.WriteString(bar + head.Render(cell("×")))
	for _, f := range gridFactors {
		b.WriteString(bar + head.Render(cell(fmt.Sprint(f))))
	}
	b.WriteString(bar + "\n")

	for i, row := range gridFactors {
		b.WriteString(rule("├", "┼", "┤") + "\n")
		b.WriteString(bar + head.Render(cell(fmt.Sprint(row))))
		for j, col := range gridFactors {
			pos := i*gridSize + j
			switch {
			case pos >= n:
				b.WriteString(bar + blank.Render(cell("·")))
			case pos == n-1 && n < gridSize*gridSize:
				b.WriteString(bar + newest.Render(cell(fmt.Sprint(row*col))))
			default:
				b.WriteString(bar + product.Render(cell(fmt.Sprint(row*col))))
			}
		}
		b.WriteString(bar + "\n")
	}
	b.WriteString(rule("└", "┴", "┘"))
	return b.String()
}
