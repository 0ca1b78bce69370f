package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/router"
	"github.com/abhisek/timestables/internal/screen"
	"github.com/abhisek/timestables/internal/ui/components"
	"github.com/abhisek/timestables/internal/ui/layout"
	"github.com/abhisek/timestables/internal/ui/theme"
)

// StartFunc starts a game with the chosen settings.
type StartFunc func(problemgen.Settings) (screen.Screen, error)

// Field order on the screen.
const (
	fieldTable = iota
	fieldMax
	fieldQuestions
	fieldOrder
	fieldStart
	numFields
)

const labelWidth = 16

// minMaxMultiplier is the smallest "Up to ×" offered. A game up to ×2
// would only ever ask one question.
const minMaxMultiplier = 3

var orderOptions = []string{"In order", "Random"}

// SettingsScreen lets the player choose a table, range and length.
type SettingsScreen struct {
	table  components.Stepper
	max    components.Stepper
	count  components.Stepper
	order  components.Stepper
	start  StartFunc
	focus  int
	errMsg string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen showing initial.
func New(initial problemgen.Settings, start StartFunc) *SettingsScreen {

	counts := make([]string, 0, len(problemgen.AllQuestionCounts()))
	countIdx := 0
	for i, c := range problemgen.AllQuestionCounts() {
		counts = append(counts, c.DisplayName())
		if c == initial.Count {
			countIdx = i
		}
	}

	orderIdx := 0
	if initial.RandomOrder {
		orderIdx = 1
	}

	s := &SettingsScreen{
		table: components.NewStepper("Times table", factorOptions(problemgen.MinFactor), initial.Table-problemgen.MinFactor),
		max:   components.NewStepper("Up to ×", factorOptions(minMaxMultiplier), initial.MaxMultiplier-minMaxMultiplier),
		count: components.NewStepper("Questions", counts, countIdx),
		order: components.NewStepper("Order", orderOptions, orderIdx),
		start: start,
	}
	s.count.Wrap = true
	s.order.Wrap = true
	s.syncOrder()
	return s
}

// factorOptions lists lo..MaxFactor as stepper labels.
func factorOptions(lo int) []string {
	out := make([]string, 0, problemgen.MaxFactor-lo+1)
	for f := lo; f <= problemgen.MaxFactor; f++ {
		out = append(out, strconv.Itoa(f))
	}
	return out
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start game"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Settings returns the settings currently shown.
func (s *SettingsScreen) Settings() problemgen.Settings {
	return problemgen.Settings{
		Table:         s.table.Index + problemgen.MinFactor,
		MaxMultiplier: s.max.Index + minMaxMultiplier,
		Count:         problemgen.AllQuestionCounts()[s.count.Index],
		RandomOrder:   s.order.Index == 1,
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveFocus(-1)
		return s, nil
	case "down", "j", "tab":
		s.moveFocus(1)
		return s, nil
	case "enter":
		return s, s.startGame()
	}

	switch s.focus {
	case fieldTable:
		s.table, _ = s.table.Update(msg)
	case fieldMax:
		s.max, _ = s.max.Update(msg)
	case fieldQuestions:
		s.count, _ = s.count.Update(msg)
		s.syncOrder()
	case fieldOrder:
		s.order, _ = s.order.Update(msg)
	}
	s.errMsg = ""
	return s, nil
}

// moveFocus steps through the fields, skipping disabled ones.
func (s *SettingsScreen) moveFocus(delta int) {
	next := s.focus + delta
	if next == fieldOrder && s.order.Disabled {
		next += delta
	}
	if next < 0 || next >= numFields {
		return
	}
	s.focus = next
}

// syncOrder enables the order toggle only for All, since fixed-length
// games always draw random questions.
func (s *SettingsScreen) syncOrder() {
	s.order.Disabled = problemgen.AllQuestionCounts()[s.count.Index].Fixed()
}

func (s *SettingsScreen) startGame() tea.Cmd {
	if s.start == nil {
		return nil
	}
	game, err := s.start(s.Settings())
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	return func() tea.Msg { return router.PushScreenMsg{Screen: game} }
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Times Tables"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a table and press Enter to play"))
	b.WriteString("\n\n")

	fields := []string{
		s.table.View(s.focus == fieldTable, labelWidth),
		s.max.View(s.focus == fieldMax, labelWidth),
		s.count.View(s.focus == fieldQuestions, labelWidth),
		s.order.View(s.focus == fieldOrder, labelWidth),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(fields, "\n")))
	b.WriteString("\n\n")

	button := components.NewButton("Start game", s.focus == fieldStart)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button.View()))
	b.WriteString("\n\n")

	settings := s.Settings()
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d questions", settings.QuestionTotal())))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}
	return b.String()
}
