package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/router"
	"github.com/abhisek/timestables/internal/screen"
	"github.com/abhisek/timestables/internal/screens/game"
	"github.com/abhisek/timestables/internal/screens/gameover"
	"github.com/abhisek/timestables/internal/screens/settings"
	"github.com/abhisek/timestables/internal/screens/welcome"
	"github.com/abhisek/timestables/internal/session"
	"github.com/abhisek/timestables/internal/ui/layout"
)

// Options holds the dependencies and initial values for the TUI.
type Options struct {
	// Settings pre-fills the settings screen.
	Settings problemgen.Settings

	Session        session.Options
	Source         problemgen.Source
	CorrectDelay   time.Duration
	IncorrectDelay time.Duration
	Logger         *zap.Logger

	// SkipSplash opens the settings screen directly.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screens together: settings pushes a game, a
// finished game is replaced by its game-over screen, and "Play again"
// replaces that with a fresh game.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Source == nil {
		opts.Source = problemgen.NewRandomSource()
	}
	if opts.Session.Logger == nil {
		opts.Session.Logger = opts.Logger
	}

	params := game.Params{
		Options:        opts.Session,
		Source:         opts.Source,
		CorrectDelay:   opts.CorrectDelay,
		IncorrectDelay: opts.IncorrectDelay,
	}
	start := func(s problemgen.Settings) (screen.Screen, error) {
		g, err := game.Start(s, params)
		if err != nil {
			opts.Logger.Warn("game start failed", zap.Error(err))
			return nil, err
		}
		return g, nil
	}
	params.Finish = func(sum *session.Summary) screen.Screen {
		return gameover.New(sum, func(prev *session.Summary) (screen.Screen, error) {
			return start(prev.Settings)
		})
	}

	settingsScreen := settings.New(opts.Settings, start)
	var initial screen.Screen = settingsScreen
	if !opts.SkipSplash {
		initial = welcome.New(func() screen.Screen { return settingsScreen })
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if frame := m.render(); frame != "" {
		v.SetContent(frame)
	}
	return v
}

// render draws the header, active screen and footer for the current
// window size. It is empty until the first resize.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
