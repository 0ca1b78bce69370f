package game

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/router"
	"github.com/abhisek/timestables/internal/screen"
	sess "github.com/abhisek/timestables/internal/session"
	"github.com/abhisek/timestables/internal/ui/components"
	"github.com/abhisek/timestables/internal/ui/layout"
)

// Params carries everything a game needs besides its settings.
type Params struct {
	Options        sess.Options
	Source         problemgen.Source
	CorrectDelay   time.Duration
	IncorrectDelay time.Duration

	// Finish builds the screen that replaces the game once the last
	// answer's pause ends. A nil result pops back instead.
	Finish func(sum *sess.Summary) screen.Screen
}

// GameScreen implements screen.Screen for a game in progress.
type GameScreen struct {
	params  Params
	session *sess.Session
	logger  *zap.Logger

	grid        components.TileGrid
	input       components.TextInput
	outcome     *sess.Outcome
	seq         int
	confirmQuit bool
	hint        string
	errMsg      string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatusProvider = (*GameScreen)(nil)

// Start begins a new session with the given settings and wraps it in a
// game screen.
func Start(settings problemgen.Settings, p Params) (*GameScreen, error) {
	s, err := sess.Start(p.Source, settings, p.Options)
	if err != nil {
		return nil, err
	}
	return New(s, p), nil
}

// New creates a GameScreen for an already started session.
func New(s *sess.Session, p Params) *GameScreen {
	logger := p.Options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &GameScreen{
		params:  p,
		session: s,
		logger:  logger.With(zap.String("session_id", s.ID())),
	}
	g.resetQuestion()
	return g
}

func (g *GameScreen) Init() tea.Cmd {
	return g.input.Init()
}

func (g *GameScreen) Title() string {
	return fmt.Sprintf("%d times table", g.session.Settings().Table)
}

func (g *GameScreen) Status() string {
	idx, total := g.session.Progress()
	return fmt.Sprintf("Score %d · Q %d/%d", g.session.Score(), idx+1, total)
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	switch {
	case g.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case g.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	case g.outcome != nil:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "0-9", Description: "Type"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if msg.seq != g.seq || g.outcome == nil {
			return g, nil
		}
		return g.next()

	case tea.KeyPressMsg:
		return g.handleKey(msg)
	}
	return g, nil
}

func (g *GameScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if g.errMsg != "" {
		return g, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if g.confirmQuit {
		switch key {
		case "y", "Y":
			idx, total := g.session.Progress()
			g.logger.Info("game abandoned",
				zap.Int("question", idx+1),
				zap.Int("total", total),
				zap.Int("score", g.session.Score()))
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			g.confirmQuit = false
		}
		return g, nil
	}

	// Feedback pause: Enter skips the wait.
	if g.outcome != nil {
		switch key {
		case "enter", "space":
			return g.next()
		case "esc":
			g.confirmQuit = true
		}
		return g, nil
	}

	switch key {
	case "esc":
		g.confirmQuit = true
		return g, nil
	case "enter":
		return g.submit()
	case "up", "down", "left", "right":
		g.grid, _ = g.grid.Update(msg)
		g.input.Reset()
		g.hint = ""
		return g, nil
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	g.hint = ""
	if v, err := g.input.NumericValue(); err == nil {
		g.grid.Focus(v)
	}
	return g, cmd
}

// pick returns the value to submit: the typed number if any, otherwise
// the tile under the cursor.
func (g *GameScreen) pick() (int, bool) {
	if g.input.Value() != "" {
		v, err := g.input.NumericValue()
		if err != nil {
			g.input.Reset()
			return 0, false
		}
		return v, true
	}

	c, ok := g.grid.Selected()
	if !ok {
		return 0, false
	}
	if !c.IsNumber() {
		g.hint = fmt.Sprintf("That's a %s! Pick a number.", c.Decoy)
		return 0, false
	}
	return c.Value, true
}

func (g *GameScreen) submit() (screen.Screen, tea.Cmd) {
	value, ok := g.pick()
	if !ok {
		return g, nil
	}

	out, err := g.session.SubmitAnswer(value)
	if err != nil {
		if errors.Is(err, sess.ErrIllegalTransition) {
			g.hint = fmt.Sprintf("%d isn't on the board.", value)
			g.input.Reset()
			return g, nil
		}
		g.errMsg = err.Error()
		return g, nil
	}

	g.outcome = &out
	g.grid.Set = out.AnswerSet
	g.input.Model.SetValue(fmt.Sprint(out.Chosen))
	g.input.Submit(out.Correct)
	g.seq++

	delay := g.params.IncorrectDelay
	if out.Correct {
		delay = g.params.CorrectDelay
	}
	seq := g.seq
	return g, tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

// next leaves the feedback pause: on to the next question, or to the
// game-over screen after the last one.
func (g *GameScreen) next() (screen.Screen, tea.Cmd) {
	if g.outcome.Status.Finished {
		var over screen.Screen
		if g.params.Finish != nil {
			over = g.params.Finish(g.session.Summary())
		}
		g.outcome = nil
		if over == nil {
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return g, func() tea.Msg { return router.ReplaceScreenMsg{Screen: over} }
	}

	if err := g.session.Advance(); err != nil {
		g.errMsg = err.Error()
		return g, nil
	}
	g.resetQuestion()
	return g, g.input.Init()
}

func (g *GameScreen) resetQuestion() {
	g.grid = components.NewTileGrid(g.session.CurrentAnswerSet(), layout.GridColumns)
	g.input = components.NewTextInput("?", true, 3)
	g.outcome = nil
	g.hint = ""
}
