package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/session"
)

// isolate keeps Load away from the developer's own config directory.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
}

func TestDefault(t *testing.T) {
	require.NotPanics(t, func() { Default() })
	cfg := Default()

	assert.Equal(t, "local", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 750*time.Millisecond, cfg.Feedback.CorrectDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Feedback.IncorrectDelay)
	require.NoError(t, cfg.Validate())

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, problemgen.DefaultSettings(), settings)

	opts, err := cfg.SessionOptions()
	require.NoError(t, err)
	assert.Equal(t, session.DefaultDistractorCount, opts.DistractorCount)
	assert.Equal(t, session.DefaultDecoyCount, opts.DecoyCount)
	assert.Equal(t, session.CanonicalRules(), opts.Rules)
	assert.True(t, opts.FlipDisplay)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "timestables.yaml")
	content := `
env: production
game:
  table: 9
  max_multiplier: 12
  questions: all
  random_order: false
answers:
  decoys: 0
  decoys_on_wrong: wrong-chosen
feedback:
  correct_delay: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 250*time.Millisecond, cfg.Feedback.CorrectDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Feedback.IncorrectDelay)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, problemgen.Settings{Table: 9, MaxMultiplier: 12, Count: problemgen.CountAll}, settings)
	assert.Equal(t, 11, settings.QuestionTotal())

	opts, err := cfg.SessionOptions()
	require.NoError(t, err)
	assert.Equal(t, 0, opts.DecoyCount)
	assert.Equal(t, session.ClassicRules(), opts.Rules)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Chdir(t.TempDir())
	t.Setenv("TIMESTABLES_GAME_TABLE", "6")
	t.Setenv("TIMESTABLES_GAME_QUESTIONS", "20")
	t.Setenv("TIMESTABLES_GAME_SEED", "42")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Game.Table)
	assert.Equal(t, "20", cfg.Game.Questions)
	assert.Equal(t, uint64(42), cfg.Game.Seed)

	// A fixed seed gives a repeatable source.
	a, b := cfg.Source(), cfg.Source()
	assert.Equal(t, a.IntN(1000), b.IntN(1000))
}

func TestLoad_DefersValidation(t *testing.T) {
	isolate(t)
	t.Chdir(t.TempDir())
	t.Setenv("TIMESTABLES_GAME_TABLE", "13")

	cfg, err := Load("")
	require.NoError(t, err, "an out-of-range value can still be overridden later")
	assert.Equal(t, 13, cfg.Game.Table)
	assert.ErrorIs(t, cfg.Validate(), problemgen.ErrInvalidSettings)

	cfg.Game.Table = 7
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		is     error
	}{
		{"bad table", func(c *Config) { c.Game.Table = 13 }, problemgen.ErrInvalidSettings},
		{"bad max", func(c *Config) { c.Game.MaxMultiplier = 1 }, problemgen.ErrInvalidSettings},
		{"bad questions", func(c *Config) { c.Game.Questions = "7" }, problemgen.ErrInvalidSettings},
		{"too many distractors", func(c *Config) { c.Answers.Distractors = 500 }, problemgen.ErrInsufficientDistractors},
		{"too many decoys", func(c *Config) { c.Answers.Decoys = 500 }, problemgen.ErrInsufficientDecoys},
		{"bad effect", func(c *Config) { c.Answers.DecoysOnWrong = "sparkle" }, nil},
		{"negative delay", func(c *Config) { c.Feedback.CorrectDelay = -time.Second }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
