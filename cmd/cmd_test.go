package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/session"
)

// newTestCmd returns a command with the game flags parsed from args, run
// from an empty directory so no config file is picked up.
func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	cmd := &cobra.Command{Use: "test"}
	addGameFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newTestCmd(t))
	require.NoError(t, err)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, problemgen.DefaultSettings(), settings)
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, err := loadConfig(newTestCmd(t, "--table", "7", "--max", "12", "--questions", "all", "--ordered", "--seed", "9"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Game.Table)
	assert.Equal(t, 12, cfg.Game.MaxMultiplier)
	assert.Equal(t, "all", cfg.Game.Questions)
	assert.False(t, cfg.Game.RandomOrder)
	assert.Equal(t, uint64(9), cfg.Game.Seed)
}

func TestLoadConfig_PresetThenFlags(t *testing.T) {
	preset := filepath.Join(t.TempDir(), "nines.json")
	require.NoError(t, os.WriteFile(preset, []byte(`{"table": 9, "questions": "20"}`), 0o600))

	cfg, err := loadConfig(newTestCmd(t, "--preset", preset, "--questions", "5"))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Game.Table, "from the preset")
	assert.Equal(t, "5", cfg.Game.Questions, "flags win over the preset")
}

func TestLoadConfig_FlagOverridesBadEnv(t *testing.T) {
	cmd := newTestCmd(t, "--table", "7")
	t.Setenv("TIMESTABLES_GAME_TABLE", "13")

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Game.Table)

	_, err = loadConfig(newTestCmd(t))
	assert.ErrorIs(t, err, problemgen.ErrInvalidSettings, "without the flag the bad value is rejected")
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(newTestCmd(t, "--table", "13"))
	assert.ErrorIs(t, err, problemgen.ErrInvalidSettings)

	_, err = loadConfig(newTestCmd(t, "--questions", "7"))
	assert.Error(t, err)
}

func TestDisplayVersion(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	tests := []struct {
		in, want string
	}{
		{"(devel)", "(devel)"},
		{"1.2", "v1.2.0"},
		{"v0.3.1", "v0.3.1"},
		{"v1.0.0+build.5", "v1.0.0"},
	}
	for _, tt := range tests {
		version = tt.in
		assert.Equal(t, tt.want, displayVersion(), "version %q", tt.in)
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.True(t, strings.HasPrefix(out.String(), "timestables "))
}

// drillSession starts 3×2 .. 3×5 in order with every product on the board.
func drillSession(t *testing.T) *session.Session {
	t.Helper()
	opts := session.DefaultOptions()
	opts.DecoyCount = 0
	opts.DistractorCount = len(problemgen.Products()) - 1
	opts.FlipDisplay = false

	s, err := session.Start(problemgen.NewSource(2),
		problemgen.Settings{Table: 3, MaxMultiplier: 5, Count: problemgen.CountAll}, opts)
	require.NoError(t, err)
	return s
}

func TestPlayDrill(t *testing.T) {
	s := drillSession(t)
	in := strings.NewReader("6\nnine\n13\n100\n12\n15\n")
	var out bytes.Buffer

	require.NoError(t, playDrill(s, in, &out))

	text := out.String()
	assert.Contains(t, text, "── Question 1/4 ──")
	assert.Contains(t, text, "3 × 2 =")
	assert.Contains(t, text, "✓ Correct!")
	assert.Contains(t, text, "Type one of the numbers.")
	assert.Contains(t, text, "13 isn't on the board.")
	assert.Contains(t, text, "✗ Incorrect. The answer is 9.")
	assert.Contains(t, text, "You scored 3 out of 4")
	assert.Contains(t, text, "3 × 3 = 9 (you said 100)")
	assert.True(t, s.Finished())
}

func TestPlayDrill_InputClosed(t *testing.T) {
	s := drillSession(t)
	var out bytes.Buffer

	require.NoError(t, playDrill(s, strings.NewReader("6\n"), &out))
	assert.Contains(t, out.String(), "(input closed)")
	assert.False(t, s.Finished())
	assert.Equal(t, 1, s.Score())
}

func TestFormatGrid(t *testing.T) {
	set := problemgen.AnswerSet{
		problemgen.NumberCandidate(6),
		problemgen.DecoyCandidate("owl"),
		problemgen.NumberCandidate(12),
	}
	got := formatGrid(set, 2)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "6")
	assert.Contains(t, lines[0], "owl")
	assert.Contains(t, lines[1], "12")
}
