package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/timestables/internal/problemgen"
	"github.com/abhisek/timestables/internal/session"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TIMESTABLES"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string   `mapstructure:"env"`      // local or production
	Log      Log      `mapstructure:"log"`      // logging section
	Game     Game     `mapstructure:"game"`     // initial settings-screen values
	Answers  Answers  `mapstructure:"answers"`  // answer grid shape and fade rules
	Feedback Feedback `mapstructure:"feedback"` // post-answer pause
}

// Log configures the zap logger.
type Log struct {
	File  string `mapstructure:"file"`  // empty disables logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Game holds the default game settings.
type Game struct {
	Table         int    `mapstructure:"table"`
	MaxMultiplier int    `mapstructure:"max_multiplier"`
	Questions     string `mapstructure:"questions"` // 5, 10, 20 or all
	RandomOrder   bool   `mapstructure:"random_order"`
	Seed          uint64 `mapstructure:"seed"` // 0 seeds from entropy
}

// Answers configures the answer grid.
type Answers struct {
	Distractors     int    `mapstructure:"distractors"`
	Decoys          int    `mapstructure:"decoys"`
	DecoysOnCorrect string `mapstructure:"decoys_on_correct"`
	DecoysOnWrong   string `mapstructure:"decoys_on_wrong"`
	Flip            bool   `mapstructure:"flip"`
}

// Feedback configures how long answer feedback stays on screen.
type Feedback struct {
	CorrectDelay   time.Duration `mapstructure:"correct_delay"`
	IncorrectDelay time.Duration `mapstructure:"incorrect_delay"`
}

// Load reads configuration from defaults, an optional config file, a .env
// file and the environment, in increasing priority. path may be empty, in
// which case "timestables.yaml" is looked up in the working directory and
// the user config directory. The result is not validated: callers overlay
// presets and flags first, then call Validate.
func Load(path string) (*Config, error) {
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("timestables")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(dir + "/timestables")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading any source.
// It panics if the built-in defaults fail to decode.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: decode defaults: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	def := problemgen.DefaultSettings()
	v.SetDefault("env", "local")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("game.table", def.Table)
	v.SetDefault("game.max_multiplier", def.MaxMultiplier)
	v.SetDefault("game.questions", string(def.Count))
	v.SetDefault("game.random_order", def.RandomOrder)
	v.SetDefault("game.seed", 0)
	v.SetDefault("answers.distractors", session.DefaultDistractorCount)
	v.SetDefault("answers.decoys", session.DefaultDecoyCount)
	v.SetDefault("answers.decoys_on_correct", problemgen.EffectFaded.String())
	v.SetDefault("answers.decoys_on_wrong", problemgen.EffectFaded.String())
	v.SetDefault("answers.flip", true)
	v.SetDefault("feedback.correct_delay", "750ms")
	v.SetDefault("feedback.incorrect_delay", "1500ms")
}

// Validate checks that the configured game can actually be played.
func (c *Config) Validate() error {
	settings, err := c.Settings()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	opts, err := c.SessionOptions()
	if err != nil {
		return err
	}
	if opts.DistractorCount < 0 || opts.DecoyCount < 0 {
		return fmt.Errorf("answers: counts must not be negative")
	}
	if opts.DistractorCount > len(problemgen.Products())-1 {
		return fmt.Errorf("answers: %d distractors requested, table has %d: %w",
			opts.DistractorCount, len(problemgen.Products())-1, problemgen.ErrInsufficientDistractors)
	}
	if opts.DecoyCount > len(problemgen.DefaultDecoys) {
		return fmt.Errorf("answers: %d decoys requested, catalog has %d: %w",
			opts.DecoyCount, len(problemgen.DefaultDecoys), problemgen.ErrInsufficientDecoys)
	}
	if c.Feedback.CorrectDelay < 0 || c.Feedback.IncorrectDelay < 0 {
		return fmt.Errorf("feedback: delays must not be negative")
	}
	return nil
}

// Settings converts the game section into problemgen settings.
func (c *Config) Settings() (problemgen.Settings, error) {
	count, err := problemgen.ParseQuestionCount(c.Game.Questions)
	if err != nil {
		return problemgen.Settings{}, fmt.Errorf("game: %w", err)
	}
	return problemgen.Settings{
		Table:         c.Game.Table,
		MaxMultiplier: c.Game.MaxMultiplier,
		Count:         count,
		RandomOrder:   c.Game.RandomOrder,
	}, nil
}

// SessionOptions converts the answers section into session options.
func (c *Config) SessionOptions() (session.Options, error) {
	onCorrect, err := problemgen.ParseEffect(c.Answers.DecoysOnCorrect)
	if err != nil {
		return session.Options{}, fmt.Errorf("answers.decoys_on_correct: %w", err)
	}
	onWrong, err := problemgen.ParseEffect(c.Answers.DecoysOnWrong)
	if err != nil {
		return session.Options{}, fmt.Errorf("answers.decoys_on_wrong: %w", err)
	}
	return session.Options{
		DecoyCount:      c.Answers.Decoys,
		DistractorCount: c.Answers.Distractors,
		Rules: session.FadeRules{
			DecoyOnCorrect: onCorrect,
			DecoyOnWrong:   onWrong,
		},
		FlipDisplay: c.Answers.Flip,
	}, nil
}

// Source returns the random source for new games.
func (c *Config) Source() problemgen.Source {
	if c.Game.Seed != 0 {
		return problemgen.NewSource(c.Game.Seed)
	}
	return problemgen.NewRandomSource()
}

// IsProduction reports whether the production environment is configured.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
