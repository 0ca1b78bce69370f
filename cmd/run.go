package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/timestables/internal/app"
	"github.com/abhisek/timestables/internal/logger"
)

// runApp loads configuration, builds the logger, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	sessOpts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}
	sessOpts.Logger = log

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	log.Info("starting",
		zap.String("version", displayVersion()),
		zap.String("env", cfg.Env),
		zap.Int("table", settings.Table),
		zap.Int("max_multiplier", settings.MaxMultiplier),
		zap.String("questions", string(settings.Count)))

	return app.Run(app.Options{
		Settings:       settings,
		Session:        sessOpts,
		Source:         cfg.Source(),
		CorrectDelay:   cfg.Feedback.CorrectDelay,
		IncorrectDelay: cfg.Feedback.IncorrectDelay,
		Logger:         log,
		SkipSplash:     noSplash,
	})
}
