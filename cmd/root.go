package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/timestables/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "timestables",
	Short: "Times tables practice game",
	Long:  "Times Tables: pick a table, then find each answer in a grid of numbers and animals.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGameFlags(rootCmd)
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

// addGameFlags registers the flags shared by every command that plays.
func addGameFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default ./timestables.yaml)")
	pf.String("preset", "", "Path to a JSON settings preset")
	pf.Int("table", 0, "Times table to practise (2-12)")
	pf.Int("max", 0, "Largest multiplier asked (2-12)")
	pf.String("questions", "", "Number of questions: 5, 10, 20 or all")
	pf.Bool("ordered", false, "With --questions all, ask multipliers in ascending order")
	pf.Uint64("seed", 0, "Random seed for a repeatable game")
}

// loadConfig resolves configuration from the config file and environment,
// then the preset, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if presetPath, _ := flags.GetString("preset"); presetPath != "" {
		preset, err := config.LoadPreset(presetPath)
		if err != nil {
			return nil, err
		}
		preset.Apply(&cfg.Game)
	}

	if flags.Changed("table") {
		cfg.Game.Table, _ = flags.GetInt("table")
	}
	if flags.Changed("max") {
		cfg.Game.MaxMultiplier, _ = flags.GetInt("max")
	}
	if flags.Changed("questions") {
		cfg.Game.Questions, _ = flags.GetString("questions")
	}
	if flags.Changed("ordered") {
		ordered, _ := flags.GetBool("ordered")
		cfg.Game.RandomOrder = !ordered
	}
	if flags.Changed("seed") {
		cfg.Game.Seed, _ = flags.GetUint64("seed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
