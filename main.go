package main

import (
	"fmt"
	"os"
	"pursuit/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pursuit",
		Short: "Pursuit-evasion on a grid",
		Long: `pursuit plays an evader against two cooperating pursuers on a grid map.

The evader plans with a safety-biased A* search; the pursuers plan jointly
with depth-limited minimax and alpha-beta pruning.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("level", "", "Log level override (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		newRunCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// loadConfig reads the --config file and applies --level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if level, _ := cmd.Flags().GetString("level"); level != "" {
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	level, _ := cfg.Logging.ZerologLevel()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}
