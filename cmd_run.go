package main

import (
	"fmt"
	"pursuit/engine"
	"pursuit/evader"
	"pursuit/game"
	"pursuit/metrics"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play one game on a scenario map",
		Long: `Play one game on a text scenario map.

Map symbols: '.' free, '#' wall, 'S' evader start, 'G' goal, '1' and '2'
pursuer starts. Lines starting with ';' are comments.

Examples:
  pursuit run --map maps/vault.txt
  pursuit run --map maps/vault.txt --config pursuit.yaml --turns 100
  pursuit run --map maps/vault.txt --strategy greedy --trace out/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if turns, _ := cmd.Flags().GetInt("turns"); turns > 0 {
				cfg.Engine.MaxTurns = turns
			}
			if strategy, _ := cmd.Flags().GetString("strategy"); strategy != "" {
				cfg.Pursuers.Strategy = strategy
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			setupLogging(cfg)

			mapPath, _ := cmd.Flags().GetString("map")
			scenario, err := game.LoadScenario(mapPath)
			if err != nil {
				return err
			}

			e := evader.New(scenario.Start, scenario.Goal, cfg.Evader.Options(scenario.Grid)...)
			p1, p2 := scenario.Pursuers[0], scenario.Pursuers[1]
			coordinator := cfg.Pursuers.Coordinator(p1, p2)
			eng := engine.New(scenario.Grid, scenario.Goal, e, coordinator, p1, p2, cfg.Engine.Options()...)

			outcome, gameMetric, turns := eng.Run()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "outcome: %s\n", outcome)
			fmt.Fprintf(out, "turns:   %d\n", gameMetric.TotalTurns)
			fmt.Fprintf(out, "evader:  %s\n", e.Position())
			pursuers := eng.Pursuers()
			fmt.Fprintf(out, "pursuers: %s %s\n", pursuers[0], pursuers[1])
			fmt.Fprintf(out, "elapsed: %v\n", gameMetric.Duration)

			if dir, _ := cmd.Flags().GetString("trace"); dir != "" {
				writer, err := metrics.NewWriter(dir)
				if err != nil {
					return err
				}
				if err := writer.WriteGame(gameMetric); err != nil {
					return err
				}
				if err := writer.WriteTurns(turns); err != nil {
					return err
				}
				fmt.Fprintf(out, "trace:   %s\n", dir)
			}
			return nil
		},
	}

	cmd.Flags().String("map", "", "Scenario map file (required)")
	cmd.Flags().Int("turns", 0, "Turn limit override")
	cmd.Flags().String("strategy", "", "Pursuer strategy override (minimax, greedy, random)")
	cmd.Flags().String("trace", "", "Directory for per-turn CSV metrics")
	cmd.MarkFlagRequired("map")

	return cmd
}
