package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/tabu/internal/app"
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/ui/summary"
	"go.trai.ch/zerr"
)

func (c *CLI) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <run-file>",
		Short: "Solve the problem described by a run file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			var opts app.SolveOptions
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetUint64("seed")
				opts.Seed = &seed
			}
			opts.StepLimit, _ = cmd.Flags().GetInt("steps")
			if opts.StepLimit < 0 {
				return zerr.With(zerr.Wrap(domain.ErrInvalidSolverConfig, "--steps must not be negative"), "steps", opts.StepLimit)
			}
			opts.NoStore, _ = cmd.Flags().GetBool("no-store")
			opts.TracePath, _ = cmd.Flags().GetString("trace")
			opts.MetricsPath, _ = cmd.Flags().GetString("metrics")
			opts.ProgressPath, _ = cmd.Flags().GetString("progress")
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON && c.logSink != nil {
				c.logSink.SetJSON(true)
			}

			outcome, err := c.app.Solve(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(outcome.Report)
			}
			return summary.Render(cmd.OutOrStdout(), outcome)
		},
	}
	cmd.Flags().Uint64("seed", 0, "Override the random seed of the run file")
	cmd.Flags().IntP("steps", "s", 0, "Override the step limit of the run file")
	cmd.Flags().Bool("no-store", false, "Neither compare with nor store the best report")
	cmd.Flags().Bool("json", false, "Print the run report as JSON")
	cmd.Flags().String("trace", "", "Write spans as JSON lines to this file")
	cmd.Flags().String("metrics", "", "Write Prometheus metrics to this file")
	cmd.Flags().String("progress", "", "Write a progrock journal of the run to this file")
	return cmd
}
