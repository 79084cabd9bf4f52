package commands

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/tabu/internal/ui/output"
	"go.trai.ch/tabu/internal/ui/style"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <run-file>",
		Short: "Check a run file without solving it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			cfg, err := c.app.Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			p := cfg.Problem
			line := fmt.Sprintf("%s %s is valid: %d entities, %d values, %d conflicts",
				style.Check, p.Name, p.EntityCount(), p.ValueCount(), len(p.Conflicts))
			_, err = out.WriteString(out.String(line).Foreground(termenv.RGBColor(string(style.Green))).String() + "\n")
			return err
		},
	}
}
