// Package commands implements the CLI commands for tabu.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tabu/internal/app"
	"go.trai.ch/tabu/internal/build"
	"go.trai.ch/tabu/internal/core/domain"
)

// CLI represents the command line interface for tabu.
type CLI struct {
	app     Application
	logSink LogSink
	rootCmd *cobra.Command
}

// LogSink is the part of the logger that commands reconfigure.
type LogSink interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogSink lets commands route and switch the format of log output.
func WithLogSink(sink LogSink) Option {
	return func(c *CLI) {
		c.logSink = sink
	}
}

// Application represents the application logic interface.
type Application interface {
	Solve(ctx context.Context, path string, opts app.SolveOptions) (*domain.SolveOutcome, error)
	Validate(ctx context.Context, path string) (*domain.RunConfig, error)
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tabu",
		Short:         "A tabu search solver for assignment problems",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.AddCommand(c.newSolveCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
// Log output follows the error stream.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
	if c.logSink != nil {
		c.logSink.SetOutput(err)
	}
}
