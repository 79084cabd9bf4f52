// Package summary renders the outcome of a run for the terminal.
package summary

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/ui/output"
	"go.trai.ch/tabu/internal/ui/style"
)

// Render writes a human-readable summary of o to w.
func Render(w io.Writer, o *domain.SolveOutcome) error {
	out := output.New(w)
	r := o.Report
	var b strings.Builder

	if r.BestScore.IsFeasible() {
		b.WriteString(colored(out, style.Green, style.Check+" "+r.Problem+" solved: "+r.BestScore.String()))
	} else {
		b.WriteString(colored(out, style.Yellow, style.Warning+" "+r.Problem+" infeasible: "+r.BestScore.String()))
	}
	b.WriteString("\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", colored(out, style.Slate, fmt.Sprintf("%-12s", label)), value)
	}
	row("initial", o.InitialScore.String())
	row("steps", fmt.Sprintf("%d (%s)", r.Steps, r.Termination))
	row("duration", r.Duration.Round(time.Millisecond).String())
	row("fingerprint", r.Fingerprint)
	row("previous", previous(out, o))
	if o.Stored {
		row("stored", "yes")
	} else {
		row("stored", "no")
	}

	if len(r.Assignments) > 0 {
		b.WriteString("\n  " + out.String("Assignments").Bold().String() + "\n")
		width := 0
		for _, a := range r.Assignments {
			width = max(width, len(a.Entity.String()))
		}
		for _, a := range r.Assignments {
			fmt.Fprintf(&b, "    %-*s %s %s\n", width, a.Entity, colored(out, style.Iris, style.Arrow), a.Value)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func previous(out *termenv.Output, o *domain.SolveOutcome) string {
	switch {
	case o.Previous == nil:
		return "none"
	case o.Improved():
		return o.Previous.BestScore.String() + " " + colored(out, style.Green, "improved")
	case o.Previous.BestScore.IsBetterThan(o.Report.BestScore):
		return o.Previous.BestScore.String() + " " + colored(out, style.Red, "better")
	default:
		return o.Previous.BestScore.String() + " " + colored(out, style.Slate, "equal")
	}
}

func colored(out *termenv.Output, c lipgloss.Color, s string) string {
	return out.String(s).Foreground(termenv.RGBColor(string(c))).String()
}
