package domain

import (
	"runtime"

	"go.trai.ch/zerr"
)

const (
	// DefaultStepLimit is the number of steps a run performs unless configured otherwise.
	DefaultStepLimit = 1000
	// DefaultUnimprovedStepLimit is the number of steps without a new best score before a run stops.
	DefaultUnimprovedStepLimit = 200
	// DefaultMoveCountPerStep is the number of candidate moves evaluated per step.
	DefaultMoveCountPerStep = 50
)

// AcceptorConfig selects the tabu types of an acceptor and their window sizes.
// A nil field is unset. Size and ratio of the same type are mutually exclusive.
type AcceptorConfig struct {
	EntityTabuSize    *int
	EntityTabuRatio   *float64
	ValueTabuSize     *int
	ValueTabuRatio    *float64
	MoveTabuSize      *int
	UndoMoveTabuSize  *int
	AspirationEnabled *bool
}

// Aspiration reports whether aspiration is enabled. It defaults to true.
func (c AcceptorConfig) Aspiration() bool {
	return c.AspirationEnabled == nil || *c.AspirationEnabled
}

// SolverConfig configures a local search run.
type SolverConfig struct {
	Seed                uint64
	StepLimit           int
	UnimprovedStepLimit int
	MoveCountPerStep    int
	Parallelism         int
	Acceptor            AcceptorConfig
}

// WithDefaults fills unset limits with their defaults.
func (c SolverConfig) WithDefaults() SolverConfig {
	if c.StepLimit == 0 {
		c.StepLimit = DefaultStepLimit
	}
	if c.UnimprovedStepLimit == 0 {
		c.UnimprovedStepLimit = DefaultUnimprovedStepLimit
	}
	if c.MoveCountPerStep == 0 {
		c.MoveCountPerStep = DefaultMoveCountPerStep
	}
	if c.Parallelism == 0 {
		c.Parallelism = runtime.NumCPU()
	}
	return c
}

// Validate rejects negative limits.
func (c SolverConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"stepLimit", c.StepLimit},
		{"unimprovedStepLimit", c.UnimprovedStepLimit},
		{"moveCountPerStep", c.MoveCountPerStep},
		{"parallelism", c.Parallelism},
	}
	for _, f := range fields {
		if f.value < 0 {
			return zerr.With(zerr.Wrap(ErrInvalidSolverConfig, f.name+" must not be negative"), f.name, f.value)
		}
	}
	return nil
}

// RunConfig is a loaded run file: the problem and how to solve it.
type RunConfig struct {
	Solver  SolverConfig
	Problem *Problem
}
