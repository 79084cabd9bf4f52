// Package app implements the application layer for tabu.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/tabu/internal/adapters/telemetry"          //nolint:depguard // Trace file output is configured per run
	"go.trai.ch/tabu/internal/adapters/telemetry/progrock" //nolint:depguard // Progress journal is configured per run
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/core/ports"
	"go.trai.ch/tabu/internal/engine/localsearch"
	"go.trai.ch/tabu/internal/engine/tabu"
	"go.trai.ch/zerr"
)

// MetricsRecorder records solver metrics and can dump them to a file.
type MetricsRecorder interface {
	ports.Metrics
	WriteTextfile(path string) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	solver       *localsearch.Solver
	store        ports.ReportStore
	logger       ports.Logger
	metrics      MetricsRecorder
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	solver *localsearch.Solver,
	store ports.ReportStore,
	log ports.Logger,
	metrics MetricsRecorder,
) *App {
	return &App{
		configLoader: loader,
		solver:       solver,
		store:        store,
		logger:       log,
		metrics:      metrics,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp reports.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// SolveOptions configuration for the Solve method.
type SolveOptions struct {
	// Seed overrides the seed of the run file when set.
	Seed *uint64
	// StepLimit overrides the step limit of the run file when positive. Negative values are rejected.
	StepLimit int
	// NoStore skips reading and writing the report store.
	NoStore bool
	// TracePath receives one JSON line per span when set.
	TracePath string
	// ProgressPath receives a progrock journal of the run when set.
	ProgressPath string
	// MetricsPath receives the metrics in the Prometheus text format when set.
	MetricsPath string
}

// Solve loads the run file at path, solves it and records the report.
func (a *App) Solve(ctx context.Context, path string, opts SolveOptions) (*domain.SolveOutcome, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load run file")
	}
	if opts.Seed != nil {
		cfg.Solver.Seed = *opts.Seed
	}
	switch {
	case opts.StepLimit > 0:
		cfg.Solver.StepLimit = opts.StepLimit
	case opts.StepLimit < 0:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSolverConfig, "step limit override must not be negative"),
			"steps", opts.StepLimit)
	}

	acceptor, err := tabu.Build(cfg.Solver.Acceptor, tabu.WithMetrics(a.metrics))
	if err != nil {
		return nil, zerr.Wrap(err, "invalid acceptor configuration")
	}

	solver := a.solver
	var tracers []ports.Tracer
	if opts.TracePath != "" {
		tracer, closeTrace, err := openTrace(opts.TracePath)
		if err != nil {
			return nil, err
		}
		defer closeTrace()
		tracers = append(tracers, tracer)
	}
	if opts.ProgressPath != "" {
		journal, err := progrock.NewJournal(opts.ProgressPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = journal.Close() }()
		tracers = append(tracers, journal)
	}
	if len(tracers) > 0 {
		solver = solver.WithTracer(telemetry.NewMultiTracer(tracers...))
	}

	started := a.now()
	result, err := solver.Solve(ctx, cfg.Problem, cfg.Solver, acceptor)
	if err != nil {
		return nil, zerr.Wrap(err, "solve failed")
	}

	outcome := &domain.SolveOutcome{
		Report: domain.RunReport{
			Problem:     cfg.Problem.Name,
			Fingerprint: cfg.Problem.Fingerprint(),
			BestScore:   result.BestScore,
			Steps:       result.Steps,
			Termination: string(result.Termination),
			Assignments: result.Best.Assignments(),
			Duration:    result.Duration,
			Timestamp:   started.UTC(),
		},
		InitialScore: result.InitialScore,
	}

	if opts.MetricsPath != "" {
		if err := a.metrics.WriteTextfile(opts.MetricsPath); err != nil {
			return nil, err
		}
	}

	if opts.NoStore {
		return outcome, nil
	}
	if err := a.record(outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

// record compares the outcome with the stored report and keeps the better one.
func (a *App) record(outcome *domain.SolveOutcome) error {
	report := outcome.Report

	previous, err := a.store.Get(report.Fingerprint)
	if err != nil {
		return zerr.Wrap(err, "failed to read previous report")
	}
	outcome.Previous = previous

	if previous != nil && previous.BestScore.IsBetterThan(report.BestScore) {
		a.logger.Info(fmt.Sprintf("stored best score %s is better than %s, keeping it",
			previous.BestScore, report.BestScore))
		return nil
	}
	if outcome.Improved() {
		a.logger.Info(fmt.Sprintf("improved stored best score %s to %s", previous.BestScore, report.BestScore))
	}

	if err := a.store.Put(report); err != nil {
		return zerr.Wrap(err, "failed to store report")
	}
	outcome.Stored = true
	return nil
}

// Validate loads the run file at path and checks that its acceptor can be built.
func (a *App) Validate(_ context.Context, path string) (*domain.RunConfig, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load run file")
	}
	if _, err := tabu.Build(cfg.Solver.Acceptor); err != nil {
		return nil, zerr.Wrap(err, "invalid acceptor configuration")
	}
	if err := cfg.Solver.WithDefaults().Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid solver configuration")
	}
	return cfg, nil
}

// openTrace creates a tracer whose spans are written to path.
func openTrace(path string) (ports.Tracer, func(), error) {
	f, err := os.Create(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to create trace file"), "path", path)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewSpanLog(f)))
	closeTrace := func() {
		_ = tp.Shutdown(context.Background())
		_ = f.Close()
	}
	return telemetry.NewOTelTracerWithProvider(tp, telemetry.InstrumentationName), closeTrace, nil
}
