// Package localsearch sequences the steps of a local search phase: it draws
// candidate moves, scores them, asks the acceptor which are eligible, commits
// the best eligible one and keeps track of the best solution found.
package localsearch

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Termination explains why a run stopped.
type Termination string

const (
	// TerminationStepLimit means the configured number of steps was reached.
	TerminationStepLimit Termination = "step limit"
	// TerminationUnimproved means too many steps passed without a new best score.
	TerminationUnimproved Termination = "unimproved step limit"
	// TerminationNoDoableMove means no candidate of a step was accepted.
	TerminationNoDoableMove Termination = "no doable move"
	// TerminationCancelled means the context was cancelled.
	TerminationCancelled Termination = "cancelled"
)

// Result is the outcome of a run.
type Result struct {
	Best         *domain.Solution
	BestScore    domain.Score
	InitialScore domain.Score
	Steps        int
	Termination  Termination
	Duration     time.Duration
}

// Solver runs local search phases.
type Solver struct {
	calculator ports.ScoreCalculator
	tracer     ports.Tracer
	logger     ports.Logger
	metrics    ports.Metrics
}

// NewSolver creates a new Solver with the given dependencies.
func NewSolver(
	calculator ports.ScoreCalculator,
	tracer ports.Tracer,
	logger ports.Logger,
	metrics ports.Metrics,
) *Solver {
	return &Solver{
		calculator: calculator,
		tracer:     tracer,
		logger:     logger,
		metrics:    metrics,
	}
}

// WithTracer returns a copy of the solver that records spans on tracer.
func (s *Solver) WithTracer(tracer ports.Tracer) *Solver {
	clone := *s
	clone.tracer = tracer
	return &clone
}

// Solve runs one local search phase on problem, driving acceptor through its
// lifecycle. Cancelling ctx stops the run after the current step and still
// returns the best solution found.
func (s *Solver) Solve(
	ctx context.Context,
	problem *domain.Problem,
	cfg domain.SolverConfig,
	acceptor ports.Acceptor,
) (*Result, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "solve",
		ports.WithAttribute("problem", problem.Name),
		ports.WithAttribute("entities", problem.EntityCount()),
		ports.WithAttribute("values", problem.ValueCount()),
	)
	defer span.End()

	state := s.newRunState(problem, cfg, acceptor)
	s.logger.Info(fmt.Sprintf("solving %s: %d entities, %d values, initial score %s",
		problem.Name, problem.EntityCount(), problem.ValueCount(), state.best.BestScore()))

	if err := acceptor.PhaseStarted(state.phase); err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to start phase")
	}

	termination, err := state.runStepLoop(ctx)
	endErr := acceptor.PhaseEnded(state.phase)
	if err == nil && endErr != nil {
		err = zerr.Wrap(endErr, "failed to end phase")
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := &Result{
		Best:         state.best.solution,
		BestScore:    state.best.BestScore(),
		InitialScore: state.initialScore,
		Steps:        state.steps,
		Termination:  termination,
		Duration:     time.Since(start),
	}
	span.SetAttribute("steps", result.Steps)
	span.SetAttribute("best_score", result.BestScore.String())
	span.SetAttribute("termination", string(termination))

	s.logger.Info(fmt.Sprintf("solved %s: best score %s after %d steps (%s)",
		problem.Name, result.BestScore, result.Steps, termination))
	return result, nil
}

type runState struct {
	s            *Solver
	cfg          domain.SolverConfig
	acceptor     ports.Acceptor
	selector     *MoveSelector
	phase        *domain.PhaseScope
	current      *domain.Solution
	score        domain.Score
	initialScore domain.Score
	best         *bestTracker
	steps        int
	unimproved   int
}

func (s *Solver) newRunState(problem *domain.Problem, cfg domain.SolverConfig, acceptor ports.Acceptor) *runState {
	current := domain.NewSolution(problem)
	score := s.calculator.Calculate(current)
	best := newBestTracker(current, score)

	return &runState{
		s:            s,
		cfg:          cfg,
		acceptor:     acceptor,
		selector:     NewMoveSelector(cfg.Seed),
		current:      current,
		score:        score,
		initialScore: score,
		best:         best,
		phase: &domain.PhaseScope{
			BestScore:   best.BestScore,
			EntityCount: problem.EntityCount(),
			ValueCount:  problem.ValueCount(),
		},
	}
}

func (state *runState) runStepLoop(ctx context.Context) (Termination, error) {
	for {
		switch {
		case ctx.Err() != nil:
			return TerminationCancelled, nil
		case state.steps >= state.cfg.StepLimit:
			return TerminationStepLimit, nil
		case state.unimproved >= state.cfg.UnimprovedStepLimit:
			return TerminationUnimproved, nil
		}

		committed, err := state.step(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return TerminationCancelled, nil
			}
			return "", err
		}
		if !committed {
			state.s.logger.Warn(fmt.Sprintf("step %d: no doable move, terminating phase early", state.steps))
			return TerminationNoDoableMove, nil
		}
	}
}

// step evaluates one batch of candidates and commits the winner.
// It reports false when no candidate was accepted.
func (state *runState) step(ctx context.Context) (bool, error) {
	ctx, span := state.s.tracer.Start(ctx, "step", ports.WithAttribute("index", state.steps))
	defer span.End()

	stepScope := &domain.StepScope{Phase: state.phase, Index: state.steps}
	moves := state.selector.Select(state.current, state.cfg.MoveCountPerStep)
	candidates, err := state.evaluate(ctx, stepScope, moves)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	winner, ok := pickAccepted(candidates)
	if !ok {
		span.SetAttribute("candidates", len(candidates))
		return false, nil
	}
	chosen := candidates[winner]

	if err := chosen.move.ApplyTo(state.current); err != nil {
		span.RecordError(err)
		return false, zerr.With(zerr.Wrap(err, "failed to apply step move"), "move", chosen.move.String())
	}
	state.score = chosen.score
	stepScope.Move = chosen.move
	stepScope.Score = chosen.score

	if err := state.acceptor.StepEnded(stepScope); err != nil {
		span.RecordError(err)
		return false, zerr.Wrap(err, "failed to end step")
	}
	state.steps++
	state.s.metrics.Step(chosen.score)

	span.SetAttribute("move", chosen.move.String())
	span.SetAttribute("score", chosen.score.String())

	if state.best.offer(state.current, chosen.score) {
		state.unimproved = 0
		state.s.metrics.NewBest(chosen.score)
		state.s.tracer.Event(ctx, "new_best", map[string]any{"score": chosen.score.String(), "step": stepScope.Index})
		state.s.logger.Info(fmt.Sprintf("step %d: new best score %s", stepScope.Index, chosen.score))
	} else {
		state.unimproved++
	}
	return true, nil
}

// evaluate scores the candidates and asks the acceptor about each of them concurrently.
func (state *runState) evaluate(
	ctx context.Context,
	stepScope *domain.StepScope,
	moves []domain.Doable,
) ([]candidate, error) {
	candidates := make([]candidate, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(state.cfg.Parallelism)

	for i, move := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			working := state.current.Clone()
			if err := move.ApplyTo(working); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to apply candidate move"), "move", move.String())
			}
			score := state.s.calculator.Calculate(working)

			accepted, err := state.acceptor.IsAccepted(&domain.MoveScope{Step: stepScope, Move: move, Score: score})
			if err != nil {
				return err
			}
			candidates[i] = candidate{move: move, score: score, accepted: accepted}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}
