package tabu

import (
	"sync"

	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Acceptor = (*Acceptor)(nil)

// WindowStats describes the current tabu window of an acceptor.
type WindowStats struct {
	Batches int
	Tokens  int
}

// Acceptor rejects candidate moves whose tokens are in the tabu window,
// unless aspiration overrides. Its state lives for a single phase.
//
// IsAccepted takes a read lock and may run concurrently. StepEnded is the
// only method that changes the window and takes the write lock.
type Acceptor struct {
	name       string
	extractor  TokenExtractor
	size       SizeStrategy
	aspiration Aspiration
	metrics    ports.Metrics

	mu           sync.RWMutex
	phase        *domain.PhaseScope
	startingBest domain.Score
	window       *WorkingSet
}

// Option configures an Acceptor.
type Option func(*Acceptor)

// WithName sets the name used in metrics and errors.
func WithName(name string) Option {
	return func(a *Acceptor) {
		a.name = name
	}
}

// WithMetrics records every decision and the window size after every step.
func WithMetrics(m ports.Metrics) Option {
	return func(a *Acceptor) {
		a.metrics = m
	}
}

// NewAcceptor creates an acceptor. Both the extractor and the size strategy are required.
func NewAcceptor(extractor TokenExtractor, size SizeStrategy, aspiration Aspiration, opts ...Option) (*Acceptor, error) {
	if extractor == nil {
		return nil, zerr.Wrap(domain.ErrUnknownTabuKind, "no token extractor")
	}
	if size == nil {
		return nil, zerr.Wrap(domain.ErrInvalidTabuSize, "no tabu size strategy")
	}

	a := &Acceptor{
		name:       defaultName(extractor.Kind()),
		extractor:  extractor,
		size:       size,
		aspiration: aspiration,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func defaultName(kind TokenKind) string {
	return kind.String() + "Tabu"
}

// Name returns the acceptor name.
func (a *Acceptor) Name() string {
	return a.name
}

// PhaseStarted starts a phase with an empty window.
func (a *Acceptor) PhaseStarted(phase *domain.PhaseScope) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase != nil {
		return zerr.With(zerr.Wrap(domain.ErrPhaseAlreadyStarted, ""), "acceptor", a.name)
	}
	if phase == nil {
		return zerr.With(zerr.Wrap(domain.ErrPhaseNotStarted, "nil phase scope"), "acceptor", a.name)
	}
	if phase.BestScore == nil && a.aspiration.Enabled() {
		return zerr.With(zerr.Wrap(domain.ErrMissingBestScore, ""), "acceptor", a.name)
	}

	a.phase = phase
	a.window = NewWorkingSet()
	a.startingBest = domain.Score{}
	if phase.BestScore != nil {
		a.startingBest = phase.BestScore()
	}
	return nil
}

// IsAccepted reports whether the candidate may become the next step.
// It has no effect on the window and returns the same answer until the next StepEnded.
func (a *Acceptor) IsAccepted(move *domain.MoveScope) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.phase == nil {
		return false, zerr.With(zerr.Wrap(domain.ErrPhaseNotStarted, "is accepted"), "acceptor", a.name)
	}
	if move == nil {
		return false, zerr.With(zerr.Wrap(domain.ErrMalformedMove, "nil move scope"), "acceptor", a.name)
	}

	tokens, err := a.extractor.Extract(move.Move)
	if err != nil {
		return false, err
	}
	if !a.window.ContainsAny(tokens) {
		a.record(true, false)
		return true, nil
	}
	if !a.aspiration.Enabled() {
		a.record(false, false)
		return false, nil
	}

	best := a.phase.BestScore()
	accepted := a.aspiration.Overrides(move.Score, best)
	a.record(accepted, accepted)
	return accepted, nil
}

// StepEnded adds the tokens of the committed step to the window and evicts
// the batches that fall out of the current window size.
func (a *Acceptor) StepEnded(step *domain.StepScope) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase == nil {
		return zerr.With(zerr.Wrap(domain.ErrPhaseNotStarted, "step ended"), "acceptor", a.name)
	}
	if step == nil || step.Move == nil {
		return zerr.With(zerr.Wrap(domain.ErrMalformedMove, "step without a committed move"), "acceptor", a.name)
	}

	tokens, err := a.extractor.ExtractCommitted(step.Move)
	if err != nil {
		return err
	}
	size := a.size.SizeFor(step)
	if size <= 0 {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidTabuSize, "size strategy returned a non-positive size"),
			"acceptor", a.name), "size", size)
	}

	a.window.RecordStep(tokens, size)
	if a.metrics != nil {
		a.metrics.Window(a.name, a.window.Batches(), a.window.Tokens())
	}
	return nil
}

// PhaseEnded discards the window.
func (a *Acceptor) PhaseEnded(*domain.PhaseScope) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase == nil {
		return zerr.With(zerr.Wrap(domain.ErrPhaseNotStarted, "phase ended"), "acceptor", a.name)
	}
	a.phase = nil
	a.window = nil
	a.startingBest = domain.Score{}
	return nil
}

// Window returns the size of the current window. It is zero outside a phase.
func (a *Acceptor) Window() WindowStats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.window == nil {
		return WindowStats{}
	}
	return WindowStats{Batches: a.window.Batches(), Tokens: a.window.Tokens()}
}

// StartingBestScore returns the best score captured when the phase started.
func (a *Acceptor) StartingBestScore() domain.Score {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.startingBest
}

func (a *Acceptor) record(accepted, aspirated bool) {
	if a.metrics != nil {
		a.metrics.Decision(a.name, accepted, aspirated)
	}
}
