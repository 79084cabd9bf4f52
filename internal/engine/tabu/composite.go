package tabu

import (
	"errors"

	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/core/ports"
)

var _ ports.Acceptor = (*Composite)(nil)

// Composite combines several acceptors. A move is accepted only when every
// acceptor accepts it. Lifecycle calls reach the acceptors in order.
type Composite struct {
	acceptors []ports.Acceptor
}

// NewComposite returns a composite of acceptors.
func NewComposite(acceptors ...ports.Acceptor) *Composite {
	return &Composite{acceptors: acceptors}
}

// PhaseStarted starts every acceptor. When one fails, those already started are ended again.
func (c *Composite) PhaseStarted(phase *domain.PhaseScope) error {
	for i, a := range c.acceptors {
		if err := a.PhaseStarted(phase); err != nil {
			for _, started := range c.acceptors[:i] {
				_ = started.PhaseEnded(phase)
			}
			return err
		}
	}
	return nil
}

// IsAccepted stops at the first acceptor that rejects the move.
func (c *Composite) IsAccepted(move *domain.MoveScope) (bool, error) {
	for _, a := range c.acceptors {
		ok, err := a.IsAccepted(move)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// StepEnded forwards the committed step and returns the first error.
func (c *Composite) StepEnded(step *domain.StepScope) error {
	for _, a := range c.acceptors {
		if err := a.StepEnded(step); err != nil {
			return err
		}
	}
	return nil
}

// PhaseEnded ends every acceptor, even after a failure, and joins the errors.
func (c *Composite) PhaseEnded(phase *domain.PhaseScope) error {
	var errs error
	for _, a := range c.acceptors {
		errs = errors.Join(errs, a.PhaseEnded(phase))
	}
	return errs
}

// Acceptors returns the combined acceptors.
func (c *Composite) Acceptors() []ports.Acceptor {
	return c.acceptors
}
