package ports

import "go.trai.ch/tabu/internal/core/domain"

// Acceptor decides which candidate moves are eligible to become the next step.
//
// The driver calls PhaseStarted once per phase, IsAccepted any number of times per
// step, possibly from concurrent goroutines, StepEnded once per step with the
// committed move, and PhaseEnded once at phase exit. StepEnded never overlaps
// IsAccepted calls of the same step.
//
//go:generate mockgen -source=acceptor.go -destination=mocks/mock_acceptor.go -package=mocks
type Acceptor interface {
	PhaseStarted(phase *domain.PhaseScope) error
	IsAccepted(move *domain.MoveScope) (bool, error)
	StepEnded(step *domain.StepScope) error
	PhaseEnded(phase *domain.PhaseScope) error
}
