package ports

import "go.trai.ch/tabu/internal/core/domain"

// Metrics records solver instrumentation. Implementations must be safe for concurrent use.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// Decision records one acceptance decision of the named acceptor.
	// aspirated is true when a tabu move was accepted by aspiration.
	Decision(acceptor string, accepted, aspirated bool)
	// Window records the size of the named acceptor's tabu window after a step.
	Window(acceptor string, batches, tokens int)
	// Step records a committed step and its score.
	Step(score domain.Score)
	// NewBest records a new best score.
	NewBest(score domain.Score)
}
