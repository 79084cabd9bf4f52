package tabu

import "go.trai.ch/tabu/internal/core/domain"

// Aspiration lets a tabu move through when it would become the new best solution.
type Aspiration struct {
	enabled bool
}

// NewAspiration returns an aspiration policy.
func NewAspiration(enabled bool) Aspiration {
	return Aspiration{enabled: enabled}
}

// Enabled reports whether the policy can ever override.
func (a Aspiration) Enabled() bool {
	return a.enabled
}

// Overrides reports whether candidate is strictly better than best. Ties do not override.
func (a Aspiration) Overrides(candidate, best domain.Score) bool {
	return a.enabled && candidate.IsBetterThan(best)
}
