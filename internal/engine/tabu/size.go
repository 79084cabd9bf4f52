package tabu

import (
	"math"

	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/zerr"
)

// SizeStrategy returns the number of most recent steps whose tokens stay tabu.
// It is evaluated once per committed step.
type SizeStrategy interface {
	SizeFor(step *domain.StepScope) int
}

// SizeFunc adapts a function to a SizeStrategy. It must return a positive size.
type SizeFunc func(step *domain.StepScope) int

// SizeFor implements SizeStrategy.
func (f SizeFunc) SizeFor(step *domain.StepScope) int {
	return f(step)
}

// FixedSize is a constant window size.
type FixedSize int

// NewFixedSize validates n and returns it as a strategy.
func NewFixedSize(n int) (FixedSize, error) {
	if n <= 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidTabuSize, ""), "size", n)
	}
	return FixedSize(n), nil
}

// SizeFor implements SizeStrategy.
func (s FixedSize) SizeFor(*domain.StepScope) int {
	return int(s)
}

type ratioBasis uint8

const (
	entityBasis ratioBasis = iota
	valueBasis
)

// RatioSize derives the window size from the number of entities or values in the problem.
type RatioSize struct {
	ratio float64
	basis ratioBasis
}

// NewEntityRatioSize sizes the window as a fraction of the entity count.
func NewEntityRatioSize(ratio float64) (RatioSize, error) {
	return newRatioSize(ratio, entityBasis)
}

// NewValueRatioSize sizes the window as a fraction of the value count.
func NewValueRatioSize(ratio float64) (RatioSize, error) {
	return newRatioSize(ratio, valueBasis)
}

func newRatioSize(ratio float64, basis ratioBasis) (RatioSize, error) {
	if math.IsNaN(ratio) || ratio <= 0 || ratio >= 1 {
		return RatioSize{}, zerr.With(zerr.Wrap(domain.ErrInvalidTabuRatio, ""), "ratio", ratio)
	}
	return RatioSize{ratio: ratio, basis: basis}, nil
}

// SizeFor rounds ratio times the count and clamps it to [1, count-1].
// A size equal to the count would forbid every entity or value.
func (s RatioSize) SizeFor(step *domain.StepScope) int {
	total := 0
	if step != nil && step.Phase != nil {
		if s.basis == entityBasis {
			total = step.Phase.EntityCount
		} else {
			total = step.Phase.ValueCount
		}
	}
	size := int(math.Round(float64(total) * s.ratio))
	return max(1, min(size, total-1))
}
