// Package scoring computes hard/soft scores for assignment problems.
package scoring

import "go.trai.ch/tabu/internal/core/domain"

// Calculator scores a solution. Hard score counts conflicting entities that
// share a value and every entity above a value's capacity. Soft score sums the
// penalties of the assigned values.
type Calculator struct{}

// NewCalculator creates a new Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate implements ports.ScoreCalculator.
func (c *Calculator) Calculate(s *domain.Solution) domain.Score {
	p := s.Problem()
	var score domain.Score

	load := make(map[domain.InternedString]int, len(p.Values))
	for _, e := range p.Entities {
		v := s.ValueOf(e.ID)
		load[v]++
		score.Soft -= e.Penalties[v]
	}

	for _, v := range p.Values {
		if v.Capacity > 0 && load[v.ID] > v.Capacity {
			score.Hard -= int64(load[v.ID] - v.Capacity)
		}
	}

	for _, conflict := range p.Conflicts {
		if s.ValueOf(conflict.Left) == s.ValueOf(conflict.Right) {
			score.Hard--
		}
	}
	return score
}
