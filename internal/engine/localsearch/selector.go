package localsearch

import (
	"math/rand/v2"

	"go.trai.ch/tabu/internal/core/domain"
)

// MoveSelector draws random change and swap moves for the current solution.
// It is deterministic for a given seed and sequence of solutions.
type MoveSelector struct {
	rng *rand.Rand
}

// NewMoveSelector returns a selector seeded with seed.
func NewMoveSelector(seed uint64) *MoveSelector {
	return &MoveSelector{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Select returns up to n doable moves. Fewer are returned when the solution
// offers no alternative assignment, for instance when every entity allows a single value.
func (m *MoveSelector) Select(s *domain.Solution, n int) []domain.Doable {
	p := s.Problem()
	moves := make([]domain.Doable, 0, n)

	for attempts := 0; len(moves) < n && attempts < 4*n; attempts++ {
		entity := p.Entities[m.rng.IntN(len(p.Entities))].ID

		if len(p.Entities) > 1 && m.rng.IntN(2) == 0 {
			if swap, ok := m.swap(s, entity); ok {
				moves = append(moves, swap)
				continue
			}
		}
		if change, ok := m.change(s, entity); ok {
			moves = append(moves, change)
		}
	}
	return moves
}

func (m *MoveSelector) change(s *domain.Solution, entity domain.InternedString) (domain.ChangeMove, bool) {
	current := s.ValueOf(entity)
	allowed := s.Problem().AllowedValues(entity)
	if len(allowed) < 2 {
		return domain.ChangeMove{}, false
	}

	to := allowed[m.rng.IntN(len(allowed))]
	if to == current {
		return domain.ChangeMove{}, false
	}
	return domain.ChangeMove{Entity: entity, From: current, To: to}, true
}

func (m *MoveSelector) swap(s *domain.Solution, left domain.InternedString) (domain.SwapMove, bool) {
	p := s.Problem()
	right := p.Entities[m.rng.IntN(len(p.Entities))].ID
	if right == left {
		return domain.SwapMove{}, false
	}

	leftValue, rightValue := s.ValueOf(left), s.ValueOf(right)
	if leftValue == rightValue || !p.IsAllowed(left, rightValue) || !p.IsAllowed(right, leftValue) {
		return domain.SwapMove{}, false
	}
	return domain.SwapMove{Left: left, Right: right, LeftValue: leftValue, RightValue: rightValue}, true
}
