package localsearch

import (
	"sync/atomic"

	"go.trai.ch/tabu/internal/core/domain"
)

// bestTracker holds the best solution of a run. The score is read concurrently
// by acceptors while candidates are evaluated; only the step loop writes.
type bestTracker struct {
	score    atomic.Pointer[domain.Score]
	solution *domain.Solution
}

func newBestTracker(s *domain.Solution, score domain.Score) *bestTracker {
	t := &bestTracker{solution: s.Clone()}
	t.score.Store(&score)
	return t
}

// BestScore is a domain.BestScoreFunc.
func (t *bestTracker) BestScore() domain.Score {
	return *t.score.Load()
}

// offer keeps s when score is strictly better and reports whether it did.
func (t *bestTracker) offer(s *domain.Solution, score domain.Score) bool {
	if !score.IsBetterThan(t.BestScore()) {
		return false
	}
	t.solution = s.Clone()
	t.score.Store(&score)
	return true
}
