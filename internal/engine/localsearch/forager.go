package localsearch

import "go.trai.ch/tabu/internal/core/domain"

type candidate struct {
	move     domain.Doable
	score    domain.Score
	accepted bool
}

// pickAccepted returns the index of the accepted candidate with the best score.
// Ties go to the lowest index so that runs are reproducible.
func pickAccepted(candidates []candidate) (int, bool) {
	winner := -1
	for i, c := range candidates {
		if !c.accepted {
			continue
		}
		if winner < 0 || c.score.IsBetterThan(candidates[winner].score) {
			winner = i
		}
	}
	return winner, winner >= 0
}
