package ports

import "go.trai.ch/tabu/internal/core/domain"

// ScoreCalculator computes the score of a complete solution.
// Calculate is called concurrently on distinct solutions.
//
//go:generate mockgen -source=score_calculator.go -destination=mocks/mock_score_calculator.go -package=mocks
type ScoreCalculator interface {
	Calculate(solution *domain.Solution) domain.Score
}
