package domain

// BestScoreFunc reports the best score found so far in the whole run.
// It is called concurrently and must return a consistent, monotonic value.
type BestScoreFunc func() Score

// PhaseScope is the context of one phase of a solver run.
type PhaseScope struct {
	Index       int
	BestScore   BestScoreFunc
	EntityCount int
	ValueCount  int
}

// StepScope is the context of one committed step.
type StepScope struct {
	Phase *PhaseScope
	Index int
	// Move is the move selected as the outcome of the step.
	Move  Move
	Score Score
}

// MoveScope is a candidate move under evaluation within a step.
type MoveScope struct {
	Step  *StepScope
	Move  Move
	Score Score
}
