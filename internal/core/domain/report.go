package domain

import "time"

// RunReport is the outcome of a solver run, persisted per problem fingerprint.
type RunReport struct {
	Problem     string        `json:"problem"`
	Fingerprint string        `json:"fingerprint"`
	BestScore   Score         `json:"best_score"`
	Steps       int           `json:"steps"`
	Termination string        `json:"termination"`
	Assignments []Assignment  `json:"assignments,omitempty"`
	Duration    time.Duration `json:"duration"`
	Timestamp   time.Time     `json:"timestamp,omitzero"`
}

// SolveOutcome is a finished run together with the report it is compared against.
type SolveOutcome struct {
	Report       RunReport
	InitialScore Score
	// Previous is the report stored for the same problem before this run, if any.
	Previous *RunReport
	// Stored reports whether Report replaced the stored report.
	Stored bool
}

// Improved reports whether the run beat the previously stored best score.
func (o SolveOutcome) Improved() bool {
	return o.Previous != nil && o.Report.BestScore.IsBetterThan(o.Previous.BestScore)
}
