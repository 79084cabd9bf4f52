package config

// SupportedVersion is the only run file schema version understood by the loader.
const SupportedVersion = "1"

// RunFile represents the structure of a YAML run file.
type RunFile struct {
	Version string     `yaml:"version"`
	Solver  SolverDTO  `yaml:"solver"`
	Problem ProblemDTO `yaml:"problem"`
}

// SolverDTO holds the search limits and the acceptor.
type SolverDTO struct {
	Seed                uint64      `yaml:"seed"`
	StepLimit           int         `yaml:"stepLimit"`
	UnimprovedStepLimit int         `yaml:"unimprovedStepLimit"`
	MoveCountPerStep    int         `yaml:"moveCountPerStep"`
	Parallelism         int         `yaml:"parallelism"`
	Acceptor            AcceptorDTO `yaml:"acceptor"`
}

// AcceptorDTO selects tabu types. Omitted keys stay nil.
type AcceptorDTO struct {
	EntityTabuSize    *int     `yaml:"entityTabuSize"`
	EntityTabuRatio   *float64 `yaml:"entityTabuRatio"`
	ValueTabuSize     *int     `yaml:"valueTabuSize"`
	ValueTabuRatio    *float64 `yaml:"valueTabuRatio"`
	MoveTabuSize      *int     `yaml:"moveTabuSize"`
	UndoMoveTabuSize  *int     `yaml:"undoMoveTabuSize"`
	AspirationEnabled *bool    `yaml:"aspirationEnabled"`
}

// ProblemDTO describes the planning problem.
type ProblemDTO struct {
	Name      string      `yaml:"name"`
	Values    []ValueDTO  `yaml:"values"`
	Entities  []EntityDTO `yaml:"entities"`
	Conflicts [][]string  `yaml:"conflicts"`
}

// ValueDTO is a planning value. A zero capacity is unlimited.
type ValueDTO struct {
	ID       string `yaml:"id"`
	Capacity int    `yaml:"capacity"`
}

// EntityDTO is a planning entity.
type EntityDTO struct {
	ID        string           `yaml:"id"`
	Allowed   []string         `yaml:"allowed"`
	Initial   string           `yaml:"initial"`
	Penalties map[string]int64 `yaml:"penalties"`
}
