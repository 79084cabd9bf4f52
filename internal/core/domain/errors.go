package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTabuSize is returned when a tabu window size is not a positive integer.
	ErrInvalidTabuSize = zerr.New("tabu size must be a positive integer")

	// ErrInvalidTabuRatio is returned when a tabu ratio is outside the open interval (0, 1).
	ErrInvalidTabuRatio = zerr.New("tabu ratio must be greater than 0 and less than 1")

	// ErrAmbiguousTabuSize is returned when both a size and a ratio are configured for the same tabu type.
	ErrAmbiguousTabuSize = zerr.New("tabu size and tabu ratio are mutually exclusive")

	// ErrNoTabuConfigured is returned when an acceptor configuration enables no tabu type at all.
	ErrNoTabuConfigured = zerr.New("no tabu type configured")

	// ErrUnknownTabuKind is returned when a token extractor is requested for an unknown tabu kind.
	ErrUnknownTabuKind = zerr.New("unknown tabu kind")

	// ErrMalformedMove is returned when a move cannot report its tabu tokens.
	ErrMalformedMove = zerr.New("malformed move")

	// ErrPhaseNotStarted is returned when an acceptor is used outside of an active phase.
	ErrPhaseNotStarted = zerr.New("phase not started")

	// ErrPhaseAlreadyStarted is returned when a phase is started on an acceptor that is already active.
	ErrPhaseAlreadyStarted = zerr.New("phase already started")

	// ErrMissingBestScore is returned when a phase offers no best score accessor but aspiration needs one.
	ErrMissingBestScore = zerr.New("phase has no best score accessor")

	// ErrInvalidProblem is returned when a problem definition is inconsistent.
	ErrInvalidProblem = zerr.New("invalid problem")

	// ErrUnknownEntity is returned when a move or a constraint references an entity that does not exist.
	ErrUnknownEntity = zerr.New("unknown planning entity")

	// ErrUnknownValue is returned when a move or an entity references a value that does not exist.
	ErrUnknownValue = zerr.New("unknown planning value")

	// ErrInvalidScore is returned when a score string cannot be parsed.
	ErrInvalidScore = zerr.New("invalid score")

	// ErrInvalidSolverConfig is returned when a solver setting is out of range.
	ErrInvalidSolverConfig = zerr.New("invalid solver configuration")

	// ErrStoreCreateFailed is returned when the report store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create report store directory")

	// ErrStoreReadFailed is returned when a run report cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read run report")

	// ErrStoreUnmarshalFailed is returned when a run report cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal run report")

	// ErrStoreMarshalFailed is returned when a run report cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal run report")

	// ErrStoreWriteFailed is returned when a run report cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write run report")

	// ErrConfigReadFailed is returned when the run file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read run file")

	// ErrConfigParseFailed is returned when the run file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse run file")

	// ErrUnsupportedVersion is returned when the run file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported run file version")

	// ErrNoDoableMove is returned when a step finds no accepted candidate move.
	ErrNoDoableMove = zerr.New("no doable move")
)
