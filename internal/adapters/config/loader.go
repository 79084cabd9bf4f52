// Package config loads YAML run files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML run files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the run file at path.
func (l *Loader) Load(path string) (*domain.RunConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if p := cfg.Solver.Parallelism; p > 0 && cfg.Solver.MoveCountPerStep > 0 && p > cfg.Solver.MoveCountPerStep {
		l.logger.Warn(fmt.Sprintf("parallelism %d exceeds moveCountPerStep %d, extra workers stay idle",
			p, cfg.Solver.MoveCountPerStep))
	}
	return cfg, nil
}

// Parse decodes a run file. Unknown keys are rejected.
func Parse(data []byte) (*domain.RunConfig, error) {
	var file RunFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	if file.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, ""), "version", file.Version)
	}

	problem, err := toProblem(file.Problem)
	if err != nil {
		return nil, err
	}

	return &domain.RunConfig{
		Solver:  toSolverConfig(file.Solver),
		Problem: problem,
	}, nil
}

func toSolverConfig(dto SolverDTO) domain.SolverConfig {
	return domain.SolverConfig{
		Seed:                dto.Seed,
		StepLimit:           dto.StepLimit,
		UnimprovedStepLimit: dto.UnimprovedStepLimit,
		MoveCountPerStep:    dto.MoveCountPerStep,
		Parallelism:         dto.Parallelism,
		Acceptor: domain.AcceptorConfig{
			EntityTabuSize:    dto.Acceptor.EntityTabuSize,
			EntityTabuRatio:   dto.Acceptor.EntityTabuRatio,
			ValueTabuSize:     dto.Acceptor.ValueTabuSize,
			ValueTabuRatio:    dto.Acceptor.ValueTabuRatio,
			MoveTabuSize:      dto.Acceptor.MoveTabuSize,
			UndoMoveTabuSize:  dto.Acceptor.UndoMoveTabuSize,
			AspirationEnabled: dto.Acceptor.AspirationEnabled,
		},
	}
}

func toProblem(dto ProblemDTO) (*domain.Problem, error) {
	values := make([]domain.Value, len(dto.Values))
	for i, v := range dto.Values {
		values[i] = domain.Value{ID: domain.NewInternedString(v.ID), Capacity: v.Capacity}
	}

	entities := make([]domain.Entity, len(dto.Entities))
	for i, e := range dto.Entities {
		entity := domain.Entity{
			ID:      domain.NewInternedString(e.ID),
			Allowed: domain.NewInternedStrings(e.Allowed),
		}
		if e.Initial != "" {
			entity.Initial = domain.NewInternedString(e.Initial)
		}
		if len(e.Penalties) > 0 {
			entity.Penalties = make(map[domain.InternedString]int64, len(e.Penalties))
			for value, cost := range e.Penalties {
				entity.Penalties[domain.NewInternedString(value)] = cost
			}
		}
		entities[i] = entity
	}

	conflicts := make([]domain.Conflict, len(dto.Conflicts))
	for i, pair := range dto.Conflicts {
		if len(pair) != 2 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProblem, "a conflict names exactly two entities"),
				"conflict", pair)
		}
		conflicts[i] = domain.Conflict{
			Left:  domain.NewInternedString(pair[0]),
			Right: domain.NewInternedString(pair[1]),
		}
	}

	return domain.NewProblem(dto.Name, entities, values, conflicts)
}
