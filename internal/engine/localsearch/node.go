package localsearch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tabu/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tabu/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tabu/internal/adapters/scoring"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tabu/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tabu/internal/core/ports"
)

// NodeID is the unique identifier for the solver Graft node.
const NodeID graft.ID = "engine.localsearch"

func init() {
	graft.Register(graft.Node[*Solver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scoring.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Solver, error) {
			calculator, err := graft.Dep[ports.ScoreCalculator](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[*metrics.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			return NewSolver(calculator, tracer, log, recorder), nil
		},
	})
}
