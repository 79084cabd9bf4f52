package scoring

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tabu/internal/core/ports"
)

// NodeID is the unique identifier for the score calculator Graft node.
const NodeID graft.ID = "adapter.scoring"

func init() {
	graft.Register(graft.Node[ports.ScoreCalculator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScoreCalculator, error) {
			return NewCalculator(), nil
		},
	})
}
