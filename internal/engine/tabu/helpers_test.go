package tabu_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/engine/tabu"
)

func id(s string) domain.InternedString {
	return domain.NewInternedString(s)
}

// testMove is a move assigning arbitrary values to arbitrary entities.
type testMove struct {
	entities []domain.InternedString
	values   []domain.InternedString
}

func valueMove(values ...string) testMove {
	return testMove{values: domain.NewInternedStrings(values)}
}

func entityMove(entities ...string) testMove {
	return testMove{entities: domain.NewInternedStrings(entities)}
}

func (m testMove) Entities() []domain.InternedString { return m.entities }
func (m testMove) Values() []domain.InternedString   { return m.values }

func (m testMove) Signature() uint64 {
	return xxhash.Sum64String(m.String())
}

func (m testMove) String() string {
	names := func(ids []domain.InternedString) string {
		parts := make([]string, len(ids))
		for i, v := range ids {
			parts[i] = v.String()
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("entities[%s] values[%s]", names(m.entities), names(m.values))
}

// harness drives one acceptor through a phase with a controlled best score.
type harness struct {
	t        *testing.T
	acceptor *tabu.Acceptor
	phase    *domain.PhaseScope
	best     domain.Score
	step     *domain.StepScope
}

func newHarness(t *testing.T, kind tabu.TokenKind, size int, aspiration bool, opts ...tabu.Option) *harness {
	t.Helper()

	extractor, err := tabu.NewExtractor(kind)
	require.NoError(t, err)
	strategy, err := tabu.NewFixedSize(size)
	require.NoError(t, err)
	acceptor, err := tabu.NewAcceptor(extractor, strategy, tabu.NewAspiration(aspiration), opts...)
	require.NoError(t, err)

	h := &harness{t: t, acceptor: acceptor}
	h.phase = &domain.PhaseScope{
		BestScore:   func() domain.Score { return h.best },
		EntityCount: 10,
		ValueCount:  5,
	}
	require.NoError(t, acceptor.PhaseStarted(h.phase))
	h.step = &domain.StepScope{Phase: h.phase}
	t.Cleanup(func() {
		_ = acceptor.PhaseEnded(h.phase)
	})
	return h
}

func (h *harness) accepted(move domain.Move, score domain.Score) bool {
	h.t.Helper()
	ok, err := h.acceptor.IsAccepted(&domain.MoveScope{Step: h.step, Move: move, Score: score})
	require.NoError(h.t, err)
	return ok
}

func (h *harness) commit(move domain.Move) {
	h.t.Helper()
	h.step.Move = move
	require.NoError(h.t, h.acceptor.StepEnded(h.step))
	h.step = &domain.StepScope{Phase: h.phase, Index: h.step.Index + 1}
}
