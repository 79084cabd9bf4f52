package tabu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/engine/tabu"
)

func TestNewExtractor(t *testing.T) {
	for _, kind := range []tabu.TokenKind{tabu.KindEntity, tabu.KindValue, tabu.KindMove, tabu.KindUndoMove} {
		t.Run(kind.String(), func(t *testing.T) {
			e, err := tabu.NewExtractor(kind)
			require.NoError(t, err)
			assert.Equal(t, kind, e.Kind())
		})
	}

	_, err := tabu.NewExtractor(tabu.TokenKind(0))
	require.ErrorIs(t, err, domain.ErrUnknownTabuKind)
}

func TestExtractor_Tokens(t *testing.T) {
	swap := domain.SwapMove{Left: id("e1"), Right: id("e2"), LeftValue: id("v1"), RightValue: id("v1")}
	change := domain.ChangeMove{Entity: id("e1"), From: id("v0"), To: id("v1")}

	tests := []struct {
		name      string
		kind      tabu.TokenKind
		move      domain.Move
		candidate []tabu.Token
		committed []tabu.Token
	}{
		{
			name:      "entity tokens",
			kind:      tabu.KindEntity,
			move:      swap,
			candidate: []tabu.Token{tabu.EntityToken(id("e1")), tabu.EntityToken(id("e2"))},
			committed: []tabu.Token{tabu.EntityToken(id("e1")), tabu.EntityToken(id("e2"))},
		},
		{
			name:      "value tokens are deduplicated",
			kind:      tabu.KindValue,
			move:      swap,
			candidate: []tabu.Token{tabu.ValueToken(id("v1"))},
			committed: []tabu.Token{tabu.ValueToken(id("v1"))},
		},
		{
			name:      "move token",
			kind:      tabu.KindMove,
			move:      change,
			candidate: []tabu.Token{tabu.MoveToken(tabu.KindMove, change.Signature())},
			committed: []tabu.Token{tabu.MoveToken(tabu.KindMove, change.Signature())},
		},
		{
			name:      "undo move token records the inverse",
			kind:      tabu.KindUndoMove,
			move:      change,
			candidate: []tabu.Token{tabu.MoveToken(tabu.KindUndoMove, change.Signature())},
			committed: []tabu.Token{tabu.MoveToken(tabu.KindUndoMove, change.Undo().Signature())},
		},
		{
			name:      "no entities means no tokens",
			kind:      tabu.KindEntity,
			move:      valueMove("v1"),
			candidate: []tabu.Token{},
			committed: []tabu.Token{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tabu.NewExtractor(tt.kind)
			require.NoError(t, err)

			got, err := e.Extract(tt.move)
			require.NoError(t, err)
			assert.Equal(t, tt.candidate, got)

			again, err := e.Extract(tt.move)
			require.NoError(t, err)
			assert.Equal(t, got, again)

			committed, err := e.ExtractCommitted(tt.move)
			require.NoError(t, err)
			assert.Equal(t, tt.committed, committed)
		})
	}
}

func TestExtractor_NilMove(t *testing.T) {
	for _, kind := range []tabu.TokenKind{tabu.KindEntity, tabu.KindValue, tabu.KindMove, tabu.KindUndoMove} {
		t.Run(kind.String(), func(t *testing.T) {
			e, err := tabu.NewExtractor(kind)
			require.NoError(t, err)

			_, err = e.Extract(nil)
			require.ErrorIs(t, err, domain.ErrMalformedMove)
			_, err = e.ExtractCommitted(nil)
			require.ErrorIs(t, err, domain.ErrMalformedMove)
		})
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "entity(e1)", tabu.EntityToken(id("e1")).String())
	assert.Equal(t, "value(alice)", tabu.ValueToken(id("alice")).String())
	assert.Equal(t, "move(00000000000000ff)", tabu.MoveToken(tabu.KindMove, 255).String())
	assert.Equal(t, "undoMove(0000000000000001)", tabu.MoveToken(tabu.KindUndoMove, 1).String())
	assert.Equal(t, "TokenKind(9)", tabu.TokenKind(9).String())
	assert.NotEqual(t, tabu.EntityToken(id("x")), tabu.ValueToken(id("x")), "kinds never collide")
}
