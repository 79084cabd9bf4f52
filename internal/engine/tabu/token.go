// Package tabu implements tabu search acceptors: a sliding window of recently
// used solution elements that forbids moves reintroducing them, with an
// aspiration criterion that lets a tabu move through when it yields a new best score.
package tabu

import (
	"fmt"

	"go.trai.ch/tabu/internal/core/domain"
)

// TokenKind identifies what a tabu token stands for.
type TokenKind uint8

const (
	// KindEntity tokens are planning entities touched by a move.
	KindEntity TokenKind = iota + 1
	// KindValue tokens are planning values assigned by a move.
	KindValue
	// KindMove tokens are move identities.
	KindMove
	// KindUndoMove tokens are identities of moves that would revert a recent step.
	KindUndoMove
)

func (k TokenKind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindValue:
		return "value"
	case KindMove:
		return "move"
	case KindUndoMove:
		return "undoMove"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// Token is the unit of forbidden-ness. It is comparable and usable as a map key.
type Token struct {
	kind TokenKind
	name domain.InternedString
	sig  uint64
}

// EntityToken returns the token of a planning entity.
func EntityToken(id domain.InternedString) Token {
	return Token{kind: KindEntity, name: id}
}

// ValueToken returns the token of a planning value.
func ValueToken(id domain.InternedString) Token {
	return Token{kind: KindValue, name: id}
}

// MoveToken returns the token of a move identity.
func MoveToken(kind TokenKind, signature uint64) Token {
	return Token{kind: kind, sig: signature}
}

// Kind returns the token kind.
func (t Token) Kind() TokenKind {
	return t.kind
}

func (t Token) String() string {
	switch t.kind {
	case KindEntity, KindValue:
		return fmt.Sprintf("%s(%s)", t.kind, t.name)
	default:
		return fmt.Sprintf("%s(%016x)", t.kind, t.sig)
	}
}
