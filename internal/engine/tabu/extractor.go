package tabu

import (
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/zerr"
)

// TokenExtractor maps a move to the set of tabu tokens it stands for.
// Both methods are pure and return tokens deduplicated in order of first occurrence.
type TokenExtractor interface {
	// Kind returns the tabu kind the extractor produces.
	Kind() TokenKind
	// Extract returns the tokens a candidate move would introduce.
	Extract(move domain.Move) ([]Token, error)
	// ExtractCommitted returns the tokens a committed step adds to the tabu window.
	ExtractCommitted(move domain.Move) ([]Token, error)
}

// NewExtractor returns the extractor for kind.
func NewExtractor(kind TokenKind) (TokenExtractor, error) {
	switch kind {
	case KindEntity:
		return entityExtractor{}, nil
	case KindValue:
		return valueExtractor{}, nil
	case KindMove:
		return moveExtractor{}, nil
	case KindUndoMove:
		return undoMoveExtractor{}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTabuKind, ""), "kind", kind.String())
	}
}

type entityExtractor struct{}

func (entityExtractor) Kind() TokenKind { return KindEntity }

func (e entityExtractor) Extract(move domain.Move) ([]Token, error) {
	if move == nil {
		return nil, malformed(e.Kind(), "nil move")
	}
	return distinct(move.Entities(), EntityToken), nil
}

func (e entityExtractor) ExtractCommitted(move domain.Move) ([]Token, error) {
	return e.Extract(move)
}

type valueExtractor struct{}

func (valueExtractor) Kind() TokenKind { return KindValue }

func (e valueExtractor) Extract(move domain.Move) ([]Token, error) {
	if move == nil {
		return nil, malformed(e.Kind(), "nil move")
	}
	return distinct(move.Values(), ValueToken), nil
}

func (e valueExtractor) ExtractCommitted(move domain.Move) ([]Token, error) {
	return e.Extract(move)
}

type moveExtractor struct{}

func (moveExtractor) Kind() TokenKind { return KindMove }

func (e moveExtractor) Extract(move domain.Move) ([]Token, error) {
	if move == nil {
		return nil, malformed(e.Kind(), "nil move")
	}
	return []Token{MoveToken(KindMove, move.Signature())}, nil
}

func (e moveExtractor) ExtractCommitted(move domain.Move) ([]Token, error) {
	return e.Extract(move)
}

// undoMoveExtractor records the inverse of every committed step and checks
// candidates by their own identity, so a move that reverts a recent step is tabu.
type undoMoveExtractor struct{}

func (undoMoveExtractor) Kind() TokenKind { return KindUndoMove }

func (e undoMoveExtractor) Extract(move domain.Move) ([]Token, error) {
	if move == nil {
		return nil, malformed(e.Kind(), "nil move")
	}
	return []Token{MoveToken(KindUndoMove, move.Signature())}, nil
}

func (e undoMoveExtractor) ExtractCommitted(move domain.Move) ([]Token, error) {
	if move == nil {
		return nil, malformed(e.Kind(), "nil move")
	}
	u, ok := move.(domain.Undoer)
	if !ok {
		return nil, zerr.With(malformed(e.Kind(), "move cannot be undone"), "move", move.String())
	}
	undo := u.Undo()
	if undo == nil {
		return nil, zerr.With(malformed(e.Kind(), "move has no inverse"), "move", move.String())
	}
	return []Token{MoveToken(KindUndoMove, undo.Signature())}, nil
}

func malformed(kind TokenKind, msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrMalformedMove, msg), "tabu", kind.String())
}

func distinct(ids []domain.InternedString, token func(domain.InternedString) Token) []Token {
	tokens := make([]Token, 0, len(ids))
	seen := make(map[Token]struct{}, len(ids))
	for _, id := range ids {
		t := token(id)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}
