package domain

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Move is an atomic proposed change to a solution.
type Move interface {
	// Entities returns the planning entities the move touches.
	Entities() []InternedString
	// Values returns the planning values the move assigns.
	Values() []InternedString
	// Signature returns a stable identity. Two moves with equal signatures are the same move.
	Signature() uint64
	String() string
}

// Undoer is implemented by moves that can compute their inverse.
type Undoer interface {
	// Undo returns the move that reverts this move, or nil when no inverse exists.
	Undo() Move
}

// Doable is a move that can be applied to a working solution.
type Doable interface {
	Move
	ApplyTo(s *Solution) error
}

var (
	_ Doable = ChangeMove{}
	_ Doable = SwapMove{}
	_ Doable = CompositeMove{}
	_ Undoer = ChangeMove{}
	_ Undoer = SwapMove{}
	_ Undoer = CompositeMove{}
)

// ChangeMove assigns To to Entity, which currently holds From.
// Its identity is the entity and the target value; the source value is not part of it.
type ChangeMove struct {
	Entity InternedString
	From   InternedString
	To     InternedString
}

// Entities implements Move.
func (m ChangeMove) Entities() []InternedString {
	return []InternedString{m.Entity}
}

// Values implements Move.
func (m ChangeMove) Values() []InternedString {
	return []InternedString{m.To}
}

// Signature implements Move.
func (m ChangeMove) Signature() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString("change")
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(m.Entity.String())
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(m.To.String())
	return h.Sum64()
}

// Undo returns the change back to From. A move from an unassigned entity has no inverse.
func (m ChangeMove) Undo() Move {
	if m.From.IsZero() {
		return nil
	}
	return ChangeMove{Entity: m.Entity, From: m.To, To: m.From}
}

// ApplyTo implements Doable.
func (m ChangeMove) ApplyTo(s *Solution) error {
	return s.Assign(m.Entity, m.To)
}

func (m ChangeMove) String() string {
	return fmt.Sprintf("%s {%s -> %s}", m.Entity, m.From, m.To)
}

// SwapMove exchanges the values of two entities. Left currently holds LeftValue
// and Right holds RightValue. Swapping a and b is the same move as swapping b and a.
type SwapMove struct {
	Left       InternedString
	Right      InternedString
	LeftValue  InternedString
	RightValue InternedString
}

// Entities implements Move.
func (m SwapMove) Entities() []InternedString {
	return []InternedString{m.Left, m.Right}
}

// Values returns the values assigned by the swap: RightValue to Left, LeftValue to Right.
func (m SwapMove) Values() []InternedString {
	return []InternedString{m.RightValue, m.LeftValue}
}

// Signature implements Move.
func (m SwapMove) Signature() uint64 {
	a, b := m.Left.String(), m.Right.String()
	if b < a {
		a, b = b, a
	}
	h := xxhash.New()
	_, _ = h.WriteString("swap")
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(a)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(b)
	return h.Sum64()
}

// Undo swaps the two entities back.
func (m SwapMove) Undo() Move {
	return SwapMove{Left: m.Left, Right: m.Right, LeftValue: m.RightValue, RightValue: m.LeftValue}
}

// ApplyTo implements Doable.
func (m SwapMove) ApplyTo(s *Solution) error {
	if err := s.Assign(m.Left, m.RightValue); err != nil {
		return err
	}
	return s.Assign(m.Right, m.LeftValue)
}

func (m SwapMove) String() string {
	return fmt.Sprintf("%s {%s} <-> %s {%s}", m.Left, m.LeftValue, m.Right, m.RightValue)
}

// CompositeMove applies its moves in order.
type CompositeMove struct {
	Moves []Doable
}

// Entities returns the distinct entities of all sub-moves in order of first occurrence.
func (m CompositeMove) Entities() []InternedString {
	return collectDistinct(m.Moves, Move.Entities)
}

// Values returns the distinct values of all sub-moves in order of first occurrence.
func (m CompositeMove) Values() []InternedString {
	return collectDistinct(m.Moves, Move.Values)
}

// Signature implements Move.
func (m CompositeMove) Signature() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString("composite")
	var buf [8]byte
	for _, sub := range m.Moves {
		binary.LittleEndian.PutUint64(buf[:], sub.Signature())
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Undo returns the inverses of the sub-moves in reverse order, or nil when any sub-move has none.
func (m CompositeMove) Undo() Move {
	undos := make([]Doable, 0, len(m.Moves))
	for i := len(m.Moves) - 1; i >= 0; i-- {
		u, ok := m.Moves[i].(Undoer)
		if !ok {
			return nil
		}
		inverse, ok := u.Undo().(Doable)
		if !ok {
			return nil
		}
		undos = append(undos, inverse)
	}
	return CompositeMove{Moves: undos}
}

// ApplyTo implements Doable.
func (m CompositeMove) ApplyTo(s *Solution) error {
	for _, sub := range m.Moves {
		if err := sub.ApplyTo(s); err != nil {
			return err
		}
	}
	return nil
}

func (m CompositeMove) String() string {
	parts := make([]string, len(m.Moves))
	for i, sub := range m.Moves {
		parts[i] = sub.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func collectDistinct(moves []Doable, get func(Move) []InternedString) []InternedString {
	seen := make(map[InternedString]struct{})
	var out []InternedString
	for _, sub := range moves {
		for _, id := range get(sub) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
