package domain

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Value is a planning value, such as an employee or a time slot.
type Value struct {
	ID InternedString
	// Capacity is the number of entities the value can hold. Zero means unlimited.
	Capacity int
}

// Entity is a planning entity, such as a shift, that must be assigned one value.
type Entity struct {
	ID InternedString
	// Allowed restricts the values the entity may take. Empty means every value.
	Allowed []InternedString
	// Initial is the value assigned before solving starts. Zero means the first allowed value.
	Initial InternedString
	// Penalties maps a value to the soft cost of assigning it.
	Penalties map[InternedString]int64
}

// Conflict forbids two entities from holding the same value.
type Conflict struct {
	Left  InternedString
	Right InternedString
}

// Problem is a validated assignment problem.
type Problem struct {
	Name      string
	Entities  []Entity
	Values    []Value
	Conflicts []Conflict

	entityIndex map[InternedString]int
	valueIndex  map[InternedString]int
	allowed     []map[InternedString]struct{}
}

// NewProblem validates the definition and indexes it for lookups.
func NewProblem(name string, entities []Entity, values []Value, conflicts []Conflict) (*Problem, error) {
	p := &Problem{
		Name:        name,
		Entities:    entities,
		Values:      values,
		Conflicts:   conflicts,
		entityIndex: make(map[InternedString]int, len(entities)),
		valueIndex:  make(map[InternedString]int, len(values)),
		allowed:     make([]map[InternedString]struct{}, len(entities)),
	}

	if len(entities) == 0 {
		return nil, zerr.With(zerr.Wrap(ErrInvalidProblem, "problem has no entities"), "problem", name)
	}
	if len(values) == 0 {
		return nil, zerr.With(zerr.Wrap(ErrInvalidProblem, "problem has no values"), "problem", name)
	}

	for i, v := range values {
		if v.ID.IsZero() || v.ID.String() == "" {
			return nil, zerr.With(zerr.Wrap(ErrInvalidProblem, "value without id"), "index", i)
		}
		if v.Capacity < 0 {
			return nil, zerr.With(zerr.Wrap(ErrInvalidProblem, "negative capacity"), "value", v.ID.String())
		}
		if _, dup := p.valueIndex[v.ID]; dup {
			return nil, zerr.With(zerr.Wrap(ErrInvalidProblem, "duplicate value"), "value", v.ID.String())
		}
		p.valueIndex[v.ID] = i
	}

	for i, e := range entities {
		if e.ID.IsZero() || e.ID.String() == "" {
			return nil, zerr.With(zerr.Wrap(ErrInvalidProblem, "entity without id"), "index", i)
		}
		if _, dup := p.entityIndex[e.ID]; dup {
			return nil, zerr.With(zerr.Wrap(ErrInvalidProblem, "duplicate entity"), "entity", e.ID.String())
		}
		p.entityIndex[e.ID] = i

		if err := p.indexAllowed(i, e); err != nil {
			return nil, err
		}
	}

	for _, c := range conflicts {
		for _, id := range []InternedString{c.Left, c.Right} {
			if _, ok := p.entityIndex[id]; !ok {
				return nil, zerr.With(zerr.Wrap(ErrUnknownEntity, "conflict references unknown entity"), "entity", id.String())
			}
		}
		if c.Left == c.Right {
			return nil, zerr.With(zerr.Wrap(ErrInvalidProblem, "entity conflicts with itself"), "entity", c.Left.String())
		}
	}

	return p, nil
}

func (p *Problem) indexAllowed(i int, e Entity) error {
	set := make(map[InternedString]struct{}, len(e.Allowed))
	for _, v := range e.Allowed {
		if _, ok := p.valueIndex[v]; !ok {
			return zerr.With(zerr.With(zerr.Wrap(ErrUnknownValue, "entity allows unknown value"),
				"entity", e.ID.String()), "value", v.String())
		}
		set[v] = struct{}{}
	}
	p.allowed[i] = set

	if !e.Initial.IsZero() && !p.IsAllowed(e.ID, e.Initial) {
		return zerr.With(zerr.With(zerr.Wrap(ErrInvalidProblem, "initial value is not allowed"),
			"entity", e.ID.String()), "value", e.Initial.String())
	}
	for v := range e.Penalties {
		if _, ok := p.valueIndex[v]; !ok {
			return zerr.With(zerr.With(zerr.Wrap(ErrUnknownValue, "penalty for unknown value"),
				"entity", e.ID.String()), "value", v.String())
		}
	}
	return nil
}

// EntityCount returns the number of planning entities.
func (p *Problem) EntityCount() int {
	return len(p.Entities)
}

// ValueCount returns the number of planning values.
func (p *Problem) ValueCount() int {
	return len(p.Values)
}

// Entity looks up an entity by id.
func (p *Problem) Entity(id InternedString) (*Entity, bool) {
	i, ok := p.entityIndex[id]
	if !ok {
		return nil, false
	}
	return &p.Entities[i], true
}

// Value looks up a value by id.
func (p *Problem) Value(id InternedString) (*Value, bool) {
	i, ok := p.valueIndex[id]
	if !ok {
		return nil, false
	}
	return &p.Values[i], true
}

// IsAllowed reports whether entity may hold value.
func (p *Problem) IsAllowed(entity, value InternedString) bool {
	i, ok := p.entityIndex[entity]
	if !ok {
		return false
	}
	if _, ok := p.valueIndex[value]; !ok {
		return false
	}
	if len(p.allowed[i]) == 0 {
		return true
	}
	_, ok = p.allowed[i][value]
	return ok
}

// AllowedValues returns the values entity may hold, in problem order.
func (p *Problem) AllowedValues(entity InternedString) []InternedString {
	e, ok := p.Entity(entity)
	if !ok {
		return nil
	}
	if len(e.Allowed) > 0 {
		return e.Allowed
	}
	ids := make([]InternedString, len(p.Values))
	for i, v := range p.Values {
		ids[i] = v.ID
	}
	return ids
}

// Fingerprint returns a stable hash of the problem definition.
// Declaration order of entities, values, conflicts and penalties does not change it.
func (p *Problem) Fingerprint() string {
	h := xxhash.New()
	sep := []byte{0}

	_, _ = h.WriteString(p.Name)
	_, _ = h.Write(sep)

	values := slices.Clone(p.Values)
	slices.SortFunc(values, func(a, b Value) int { return compareIDs(a.ID, b.ID) })
	for _, v := range values {
		_, _ = h.WriteString(v.ID.String())
		_, _ = h.Write(sep)
		_, _ = h.WriteString(strconv.Itoa(v.Capacity))
		_, _ = h.Write(sep)
	}

	entities := slices.Clone(p.Entities)
	slices.SortFunc(entities, func(a, b Entity) int { return compareIDs(a.ID, b.ID) })
	for _, e := range entities {
		_, _ = h.WriteString(e.ID.String())
		_, _ = h.Write(sep)
		allowed := slices.Clone(e.Allowed)
		slices.SortFunc(allowed, compareIDs)
		for _, v := range allowed {
			_, _ = h.WriteString(v.String())
			_, _ = h.Write(sep)
		}
		_, _ = h.WriteString(e.Initial.String())
		_, _ = h.Write(sep)
		keys := slices.SortedFunc(maps.Keys(e.Penalties), compareIDs)
		for _, v := range keys {
			_, _ = fmt.Fprintf(h, "%s=%d", v, e.Penalties[v])
			_, _ = h.Write(sep)
		}
	}

	conflicts := make([]string, len(p.Conflicts))
	for i, c := range p.Conflicts {
		a, b := c.Left.String(), c.Right.String()
		if b < a {
			a, b = b, a
		}
		conflicts[i] = a + "|" + b
	}
	slices.Sort(conflicts)
	for _, c := range conflicts {
		_, _ = h.WriteString(c)
		_, _ = h.Write(sep)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

func compareIDs(a, b InternedString) int {
	return cmp.Compare(a.String(), b.String())
}
