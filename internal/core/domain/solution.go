package domain

import (
	"maps"

	"go.trai.ch/zerr"
)

// Assignment is one entity and the value it holds.
type Assignment struct {
	Entity InternedString `json:"entity"`
	Value  InternedString `json:"value"`
}

// Solution is a working assignment of values to the entities of a problem.
// It is not safe for concurrent mutation; readers must work on a Clone.
type Solution struct {
	problem    *Problem
	assignment map[InternedString]InternedString
}

// NewSolution assigns every entity its initial value, or its first allowed value.
func NewSolution(p *Problem) *Solution {
	s := &Solution{
		problem:    p,
		assignment: make(map[InternedString]InternedString, len(p.Entities)),
	}
	for _, e := range p.Entities {
		v := e.Initial
		if v.IsZero() {
			v = p.AllowedValues(e.ID)[0]
		}
		s.assignment[e.ID] = v
	}
	return s
}

// Problem returns the problem the solution belongs to.
func (s *Solution) Problem() *Problem {
	return s.problem
}

// ValueOf returns the value held by entity, or the zero value when it is unknown.
func (s *Solution) ValueOf(entity InternedString) InternedString {
	return s.assignment[entity]
}

// Assign sets entity to value after checking both exist and the value is allowed.
func (s *Solution) Assign(entity, value InternedString) error {
	if _, ok := s.problem.Entity(entity); !ok {
		return zerr.With(zerr.Wrap(ErrUnknownEntity, ""), "entity", entity.String())
	}
	if !s.problem.IsAllowed(entity, value) {
		return zerr.With(zerr.With(zerr.Wrap(ErrUnknownValue, "value not allowed for entity"),
			"entity", entity.String()), "value", value.String())
	}
	s.assignment[entity] = value
	return nil
}

// Clone returns an independent copy sharing the same problem.
func (s *Solution) Clone() *Solution {
	return &Solution{
		problem:    s.problem,
		assignment: maps.Clone(s.assignment),
	}
}

// Assignments lists the assignment in problem entity order.
func (s *Solution) Assignments() []Assignment {
	out := make([]Assignment, len(s.problem.Entities))
	for i, e := range s.problem.Entities {
		out[i] = Assignment{Entity: e.ID, Value: s.assignment[e.ID]}
	}
	return out
}
