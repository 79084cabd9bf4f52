package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Planning entity and planning value identifiers are interned so that moves,
// tabu tokens and assignments compare by handle instead of by string content.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// NewInternedStrings creates a new InternedString slice from a string slice.
func NewInternedStrings(s []string) []InternedString {
	res := make([]InternedString, len(s))
	for i, s := range s {
		res[i] = NewInternedString(s)
	}
	return res
}

// IsZero reports whether the value was never assigned.
func (is InternedString) IsZero() bool {
	return is == InternedString{}
}

// String returns the underlying string value, or "" for the zero value.
func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*is = InternedString{}
		return nil
	}
	is.h = unique.Make(string(text))
	return nil
}
