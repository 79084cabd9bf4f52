package domain

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Score is a hard/soft score. Hard constraints dominate: a score with a higher
// hard level is better regardless of its soft level. Higher is better on both levels.
type Score struct {
	Hard int64
	Soft int64
}

// NewSimpleScore returns a score with only a soft level.
func NewSimpleScore(soft int64) Score {
	return Score{Soft: soft}
}

// Compare returns -1, 0 or +1 when s is worse than, equal to or better than other.
func (s Score) Compare(other Score) int {
	if c := cmp.Compare(s.Hard, other.Hard); c != 0 {
		return c
	}
	return cmp.Compare(s.Soft, other.Soft)
}

// IsBetterThan reports whether s is strictly better than other.
func (s Score) IsBetterThan(other Score) bool {
	return s.Compare(other) > 0
}

// IsFeasible reports whether no hard constraint is broken.
func (s Score) IsFeasible() bool {
	return s.Hard >= 0
}

// String returns the score in the "<hard>hard/<soft>soft" form.
func (s Score) String() string {
	return fmt.Sprintf("%dhard/%dsoft", s.Hard, s.Soft)
}

// MarshalText implements encoding.TextMarshaler.
func (s Score) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Score) UnmarshalText(text []byte) error {
	parsed, err := ParseScore(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseScore parses "<hard>hard/<soft>soft" or a bare integer, which is read as a soft-only score.
func ParseScore(text string) (Score, error) {
	text = strings.TrimSpace(text)

	hardPart, softPart, found := strings.Cut(text, "/")
	if !found {
		soft, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Score{}, zerr.With(zerr.Wrap(ErrInvalidScore, err.Error()), "score", text)
		}
		return NewSimpleScore(soft), nil
	}

	hard, err := parseLevel(hardPart, "hard")
	if err != nil {
		return Score{}, zerr.With(zerr.Wrap(ErrInvalidScore, err.Error()), "score", text)
	}
	soft, err := parseLevel(softPart, "soft")
	if err != nil {
		return Score{}, zerr.With(zerr.Wrap(ErrInvalidScore, err.Error()), "score", text)
	}
	return Score{Hard: hard, Soft: soft}, nil
}

func parseLevel(part, suffix string) (int64, error) {
	number, ok := strings.CutSuffix(part, suffix)
	if !ok {
		return 0, fmt.Errorf("missing %q suffix in %q", suffix, part)
	}
	return strconv.ParseInt(number, 10, 64)
}
