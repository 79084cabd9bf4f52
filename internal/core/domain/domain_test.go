package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/tabu/internal/core/domain"
)

func id(s string) domain.InternedString {
	return domain.NewInternedString(s)
}

// newRosterProblem builds three shifts and two employees; bob has room for one shift.
func newRosterProblem(t *testing.T) *domain.Problem {
	t.Helper()
	p, err := domain.NewProblem("roster",
		[]domain.Entity{
			{ID: id("mon-early"), Allowed: []domain.InternedString{id("alice"), id("bob")}, Initial: id("bob")},
			{ID: id("mon-late")},
			{ID: id("tue-early"), Penalties: map[domain.InternedString]int64{id("alice"): 3}},
		},
		[]domain.Value{
			{ID: id("alice")},
			{ID: id("bob"), Capacity: 1},
		},
		[]domain.Conflict{{Left: id("mon-early"), Right: id("mon-late")}},
	)
	require.NoError(t, err)
	return p
}
