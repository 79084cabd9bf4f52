package progrock_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	tabuprogrock "go.trai.ch/tabu/internal/adapters/telemetry/progrock"
	"go.trai.ch/tabu/internal/core/ports"
)

// tape keeps every status update in memory.
type tape struct {
	mu      sync.Mutex
	updates []*progrock.StatusUpdate
	closed  bool
}

func (t *tape) WriteStatus(u *progrock.StatusUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.updates = append(t.updates, u)
	return nil
}

func (t *tape) Close() error {
	t.closed = true
	return nil
}

// vertexes returns the latest state of every vertex by name, in first-seen order.
func (t *tape) vertexes() ([]string, map[string]*progrock.Vertex) {
	var order []string
	byID := map[string]*progrock.Vertex{}
	for _, u := range t.updates {
		for _, v := range u.Vertexes {
			if _, seen := byID[v.Id]; !seen {
				order = append(order, v.Id)
			}
			byID[v.Id] = v
		}
	}
	names := make([]string, 0, len(order))
	byName := map[string]*progrock.Vertex{}
	for _, id := range order {
		v := byID[id]
		names = append(names, v.Name)
		byName[v.Name] = v
	}
	return names, byName
}

func (t *tape) logs(vertexID string) string {
	var b strings.Builder
	for _, u := range t.updates {
		for _, l := range u.Logs {
			if l.Vertex == vertexID {
				b.Write(l.Data)
			}
		}
	}
	return b.String()
}

func TestRecorder_InterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*tabuprogrock.Recorder)(nil)
	var _ ports.Span = (*tabuprogrock.Vertex)(nil)
}

func TestRecorder_NestedSpans(t *testing.T) {
	w := &tape{}
	rec := tabuprogrock.NewRecorder(w)

	ctx, solve := rec.Start(context.Background(), "solve", ports.WithAttribute("problem", "roster"))
	stepCtx, step := rec.Start(ctx, "step", ports.WithAttribute("index", 0))
	rec.Event(stepCtx, "new_best", map[string]any{"step": 0, "score": "0hard/-1soft"})
	step.End()
	solve.SetAttribute("steps", 1)
	solve.End()
	require.NoError(t, rec.Close())

	names, byName := w.vertexes()
	assert.Equal(t, []string{"solve", "step"}, names)
	assert.Equal(t, []string{byName["solve"].Id}, byName["step"].Inputs)
	assert.NotNil(t, byName["solve"].Completed)
	assert.NotNil(t, byName["step"].Completed)

	assert.Equal(t, "problem=roster\nsteps=1\n", w.logs(byName["solve"].Id))
	assert.Equal(t, "index=0\nnew_best score=0hard/-1soft step=0\n", w.logs(byName["step"].Id))
	assert.True(t, w.closed)
}

func TestRecorder_RepeatedNamesGetDistinctVertexes(t *testing.T) {
	w := &tape{}
	rec := tabuprogrock.NewRecorder(w)

	for range 3 {
		_, span := rec.Start(context.Background(), "step")
		span.End()
	}

	names, _ := w.vertexes()
	assert.Equal(t, []string{"step", "step", "step"}, names)
}

func TestRecorder_RecordError(t *testing.T) {
	w := &tape{}
	rec := tabuprogrock.NewRecorder(w)

	_, failed := rec.Start(context.Background(), "failed")
	failed.RecordError(errors.New("acceptor rejected phase"))
	failed.RecordError(nil)
	failed.End()

	_, cancelled := rec.Start(context.Background(), "cancelled")
	cancelled.RecordError(context.Canceled)
	cancelled.End()

	_, byName := w.vertexes()
	require.NotNil(t, byName["failed"].Error)
	assert.Equal(t, "acceptor rejected phase", *byName["failed"].Error)
	assert.True(t, byName["cancelled"].Canceled)
	assert.Nil(t, byName["cancelled"].Error)
}

func TestRecorder_EventWithoutSpan(t *testing.T) {
	w := &tape{}
	rec := tabuprogrock.NewRecorder(w)

	rec.Event(context.Background(), "new_best", nil)

	for _, u := range w.updates {
		assert.Empty(t, u.Logs)
	}
}

func TestNewJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.jsonl")
	rec, err := tabuprogrock.NewJournal(path)
	require.NoError(t, err)

	_, span := rec.Start(context.Background(), "solve")
	span.End()
	require.NoError(t, rec.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var sawSolve bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var u struct {
			Vertexes []struct {
				Name string `json:"name"`
			} `json:"vertexes"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &u))
		for _, v := range u.Vertexes {
			sawSolve = sawSolve || v.Name == "solve"
		}
	}
	require.NoError(t, scanner.Err())
	assert.True(t, sawSolve)
}

func TestNewJournal_CreateFails(t *testing.T) {
	_, err := tabuprogrock.NewJournal(filepath.Join(t.TempDir(), "missing", "progress.jsonl"))
	require.Error(t, err)
}
