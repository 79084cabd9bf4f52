package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabu/internal/adapters/scoring"
	"go.trai.ch/tabu/internal/adapters/telemetry"
	"go.trai.ch/tabu/internal/app"
	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/tabu/internal/core/ports/mocks"
	"go.trai.ch/tabu/internal/engine/localsearch"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

// fakeRecorder counts metric calls and remembers the textfile path.
type fakeRecorder struct {
	mu        sync.Mutex
	decisions int
	steps     int
	textfile  string
}

func (f *fakeRecorder) Decision(string, bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decisions++
}

func (f *fakeRecorder) Window(string, int, int) {}

func (f *fakeRecorder) Step(domain.Score) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steps++
}

func (f *fakeRecorder) NewBest(domain.Score) {}

func (f *fakeRecorder) WriteTextfile(path string) error {
	f.textfile = path
	return nil
}

type appTestMocks struct {
	loader   *mocks.MockConfigLoader
	store    *mocks.MockReportStore
	logger   *mocks.MockLogger
	recorder *fakeRecorder
}

func setupAppTest(t *testing.T) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		store:    mocks.NewMockReportStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		recorder: &fakeRecorder{},
	}
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	solver := localsearch.NewSolver(scoring.NewCalculator(), telemetry.NewNoOpTracer(), m.logger, m.recorder)
	a := app.New(m.loader, solver, m.store, m.logger, m.recorder).WithClock(func() time.Time { return fixedNow })
	return a, m
}

func id(s string) domain.InternedString {
	return domain.NewInternedString(s)
}

// newRunConfig is a path of three entities over two colors with a value tabu.
func newRunConfig(t *testing.T) *domain.RunConfig {
	t.Helper()
	p, err := domain.NewProblem("path",
		[]domain.Entity{{ID: id("a")}, {ID: id("b")}, {ID: id("c")}},
		[]domain.Value{{ID: id("red")}, {ID: id("green")}},
		[]domain.Conflict{{Left: id("a"), Right: id("b")}, {Left: id("b"), Right: id("c")}},
	)
	require.NoError(t, err)

	size := 1
	return &domain.RunConfig{
		Solver: domain.SolverConfig{
			Seed:             5,
			StepLimit:        20,
			MoveCountPerStep: 10,
			Parallelism:      2,
			Acceptor:         domain.AcceptorConfig{EntityTabuSize: &size},
		},
		Problem: p,
	}
}

func TestApp_Solve_StoresFirstReport(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)

	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.store.EXPECT().Get(cfg.Problem.Fingerprint()).Return(nil, nil)

	var stored domain.RunReport
	m.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.RunReport) error {
		stored = r
		return nil
	})

	outcome, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{})
	require.NoError(t, err)

	assert.True(t, outcome.Stored)
	assert.Nil(t, outcome.Previous)
	assert.False(t, outcome.Improved())
	assert.Equal(t, outcome.Report, stored)

	r := outcome.Report
	assert.Equal(t, "path", r.Problem)
	assert.Equal(t, cfg.Problem.Fingerprint(), r.Fingerprint)
	assert.Equal(t, fixedNow, r.Timestamp)
	assert.Len(t, r.Assignments, 3)
	assert.Equal(t, domain.Score{Hard: -2}, outcome.InitialScore)
	assert.True(t, r.BestScore.IsFeasible(), "got %s", r.BestScore)
	assert.Positive(t, m.recorder.decisions, "acceptor decisions reach the metrics")
}

func TestApp_Solve_KeepsBetterStoredReport(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	previous := &domain.RunReport{Fingerprint: cfg.Problem.Fingerprint(), BestScore: domain.Score{Hard: 1}}

	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)
	m.store.EXPECT().Get(cfg.Problem.Fingerprint()).Return(previous, nil)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	outcome, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{})
	require.NoError(t, err)
	assert.False(t, outcome.Stored)
	assert.Equal(t, previous, outcome.Previous)
}

func TestApp_Solve_ReplacesWorseStoredReport(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	previous := &domain.RunReport{Fingerprint: cfg.Problem.Fingerprint(), BestScore: domain.Score{Hard: -5}}

	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)
	m.store.EXPECT().Get(cfg.Problem.Fingerprint()).Return(previous, nil)
	m.store.EXPECT().Put(gomock.Any()).Return(nil)

	var improved bool
	m.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		if strings.HasPrefix(msg, "improved stored best score -5hard/0soft") {
			improved = true
		}
	}).AnyTimes()

	outcome, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{})
	require.NoError(t, err)
	assert.True(t, outcome.Stored)
	assert.True(t, outcome.Improved())
	assert.True(t, improved)
}

func TestApp_Solve_Overrides(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	seed := uint64(99)

	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	outcome, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{
		Seed:      &seed,
		StepLimit: 1,
		NoStore:   true,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, outcome.Report.Steps, 1)
	assert.False(t, outcome.Stored)
}

func TestApp_Solve_LoadError(t *testing.T) {
	a, m := setupAppTest(t)
	m.loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigReadFailed)

	_, err := a.Solve(context.Background(), "missing.yaml", app.SolveOptions{})
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestApp_Solve_AcceptorError(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	cfg.Solver.Acceptor = domain.AcceptorConfig{}

	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)

	_, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{})
	require.ErrorIs(t, err, domain.ErrNoTabuConfigured)
}

func TestApp_Solve_StoreError(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	boom := errors.New("disk on fire")

	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.store.EXPECT().Get(gomock.Any()).Return(nil, boom)

	_, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{})
	require.ErrorIs(t, err, boom)
}

func TestApp_Solve_TraceAndMetricsFiles(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "trace.jsonl")
	metricsPath := filepath.Join(dir, "tabu.prom")

	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	_, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{
		NoStore:     true,
		TracePath:   tracePath,
		MetricsPath: metricsPath,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(tracePath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"solve"`)
	assert.Contains(t, string(data), `"name":"step"`)
	assert.Equal(t, metricsPath, m.recorder.textfile)
}

func TestApp_Solve_ProgressJournal(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "trace.jsonl")
	progressPath := filepath.Join(dir, "progress.jsonl")

	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	_, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{
		NoStore:      true,
		TracePath:    tracePath,
		ProgressPath: progressPath,
	})
	require.NoError(t, err)

	journal, err := os.ReadFile(progressPath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Contains(t, string(journal), `"name":"solve"`)
	assert.Contains(t, string(journal), `"name":"step"`)

	trace, err := os.ReadFile(tracePath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Contains(t, string(trace), `"name":"solve"`)
}

func TestApp_Solve_ProgressJournalCreateFails(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)

	_, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{
		NoStore:      true,
		ProgressPath: filepath.Join(t.TempDir(), "missing", "progress.jsonl"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create progress journal")
}

func TestApp_Solve_NegativeStepLimit(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)

	_, err := a.Solve(context.Background(), "run.yaml", app.SolveOptions{StepLimit: -5, NoStore: true})
	require.ErrorIs(t, err, domain.ErrInvalidSolverConfig)
}

func TestApp_Validate(t *testing.T) {
	a, m := setupAppTest(t)
	cfg := newRunConfig(t)
	m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)

	got, err := a.Validate(context.Background(), "run.yaml")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestApp_Validate_Errors(t *testing.T) {
	size, zero := 2, 0
	ratio := 0.3

	tests := []struct {
		name     string
		acceptor domain.AcceptorConfig
		solver   func(*domain.SolverConfig)
		want     error
	}{
		{name: "no tabu", want: domain.ErrNoTabuConfigured},
		{
			name:     "ambiguous",
			acceptor: domain.AcceptorConfig{ValueTabuSize: &size, ValueTabuRatio: &ratio},
			want:     domain.ErrAmbiguousTabuSize,
		},
		{
			name:     "zero size",
			acceptor: domain.AcceptorConfig{MoveTabuSize: &zero},
			want:     domain.ErrInvalidTabuSize,
		},
		{
			name:     "negative step limit",
			acceptor: domain.AcceptorConfig{MoveTabuSize: &size},
			solver:   func(c *domain.SolverConfig) { c.StepLimit = -1 },
			want:     domain.ErrInvalidSolverConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m := setupAppTest(t)
			cfg := newRunConfig(t)
			cfg.Solver.Acceptor = tt.acceptor
			if tt.solver != nil {
				tt.solver(&cfg.Solver)
			}
			m.loader.EXPECT().Load("run.yaml").Return(cfg, nil)

			_, err := a.Validate(context.Background(), "run.yaml")
			require.ErrorIs(t, err, tt.want)
		})
	}
}
