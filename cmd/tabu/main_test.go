package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tabu/internal/adapters/config"
	"go.trai.ch/tabu/internal/adapters/logger"
	"go.trai.ch/tabu/internal/adapters/metrics"
	"go.trai.ch/tabu/internal/adapters/report"
	"go.trai.ch/tabu/internal/adapters/scoring"
	"go.trai.ch/tabu/internal/adapters/telemetry"
	"go.trai.ch/tabu/internal/app"
	"go.trai.ch/tabu/internal/core/ports"
	"go.trai.ch/tabu/internal/core/ports/mocks"
	"go.trai.ch/tabu/internal/engine/localsearch"
	"go.uber.org/mock/gomock"
)

const runFile = `version: "1"
solver:
  seed: 7
  stepLimit: 20
  acceptor:
    entityTabuSize: 1
problem:
  name: path
  values:
    - id: red
    - id: green
  entities:
    - id: a
      allowed: [red, green]
      initial: red
    - id: b
      allowed: [red, green]
      initial: red
  conflicts:
    - [a, b]
`

func newProvider(t *testing.T, log ports.Logger) ComponentProvider {
	t.Helper()
	recorder, err := metrics.NewRecorder()
	require.NoError(t, err)

	solver := localsearch.NewSolver(scoring.NewCalculator(), telemetry.NewNoOpTracer(), log, recorder)
	application := app.New(
		config.NewLoader(log),
		solver,
		report.NewStore(filepath.Join(t.TempDir(), "reports")),
		log,
		recorder,
	)
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, newProvider(t, log))
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "tabu version")
}

func TestRun_Solve(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(runFile), 0o600))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"solve", "--json", path}, stdout, new(bytes.Buffer), newProvider(t, log))
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), `"problem": "path"`)
}

func TestRun_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"solve", "does-not-exist.yaml"}, new(bytes.Buffer), new(bytes.Buffer), newProvider(t, log))
	assert.Equal(t, 1, exitCode)
}

func TestRun_ProviderError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graph failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graph failed\n", stderr.String())
}

func TestRun_LoggerFollowsStderr(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"solve", "does-not-exist.yaml"},
		new(bytes.Buffer), stderr, newProvider(t, logger.New()))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: failed to load run file")
}

func TestRun_JSONLogsWithJSONReport(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"solve", "--json", "does-not-exist.yaml"},
		new(bytes.Buffer), stderr, newProvider(t, logger.New()))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), `"msg":"operation failed"`)
	assert.Contains(t, stderr.String(), "failed to load run file")
}
