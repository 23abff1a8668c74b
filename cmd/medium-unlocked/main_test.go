package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	unlocked "github.com/Skasundra/medium-unlocked"
	main "github.com/Skasundra/medium-unlocked/cmd/medium-unlocked"
	"github.com/Skasundra/medium-unlocked/mock"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func TestSweepCmd(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := testDeps(stdout, stderr)
	deps.Cache = &mock.CacheService{
		SweepFn: func(ctx context.Context) (int, error) { return 3, nil },
	}

	cmd := &main.SweepCmd{}
	require.NoError(t, cmd.Run(deps))
	assert.Contains(t, stdout.String(), "Removed 3 expired cache entries")
	assert.Empty(t, stderr.String())
}

func TestLogsCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints entries", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Audit = &mock.AuditService{
			RecentFn: func(ctx context.Context, limit int) ([]*unlocked.LogEntry, error) {
				assert.Equal(t, 20, limit)
				return []*unlocked.LogEntry{{
					URL:          "https://medium.com/@alice/post",
					Method:       "freedium",
					Attempt:      2,
					Status:       unlocked.StatusFailed,
					ErrorMessage: "mirror timed out",
					CreatedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
				}}, nil
			},
		}

		cmd := &main.LogsCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "freedium")
		assert.Contains(t, stdout.String(), "mirror timed out")
	})

	t.Run("empty log", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Audit = &mock.AuditService{
			RecentFn: func(ctx context.Context, limit int) ([]*unlocked.LogEntry, error) {
				return nil, nil
			},
		}

		cmd := &main.LogsCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No extraction attempts logged yet")
	})
}

func TestStatsCmd(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := testDeps(stdout, stderr)
	deps.Reliability = &mock.ReliabilityService{
		TopDomainsFn: func(ctx context.Context, limit int) ([]*unlocked.ReliabilityRecord, error) {
			return []*unlocked.ReliabilityRecord{{
				Domain:             "medium.com",
				TotalAttempts:      10,
				SuccessfulAttempts: 8,
				AvgResponseTimeMs:  420,
				BestMethod:         "freedium",
			}}, nil
		},
	}
	deps.Audit = &mock.AuditService{
		RecentFn: func(ctx context.Context, limit int) ([]*unlocked.LogEntry, error) {
			return []*unlocked.LogEntry{{
				Method:    "freedium",
				Status:    unlocked.StatusSuccess,
				Score:     82,
				CreatedAt: time.Now(),
			}}, nil
		},
	}

	cmd := &main.StatsCmd{Top: 10}
	require.NoError(t, cmd.Run(deps))
	assert.Contains(t, stdout.String(), "medium.com")
	assert.Contains(t, stdout.String(), "80%")
	assert.Contains(t, stdout.String(), "freedium")
}

// TestMain_Run wires the real SQLite services against a temporary
// database and runs the commands that need no network.
func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("sweep against a fresh database", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "unlocked.db")

		err := m.Run(context.Background(), []string{"sweep"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Removed 0 expired cache entries")
	})

	t.Run("logs against a fresh database", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "unlocked.db")

		err := m.Run(context.Background(), []string{"logs"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No extraction attempts logged yet")
	})

	t.Run("no command prints help and errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "unlocked.db")

		err := m.Run(context.Background(), nil, stdout, stderr)
		require.Error(t, err)
	})
}
