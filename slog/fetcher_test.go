package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	unlocked "github.com/Skasundra/medium-unlocked"
	"github.com/Skasundra/medium-unlocked/mock"
	"github.com/Skasundra/medium-unlocked/slog"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("passes through the response and logs the host", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, req unlocked.FetchRequest) (string, error) {
				return "<html>ok</html>", nil
			},
		}
		f := slog.NewLoggingFetcher(next, logger)

		html, err := f.Fetch(context.Background(), unlocked.FetchRequest{URL: "https://freedium.cfd/article"})
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Contains(t, buf.String(), "fetch succeeded")
		assert.Contains(t, buf.String(), "freedium.cfd")
	})

	t.Run("passes through errors unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

		want := unlocked.Errorf(unlocked.ETIMEOUT, "mirror timed out")
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, req unlocked.FetchRequest) (string, error) {
				return "", want
			},
		}
		f := slog.NewLoggingFetcher(next, logger)

		_, err := f.Fetch(context.Background(), unlocked.FetchRequest{URL: "https://freedium.cfd/article"})
		require.Error(t, err)
		assert.Equal(t, unlocked.ETIMEOUT, unlocked.ErrorCode(err))
		assert.Contains(t, buf.String(), "fetch failed")
	})
}
