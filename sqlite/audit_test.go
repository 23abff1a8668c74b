package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	unlocked "github.com/Skasundra/medium-unlocked"
	"github.com/Skasundra/medium-unlocked/sqlite"
)

func TestAuditService_Append(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		entry := &unlocked.LogEntry{
			URL:            "https://medium.com/@alice/post",
			Attempt:        1,
			Method:         "freedium",
			Status:         unlocked.StatusSuccess,
			ResponseTimeMs: 420,
			ContentLength:  9000,
			Score:          82,
		}
		require.NoError(t, svc.Append(context.Background(), entry))

		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("stores fixed-width fractional seconds", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		entry := &unlocked.LogEntry{
			URL:    "https://medium.com/@alice/post",
			Method: "freedium",
			Status: unlocked.StatusSuccess,
		}
		require.NoError(t, svc.Append(ctx, entry))

		// created_at is TEXT ordered lexicographically, so the fraction
		// must never be trimmed ("...00.5Z" would sort after "...00.51Z").
		var createdAt string
		require.NoError(t, db.QueryRowContext(ctx,
			"SELECT created_at FROM extraction_logs WHERE id = ?", entry.ID).Scan(&createdAt))
		assert.Regexp(t, `\.\d{9}Z$`, createdAt)
	})

	t.Run("requires URL and status", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		err := svc.Append(ctx, &unlocked.LogEntry{Status: unlocked.StatusFailed})
		assert.Equal(t, unlocked.EINVALID, unlocked.ErrorCode(err))

		err = svc.Append(ctx, &unlocked.LogEntry{URL: "https://medium.com/@a/p"})
		assert.Equal(t, unlocked.EINVALID, unlocked.ErrorCode(err))
	})
}

func TestAuditService_Recent(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first with limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		for i := 1; i <= 5; i++ {
			require.NoError(t, svc.Append(ctx, &unlocked.LogEntry{
				URL:     fmt.Sprintf("https://medium.com/@alice/post-%d", i),
				Attempt: i,
				Method:  "freedium",
				Status:  unlocked.StatusFailed,
			}))
		}

		entries, err := svc.Recent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, 5, entries[0].Attempt)
		assert.Equal(t, 4, entries[1].Attempt)
		assert.Equal(t, 3, entries[2].Attempt)
	})

	t.Run("orders sub-second neighbors correctly", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		insert := func(url, createdAt string) {
			_, err := db.ExecContext(ctx, `
				INSERT INTO extraction_logs (id, url, status, created_at)
				VALUES (?, ?, 'failed', ?)
			`, url, url, createdAt)
			require.NoError(t, err)
		}

		// Ten milliseconds apart within the same second; a trimmed-zero
		// encoding ("...00.5Z" vs "...00.51Z") would invert these.
		insert("https://medium.com/@alice/older", "2026-08-01T12:00:00.500000000Z")
		insert("https://medium.com/@alice/newer", "2026-08-01T12:00:00.510000000Z")

		entries, err := svc.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "https://medium.com/@alice/newer", entries[0].URL)
		assert.Equal(t, "https://medium.com/@alice/older", entries[1].URL)
	})

	t.Run("empty log", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		entries, err := svc.Recent(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
