package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupArchive(t *testing.T) *SnapshotArchive {
	t.Helper()
	scope := testScope(t)

	require.NoError(t, InitArchive(scope))

	archive, err := NewSnapshotArchive(scope)
	require.NoError(t, err)
	return archive
}

func TestArchiveRequiresInit(t *testing.T) {
	_, err := NewSnapshotArchive(testScope(t))
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestCommitAndLogSnapshots(t *testing.T) {
	archive := setupArchive(t)
	ctx := context.Background()

	for _, ts := range []string{"2026-08-28T10:00:00Z", "2026-08-28T11:00:00Z"} {
		doc := `{"ts":"` + ts + `"}`
		commit, err := archive.CommitSnapshot(ctx, []byte(doc), ts)
		require.NoError(t, err)
		assert.Contains(t, commit.Message, ts)
	}

	commits, err := archive.Log(ctx, 0)
	require.NoError(t, err)
	// Two snapshots plus the init commit, newest first.
	require.Len(t, commits, 3)
	assert.Contains(t, commits[0].Message, "2026-08-28T11:00:00Z")

	limited, err := archive.Log(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestLastSnapshot(t *testing.T) {
	archive := setupArchive(t)
	ctx := context.Background()

	// Only the init commit exists, no snapshot file yet.
	last, err := archive.LastSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, last)

	doc := `{"ledger_48h":[]}`
	_, err = archive.CommitSnapshot(ctx, []byte(doc), "2026-08-28T10:00:00Z")
	require.NoError(t, err)

	last, err = archive.LastSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, last)
}

func TestDiffSnapshot(t *testing.T) {
	archive := setupArchive(t)
	ctx := context.Background()

	doc := `{"tier2_summaries_30d":[]}`
	_, err := archive.CommitSnapshot(ctx, []byte(doc), "2026-08-28T10:00:00Z")
	require.NoError(t, err)

	same, err := archive.DiffSnapshot(ctx, doc)
	require.NoError(t, err)
	assert.Empty(t, same, "diff of identical documents")

	changed, err := archive.DiffSnapshot(ctx, `{"tier2_summaries_30d":["x"]}`)
	require.NoError(t, err)
	assert.NotEmpty(t, changed, "diff of changed document")
}
