package results_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rift-server/internal/repositories/results"
)

func TestInMemory_SaveGetRecent(t *testing.T) {
	repo := results.NewInMemory()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, summaryAt("old", base)))
	require.NoError(t, repo.Save(ctx, summaryAt("new", base.Add(time.Hour))))

	got, err := repo.Get(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, "Azure", got.BlueTeam)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, results.ErrNotFound)

	recent, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].MatchID)
}
