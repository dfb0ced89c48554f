package rewrites

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/askayo/server/internal/testutil"
)

func TestTotalsAndDailyTotals(t *testing.T) {
	repo := NewRepository(testutil.Postgres(t))
	ctx := context.Background()

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)

	for _, tokens := range []int{150, 50} {
		rw := &Rewrite{
			ClientID:             "a",
			TermKey:              "ebitda",
			OriginalExplanation:  "earnings before interest",
			RewrittenExplanation: "profit before some costs",
			Model:                "gpt-3.5-turbo",
			TokensUsed:           tokens,
			CostUSD:              0.0001,
		}

		require.NoError(t, repo.Create(ctx, rw))
		assert.NotZero(t, rw.ID)
	}

	totals, err = repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Rewrites)
	assert.Equal(t, 200, totals.Tokens)
	assert.InDelta(t, 0.0002, totals.CostUSD, 1e-9)

	daily, err := repo.DailyTotalsSince(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 2, daily[0].Count)
	assert.Equal(t, 200, daily[0].Tokens)
}
