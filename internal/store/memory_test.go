package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/numguess/internal/game"
)

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	rec := Record{
		RoundID:    "r1",
		Difficulty: game.Medium,
		Outcome:    game.Outcome{Won: true, Attempts: 4, Secret: 30, Elapsed: 12 * time.Second},
	}
	require.NoError(t, st.Save(ctx, rec))

	got, err := st.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, st.Save(ctx, Record{}))
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	s, err := st.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, s)

	_ = st.Save(ctx, Record{RoundID: "a", Outcome: game.Outcome{Won: true, Elapsed: 40 * time.Second}})
	_ = st.Save(ctx, Record{RoundID: "b", Outcome: game.Outcome{Won: false, Elapsed: 5 * time.Second}})
	_ = st.Save(ctx, Record{RoundID: "c", Outcome: game.Outcome{Won: true, Elapsed: 20 * time.Second}})

	s, err = st.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Rounds: 3, Wins: 2, Losses: 1, Fastest: 20 * time.Second}, s)
}

func TestConcurrentSave(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = st.Save(ctx, Record{RoundID: string(rune('A' + i))})
		}(i)
	}
	wg.Wait()

	s, err := st.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, s.Rounds)
}
