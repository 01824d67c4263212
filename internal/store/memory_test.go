package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/progress"
)

func newRound(t *testing.T, id, word string) *game.Game {
	t.Helper()
	g, err := game.New(id, word, progress.Gallows())
	require.NoError(t, err)
	return g
}

func TestMemory_SaveSnapshotDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Snapshot(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(ctx, newRound(t, "r1", "cat")))
	s, err := st.Snapshot(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "___", s.Mask)

	require.NoError(t, st.Delete(ctx, "r1"))
	require.NoError(t, st.Delete(ctx, "r1"))
	_, err = st.Snapshot(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Update(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, newRound(t, "r1", "cat")))

	err := st.Update(ctx, "r1", func(g *game.Game) error {
		_, err := g.Guess("a")
		return err
	})
	require.NoError(t, err)
	s, _ := st.Snapshot(ctx, "r1")
	assert.Equal(t, "_A_", s.Mask)

	boom := errors.New("boom")
	assert.ErrorIs(t, st.Update(ctx, "r1", func(*game.Game) error { return boom }), boom)
	assert.ErrorIs(t, st.Update(ctx, "nope", func(*game.Game) error { return nil }), ErrNotFound)
}

func TestMemory_UpdateSerializesGuesses(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, newRound(t, "r1", "abcdefghijklmnopqrstuvwxyz")))

	var wg sync.WaitGroup
	for r := 'a'; r <= 'z'; r++ {
		wg.Add(1)
		go func(letter string) {
			defer wg.Done()
			_ = st.Update(ctx, "r1", func(g *game.Game) error {
				_, err := g.Guess(letter)
				return err
			})
		}(string(r))
	}
	wg.Wait()

	s, err := st.Snapshot(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, game.Won, s.Outcome)
	assert.Len(t, s.Guessed, 26)
}
