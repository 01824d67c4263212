package assets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/words"
)

func TestDefaultListServesCommonRanges(t *testing.T) {
	src := words.NewFSSource(FS, WordsFile)
	for _, r := range [][2]int{{3, 3}, {4, 6}, {7, 10}, {3, 12}} {
		w, err := src.Word(context.Background(), r[0], r[1])
		require.NoError(t, err, "range %v", r)
		assert.True(t, words.InRange(w, r[0], r[1]), "word %q for range %v", w, r)
	}
}

func TestDefaultListHasNoLongWords(t *testing.T) {
	_, err := words.NewFSSource(FS, WordsFile).Word(context.Background(), 20, 30)
	assert.ErrorIs(t, err, words.ErrNoCandidates)
}
