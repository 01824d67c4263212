package console

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/progress"
	"github.com/robalobadob/hangman/internal/words"
)

// script replays fixed lines and then reports io.EOF.
type script struct {
	lines   []string
	prompts []string
}

func (s *script) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

func (s *script) SetPrompt(p string) { s.prompts = append(s.prompts, p) }

type fixedSource struct {
	word     string
	err      error
	min, max int
}

func (f *fixedSource) Word(_ context.Context, minLength, maxLength int) (string, error) {
	f.min, f.max = minLength, maxLength
	return f.word, f.err
}

func TestPlay_Win(t *testing.T) {
	g, err := game.New("r", "cat", progress.Gallows())
	require.NoError(t, err)
	in := &script{lines: []string{"c", "aa", "C", "x", "a", "t"}}
	var out bytes.Buffer

	outcome, err := New(in, &out).Play(g)
	require.NoError(t, err)
	assert.Equal(t, game.Won, outcome)

	text := out.String()
	assert.Contains(t, text, "Word: ___")
	assert.Contains(t, text, "Word: C__")
	assert.Contains(t, text, "Enter a single letter!")
	assert.Contains(t, text, "You already tried that letter!")
	assert.Contains(t, text, "No such letter in the word!")
	assert.Contains(t, text, "Attempts left: 5")
	assert.Contains(t, text, "Tried: A C X")
	assert.Contains(t, text, "Well done! You guessed the word: CAT")
	assert.Contains(t, in.prompts, "Letter: ")
}

func TestPlay_Loss(t *testing.T) {
	g, err := game.New("r", "dog", progress.Gallows())
	require.NoError(t, err)
	in := &script{lines: []string{"q", "w", "e", "r", "t", "y"}}
	var out bytes.Buffer

	outcome, err := New(in, &out).Play(g)
	require.NoError(t, err)
	assert.Equal(t, game.Lost, outcome)
	assert.Contains(t, out.String(), "You lost! The word was: DOG")
	assert.True(t, strings.HasSuffix(out.String(), progress.Gallows().Frame(0)+"\nYou lost! The word was: DOG\n"))
}

func TestPlay_InputClosed(t *testing.T) {
	g, err := game.New("r", "dog", progress.Gallows())
	require.NoError(t, err)

	outcome, err := New(&script{lines: []string{"d"}}, io.Discard).Play(g)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, game.InProgress, outcome)
}

func TestReadRange_Reprompts(t *testing.T) {
	in := &script{lines: []string{"five", "5", "3", " 3 ", "6"}}
	var out bytes.Buffer

	minLength, maxLength, err := New(in, &out).ReadRange()
	require.NoError(t, err)
	assert.Equal(t, 3, minLength)
	assert.Equal(t, 6, maxLength)
	assert.Contains(t, out.String(), `"five" is not a number.`)
	assert.Contains(t, out.String(), "1 <= minimum <= maximum")
}

func TestRun_FileSourceWhenKeyEmpty(t *testing.T) {
	src := &fixedSource{word: "OX"}
	in := &script{lines: []string{"2", "4", "", "o", "x"}}
	var out bytes.Buffer

	outcome, err := New(in, &out).Run(context.Background(), Options{
		FileSource: src,
		Progress:   progress.Gallows(),
	})
	require.NoError(t, err)
	assert.Equal(t, game.Won, outcome)
	assert.Equal(t, 2, src.min)
	assert.Equal(t, 4, src.max)
}

func TestRun_WordnikWhenKeyGiven(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"word":"go"}`))
	}))
	defer api.Close()

	in := &script{lines: []string{"2", "2", "secret", "g", "o"}}
	outcome, err := New(in, io.Discard).Run(context.Background(), Options{
		FileSource: &fixedSource{err: words.ErrNoCandidates},
		Wordnik:    []words.WordnikOption{words.WithBaseURL(api.URL)},
		Progress:   progress.Gallows(),
	})
	require.NoError(t, err)
	assert.Equal(t, game.Won, outcome)
}

func TestRun_PresetKeySkipsPrompt(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"word":"a"}`))
	}))
	defer api.Close()

	in := &script{lines: []string{"1", "1", "a"}}
	outcome, err := New(in, io.Discard).Run(context.Background(), Options{
		Wordnik:  []words.WordnikOption{words.WithBaseURL(api.URL)},
		Progress: progress.Gallows(),
		APIKey:   "preset",
	})
	require.NoError(t, err)
	assert.Equal(t, game.Won, outcome)
	for _, p := range in.prompts {
		assert.NotContains(t, p, "API key")
	}
}

func TestRun_StartupErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no candidates", words.ErrNoCandidates, "no word in the word list matches"},
		{"file unreadable", words.ErrResourceUnavailable, "word list could not be read"},
		{"remote down", words.ErrRemoteUnavailable, "word service is unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &script{lines: []string{"3", "5", ""}}
			var out bytes.Buffer

			_, err := New(in, &out).Run(context.Background(), Options{
				FileSource: &fixedSource{err: tt.err},
				Progress:   progress.Gallows(),
			})
			assert.ErrorIs(t, err, game.ErrNoWord)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, out.String(), tt.want)
			assert.NotContains(t, out.String(), "Letter")
		})
	}
}
