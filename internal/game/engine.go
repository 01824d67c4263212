// internal/game/engine.go
//
// Guessing state machine for a single hangman round.
// Responsibilities:
//   - Start a round from a words.Source and a progress.Provider.
//   - Validate and apply letter guesses.
//   - Track the revealed mask, guessed letters and attempts left.
//   - Derive the outcome: playing → won/lost.
//
// Notes:
//   - A correct guess is revealed before any attempt accounting, and never
//     costs an attempt.
//   - Rejected guesses (invalid, repeated) leave the state untouched.
//   - The engine does not print or log; callers render Snapshot().

package game

import (
	"context"
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/progress"
	"github.com/robalobadob/hangman/internal/words"
)

// Start asks src for a word within [minLength, maxLength] and opens a round.
// Any source failure is wrapped in ErrNoWord; the underlying words.Err*
// sentinel stays reachable through errors.Is.
func Start(ctx context.Context, src words.Source, p progress.Provider, minLength, maxLength int) (*Game, error) {
	if err := words.ValidateRange(minLength, maxLength); err != nil {
		return nil, err
	}
	w, err := src.Word(ctx, minLength, maxLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoWord, err)
	}
	g, err := New(uuid.NewString(), w, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoWord, err)
	}
	if !words.InRange(g.Word(), minLength, maxLength) {
		return nil, fmt.Errorf("%w: source returned %q outside [%d, %d]", ErrNoWord, g.Word(), minLength, maxLength)
	}
	return g, nil
}

// New opens a round for a known word.
func New(id, word string, p progress.Provider) (*Game, error) {
	w, ok := words.Normalize(word)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	runes := []rune(w)
	mask := make([]rune, len(runes))
	for i := range mask {
		mask[i] = Placeholder
	}
	return &Game{
		ID:           id,
		word:         runes,
		mask:         mask,
		guessed:      make(map[rune]struct{}),
		attemptsLeft: p.MaxAttempts(),
		maxAttempts:  p.MaxAttempts(),
		frame:        p.Frame,
	}, nil
}

// Guess applies one guess and returns the resulting outcome.
//
// Errors (state unchanged):
//   - ErrRoundOver if the round is already won or lost.
//   - ErrInvalidGuess unless input is exactly one letter with an
//     upper-case form.
//   - ErrRepeatedGuess if the letter was tried before (case-insensitive).
func (g *Game) Guess(input string) (Outcome, error) {
	if g.Outcome().Terminal() {
		return g.Outcome(), ErrRoundOver
	}
	if utf8.RuneCountInString(input) != 1 {
		return g.Outcome(), ErrInvalidGuess
	}
	// Words only hold upper-case letters, so a letter without an
	// upper-case form (ß, caseless scripts) can never match.
	r := unicode.ToUpper([]rune(input)[0])
	if !unicode.IsUpper(r) {
		return g.Outcome(), ErrInvalidGuess
	}
	if _, ok := g.guessed[r]; ok {
		return g.Outcome(), ErrRepeatedGuess
	}
	g.guessed[r] = struct{}{}

	if g.reveal(r) {
		return g.Outcome(), nil
	}
	if g.attemptsLeft > 0 {
		g.attemptsLeft--
	}
	return g.Outcome(), nil
}

// reveal uncovers every position holding r and reports whether any did.
func (g *Game) reveal(r rune) bool {
	hit := false
	for i, c := range g.word {
		if c == r {
			g.mask[i] = c
			hit = true
		}
	}
	return hit
}

// Outcome derives the round state from the mask and attempts left.
func (g *Game) Outcome() Outcome {
	if !g.hasPlaceholders() {
		return Won
	}
	if g.attemptsLeft == 0 {
		return Lost
	}
	return InProgress
}

func (g *Game) hasPlaceholders() bool {
	for _, c := range g.mask {
		if c == Placeholder {
			return true
		}
	}
	return false
}

// Mask renders the revealed word, e.g. "C_T".
func (g *Game) Mask() string { return string(g.mask) }

// Word returns the target word.
func (g *Game) Word() string { return string(g.word) }

func (g *Game) AttemptsLeft() int { return g.attemptsLeft }

func (g *Game) MaxAttempts() int { return g.maxAttempts }

// Guessed returns the letters tried so far, sorted.
func (g *Game) Guessed() []string {
	out := make([]string, 0, len(g.guessed))
	for r := range g.guessed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// Frame is the progress frame for the current attempts left.
func (g *Game) Frame() string { return g.frame(g.attemptsLeft) }

// Snapshot copies the observable state. Word is withheld until the round ends.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ID:           g.ID,
		Mask:         g.Mask(),
		Guessed:      g.Guessed(),
		AttemptsLeft: g.attemptsLeft,
		MaxAttempts:  g.maxAttempts,
		Outcome:      g.Outcome(),
		Frame:        g.Frame(),
	}
	if s.Outcome.Terminal() {
		s.Word = g.Word()
	}
	return s
}
