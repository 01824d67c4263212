// internal/game/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - Outcome: coarse state of a round (playing/won/lost).
//   - Game: state for a single in-progress or finished round.
//   - Snapshot: read-only view handed to renderers.

package game

import "errors"

// Outcome is the derived state of a round.
type Outcome string

const (
	InProgress Outcome = "playing"
	Won        Outcome = "won"
	Lost       Outcome = "lost"
)

// Terminal reports whether the round is over.
func (o Outcome) Terminal() bool { return o == Won || o == Lost }

// Placeholder marks a letter that has not been revealed yet.
const Placeholder = '_'

var (
	ErrInvalidGuess  = errors.New("guess must be a single letter")
	ErrRepeatedGuess = errors.New("letter already guessed")
	ErrRoundOver     = errors.New("round is over")
	ErrInvalidWord   = errors.New("word must be non-empty letters only")
	ErrNoWord        = errors.New("no word available")
)

// Game holds the state of one round. It is not safe for concurrent use.
type Game struct {
	ID           string            // Round identifier.
	word         []rune            // Target word, upper-case.
	mask         []rune            // Placeholder or revealed letter per position.
	guessed      map[rune]struct{} // Letters tried so far.
	attemptsLeft int               // Misses still allowed.
	maxAttempts  int               // Budget declared by the progress provider.
	frame        func(int) string  // Progress frame lookup.
}

// Snapshot is a copy of the observable round state.
type Snapshot struct {
	ID           string   `json:"gameId"`
	Mask         string   `json:"mask"`
	Guessed      []string `json:"guessed"`
	AttemptsLeft int      `json:"attemptsLeft"`
	MaxAttempts  int      `json:"maxAttempts"`
	Outcome      Outcome  `json:"state"`
	Frame        string   `json:"frame"`
	Word         string   `json:"word,omitempty"` // Only set once the round is over.
}
