// internal/console/console.go
//
// Terminal front end for a hangman round.
// Responsibilities:
//   - Ask for the word length range and an optional Wordnik key.
//   - Start the round and render frame, mask and attempts after every guess.
//   - Report rejected guesses and the final result.
//
// Input comes from a LineReader (a *readline.Instance in production) and
// output goes to an io.Writer, so the loop can be driven from tests.

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/progress"
	"github.com/robalobadob/hangman/internal/words"
)

// LineReader is the subset of *readline.Instance the console needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Console renders rounds to out and reads answers from in.
type Console struct {
	in  LineReader
	out io.Writer
}

// New constructs a Console.
func New(in LineReader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Options wires the collaborators of a terminal session.
type Options struct {
	FileSource words.Source          // used when no API key is given
	Wordnik    []words.WordnikOption // applied to the remote source
	Progress   progress.Provider     // frames and attempt budget
	APIKey     string                // preset key; when empty the player is asked
}

// Run plays one round: prompts, word lookup, guesses, result.
func (c *Console) Run(ctx context.Context, opts Options) (game.Outcome, error) {
	minLength, maxLength, err := c.ReadRange()
	if err != nil {
		return game.InProgress, err
	}
	key := opts.APIKey
	if key == "" {
		if key, err = c.ask("Wordnik API key (leave empty to use the word list): "); err != nil {
			return game.InProgress, err
		}
	}

	src := words.Select(key, opts.FileSource, opts.Wordnik...)
	g, err := game.Start(ctx, src, opts.Progress, minLength, maxLength)
	if err != nil {
		log.Error().Err(err).Int("minLength", minLength).Int("maxLength", maxLength).Msg("start round")
		c.printf("Could not load a word: %s\n", describe(err))
		return game.InProgress, err
	}
	log.Debug().Str("round", g.ID).Int("letters", len([]rune(g.Word()))).Msg("round started")
	return c.Play(g)
}

// ReadRange asks for the minimum and maximum word length until both are
// valid integers with 1 <= min <= max.
func (c *Console) ReadRange() (minLength, maxLength int, err error) {
	for {
		if minLength, err = c.askInt("Minimum word length: "); err != nil {
			return 0, 0, err
		}
		if maxLength, err = c.askInt("Maximum word length: "); err != nil {
			return 0, 0, err
		}
		if words.ValidateRange(minLength, maxLength) == nil {
			return minLength, maxLength, nil
		}
		c.printf("The range must satisfy 1 <= minimum <= maximum.\n")
	}
}

// Play feeds guesses to g until the round is won or lost.
func (c *Console) Play(g *game.Game) (game.Outcome, error) {
	c.in.SetPrompt("Letter: ")
	for !g.Outcome().Terminal() {
		c.render(g)
		line, err := c.in.Readline()
		if err != nil {
			return g.Outcome(), err
		}

		before := g.AttemptsLeft()
		_, err = g.Guess(line)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			c.printf("Enter a single letter!\n")
		case errors.Is(err, game.ErrRepeatedGuess):
			c.printf("You already tried that letter!\n")
		case err != nil:
			return g.Outcome(), err
		case g.AttemptsLeft() < before:
			c.printf("No such letter in the word!\n")
		}
	}

	c.printf("\n%s\n", g.Frame())
	if g.Outcome() == game.Won {
		c.printf("Well done! You guessed the word: %s\n", g.Word())
	} else {
		c.printf("You lost! The word was: %s\n", g.Word())
	}
	return g.Outcome(), nil
}

func (c *Console) render(g *game.Game) {
	c.printf("\n%s\n", g.Frame())
	c.printf("Word: %s\n", g.Mask())
	if guessed := g.Guessed(); len(guessed) > 0 {
		c.printf("Tried: %s\n", strings.Join(guessed, " "))
	}
	c.printf("Attempts left: %d\n", g.AttemptsLeft())
}

func (c *Console) ask(prompt string) (string, error) {
	c.in.SetPrompt(prompt)
	line, err := c.in.Readline()
	return strings.TrimSpace(line), err
}

func (c *Console) askInt(prompt string) (int, error) {
	for {
		s, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		c.printf("%q is not a number.\n", s)
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// describe turns a round-startup error into a player-facing reason.
func describe(err error) string {
	switch {
	case errors.Is(err, words.ErrNoCandidates):
		return "no word in the word list matches that length range"
	case errors.Is(err, words.ErrResourceUnavailable):
		return "the word list could not be read"
	case errors.Is(err, words.ErrRemoteUnavailable):
		return "the word service is unavailable"
	default:
		return err.Error()
	}
}
