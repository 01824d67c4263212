// internal/words/words.go
//
// Word sources for the hangman engine.
//
// Responsibilities:
//   - Define Source, the capability "produce a word whose length is within
//     [minLength, maxLength]".
//   - Normalise candidates (trim, upper-case, letters only).
//   - Provide the two concrete sources: FileSource (newline-delimited list)
//     and Wordnik (remote random-word lookup).
//
// Errors:
//   ErrNoCandidates and ErrRemoteUnavailable mean "no word available";
//   ErrResourceUnavailable means the word list itself could not be read.
//   Callers tell them apart with errors.Is.

package words

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrInvalidRange        = errors.New("words: invalid length range")
	ErrNoCandidates        = errors.New("words: no word in the requested length range")
	ErrResourceUnavailable = errors.New("words: word list unavailable")
	ErrRemoteUnavailable   = errors.New("words: remote lookup failed")
)

// Source produces a single upper-case word with
// minLength <= len(word) <= maxLength (length counted in letters).
type Source interface {
	Word(ctx context.Context, minLength, maxLength int) (string, error)
}

// ValidateRange enforces 1 <= minLength <= maxLength.
func ValidateRange(minLength, maxLength int) error {
	if minLength < 1 || minLength > maxLength {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, minLength, maxLength)
	}
	return nil
}

// Normalize trims (including a byte order mark) and upper-cases a
// candidate with full case mapping, so "straße" becomes "STRASSE".
// ok is false when the result is empty or contains anything but
// upper-case letters (punctuation, digits, caseless scripts).
func Normalize(raw string) (word string, ok bool) {
	trimmed := strings.TrimFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
	word = cases.Upper(language.Und).String(trimmed)
	if word == "" {
		return "", false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return "", false
		}
	}
	return word, true
}

// InRange reports whether the letter count of w is within the range.
func InRange(w string, minLength, maxLength int) bool {
	n := utf8.RuneCountInString(w)
	return n >= minLength && n <= maxLength
}

// Select picks the source for a credential: an empty key keeps the file
// source, anything else looks words up remotely.
func Select(apiKey string, file Source, opts ...WordnikOption) Source {
	if strings.TrimSpace(apiKey) == "" {
		return file
	}
	return NewWordnik(strings.TrimSpace(apiKey), opts...)
}
