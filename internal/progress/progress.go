// internal/progress/progress.go
//
// Progress frames for a hangman round.
// A Provider declares the attempt budget of a round and maps the number of
// attempts left to a fixed text frame. Frame 0 is drawn while every attempt
// is still available; the last frame is drawn once none are left.

package progress

import "fmt"

// Provider maps attempts left to a display frame.
type Provider interface {
	// MaxAttempts is the attempt budget of a round (always >= 1).
	MaxAttempts() int

	// Frame returns the frame for 0 <= attemptsLeft <= MaxAttempts().
	Frame(attemptsLeft int) string
}

// Table is a Provider backed by a fixed list of frames.
// MaxAttempts is len(frames)-1.
type Table struct {
	frames []string
}

// NewTable builds a Provider from at least two frames, ordered from
// "no damage" to "fully failed".
func NewTable(frames ...string) (*Table, error) {
	if len(frames) < 2 {
		return nil, fmt.Errorf("progress: need at least 2 frames, got %d", len(frames))
	}
	return &Table{frames: append([]string(nil), frames...)}, nil
}

func (t *Table) MaxAttempts() int { return len(t.frames) - 1 }

// Frame panics when attemptsLeft is outside [0, MaxAttempts()].
func (t *Table) Frame(attemptsLeft int) string {
	last := t.MaxAttempts()
	if attemptsLeft < 0 || attemptsLeft > last {
		panic(fmt.Sprintf("progress: attemptsLeft %d out of range [0, %d]", attemptsLeft, last))
	}
	return t.frames[last-attemptsLeft]
}

// gallowsFrames draws the classic stick figure, one limb per miss.
var gallowsFrames = []string{
	"  +---+\n" +
		"  |   |\n" +
		"      |\n" +
		"      |\n" +
		"      |\n" +
		"      |\n" +
		"=========",
	"  +---+\n" +
		"  |   |\n" +
		"  O   |\n" +
		"      |\n" +
		"      |\n" +
		"      |\n" +
		"=========",
	"  +---+\n" +
		"  |   |\n" +
		"  O   |\n" +
		"  |   |\n" +
		"      |\n" +
		"      |\n" +
		"=========",
	"  +---+\n" +
		"  |   |\n" +
		"  O   |\n" +
		" /|   |\n" +
		"      |\n" +
		"      |\n" +
		"=========",
	"  +---+\n" +
		"  |   |\n" +
		"  O   |\n" +
		" /|\\  |\n" +
		"      |\n" +
		"      |\n" +
		"=========",
	"  +---+\n" +
		"  |   |\n" +
		"  O   |\n" +
		" /|\\  |\n" +
		" /    |\n" +
		"      |\n" +
		"=========",
	"  +---+\n" +
		"  |   |\n" +
		"  O   |\n" +
		" /|\\  |\n" +
		" / \\  |\n" +
		"      |\n" +
		"=========",
}

// Gallows returns the default provider: 7 frames, 6 attempts.
func Gallows() *Table {
	return &Table{frames: gallowsFrames}
}
