// internal/words/file.go
//
// FileSource picks a random word from a newline-delimited word list.
// The list is re-read on every call so edits to the file are picked up
// between rounds.

package words

import (
	"context"
	"crypto/rand"
	"fmt"
	"io/fs"
	"math/big"
	mrand "math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

// FileSource reads its candidates from name within fsys.
type FileSource struct {
	fsys fs.FS
	name string
	pick Picker
}

// FileOption customises a FileSource.
type FileOption func(*FileSource)

// WithPicker replaces the default crypto/rand selection (useful in tests).
func WithPicker(p Picker) FileOption {
	return func(s *FileSource) { s.pick = p }
}

// NewFileSource reads the word list at path on the local filesystem.
func NewFileSource(path string, opts ...FileOption) *FileSource {
	return NewFSSource(os.DirFS(filepath.Dir(path)), filepath.Base(path), opts...)
}

// NewFSSource reads the word list name from fsys (e.g. an embed.FS).
func NewFSSource(fsys fs.FS, name string, opts ...FileOption) *FileSource {
	s := &FileSource{fsys: fsys, name: name, pick: cryptoPick}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Word implements Source.
func (s *FileSource) Word(_ context.Context, minLength, maxLength int) (string, error) {
	if err := ValidateRange(minLength, maxLength); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrResourceUnavailable, s.name, err)
	}

	candidates := filterLines(string(data), minLength, maxLength)

	log.Debug().Str("file", s.name).Int("candidates", len(candidates)).
		Int("minLength", minLength).Int("maxLength", maxLength).Msg("filtered word list")

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: [%d, %d] in %s", ErrNoCandidates, minLength, maxLength, s.name)
	}
	return candidates[s.pick(len(candidates))], nil
}

// filterLines keeps the normalised lines of s whose length is in range.
// Lines of any length are accepted; overlong junk is simply filtered out.
func filterLines(s string, minLength, maxLength int) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w, ok := Normalize(line)
		if ok && InRange(w, minLength, maxLength) {
			out = append(out, w)
		}
	}
	return out
}

// cryptoPick selects uniformly using crypto/rand, falling back to
// math/rand if the system entropy source fails.
func cryptoPick(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		log.Warn().Err(err).Int("n", n).Msg("crypto/rand failed, using math/rand")
		return mrand.IntN(n)
	}
	return int(nBig.Int64())
}
