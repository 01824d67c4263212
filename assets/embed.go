// Package assets embeds the default hangman word list, used when no
// HANGMAN_WORDS_FILE is configured.
package assets

import "embed"

// WordsFile is the name of the default list inside FS.
const WordsFile = "words.txt"

//go:embed words.txt
var FS embed.FS
