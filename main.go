// hangman: guess the word one letter at a time.
//
//	hangman         play in the terminal
//	hangman serve   serve rounds over HTTP
//
// Configuration comes from the environment (and an optional .env file);
// see internal/config.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/progress"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg.Log)

	fileSrc := wordList(cfg.Words.File)
	wordnikOpts := []words.WordnikOption{
		words.WithBaseURL(cfg.Wordnik.BaseURL),
		words.WithTimeout(cfg.Wordnik.Timeout),
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve(cfg, words.Select(cfg.Wordnik.APIKey, fileSrc, wordnikOpts...))
		return
	}
	os.Exit(play(cfg, fileSrc, wordnikOpts))
}

func setupLogging(lc config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(lc.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if lc.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// wordList returns the configured word list, or the embedded default.
func wordList(path string) words.Source {
	if path == "" {
		return words.NewFSSource(assets.FS, assets.WordsFile)
	}
	return words.NewFileSource(path)
}

func serve(cfg *config.Config, src words.Source) {
	srv := httpserver.New(store.NewMemoryStore(), src, progress.Gallows(), httpserver.Options{
		ClientOrigin: cfg.Server.ClientOrigin,
		TokenSecret:  cfg.Server.TokenSecret,
		TokenTTL:     cfg.Server.TokenTTL,
		MinLength:    cfg.Words.MinLength,
		MaxLength:    cfg.Words.MaxLength,
	})
	log.Info().Str("port", cfg.Server.Port).Bool("wordnik", cfg.Wordnik.APIKey != "").Msg("starting hangman server")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// play runs one terminal round and returns the process exit code.
func play(cfg *config.Config, fileSrc words.Source, wordnikOpts []words.WordnikOption) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rl, err := readline.NewEx(&readline.Config{Prompt: "> ", InterruptPrompt: "^C"})
	if err != nil {
		log.Error().Err(err).Msg("open terminal")
		return 1
	}
	defer rl.Close()

	_, err = console.New(rl, rl.Stdout()).Run(ctx, console.Options{
		FileSource: fileSrc,
		Wordnik:    wordnikOpts,
		Progress:   progress.Gallows(),
		APIKey:     cfg.Wordnik.APIKey,
	})
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
		return 0
	case errors.Is(err, game.ErrNoWord), errors.Is(err, words.ErrInvalidRange):
		return 1
	default:
		log.Error().Err(err).Msg("play")
		return 1
	}
}
