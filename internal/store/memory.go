// internal/store/memory.go
//
// In-memory round store used by the HTTP front end.
//
// Characteristics:
//   - Stores *game.Game rounds keyed by ID in a map.
//   - Update runs the callback under the write lock, so guesses on the same
//     round are applied one at a time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFound is returned for unknown round IDs.
var ErrNotFound = errors.New("round not found")

// Store defines the persistence interface for rounds.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, g *game.Game) error

	// Snapshot returns the observable state of a round.
	Snapshot(ctx context.Context, id string) (game.Snapshot, error)

	// Update applies fn to a round with exclusive access.
	// The error returned by fn is passed through.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error

	// Delete drops a round. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex          // guards rounds and the rounds they point to
	rounds map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[g.ID] = g
	return nil
}

func (m *memory) Snapshot(ctx context.Context, id string) (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.rounds[id]
	if !ok {
		return game.Snapshot{}, ErrNotFound
	}
	return g.Snapshot(), nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}
