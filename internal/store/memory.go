// internal/store/memory.go
//
// In-memory round history for a single process.
// Finished rounds are recorded here so the session can report totals on exit.
//
// Characteristics:
//   - Stores Record values keyed by round ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is written to disk.
//   - Errors are returned for missing round IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/numguess/internal/game"
)

// ErrNotFound is returned by Get for an unknown round ID.
var ErrNotFound = errors.New("not found")

// Record is the summary of one finished round.
type Record struct {
	RoundID    string
	Difficulty game.Difficulty
	Outcome    game.Outcome
	FinishedAt time.Time
}

// Summary aggregates all recorded rounds.
type Summary struct {
	Rounds int
	Wins   int
	Losses int
	// Fastest is the shortest winning round, zero if no wins.
	Fastest time.Duration
}

// Store defines the interface for round history.
type Store interface {
	// Save records or replaces a finished round.
	Save(ctx context.Context, r Record) error

	// Get retrieves a round by ID.
	Get(ctx context.Context, id string) (Record, error)

	// Summary totals every recorded round.
	Summary(ctx context.Context) (Summary, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex      // guards rounds map
	rounds map[string]Record // keyed by Record.RoundID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]Record)}
}

// Save adds or updates the record in the map.
func (m *memory) Save(ctx context.Context, r Record) error {
	if r.RoundID == "" {
		return errors.New("record missing round id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.RoundID] = r
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

// Summary walks all records under the read lock.
func (m *memory) Summary(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s Summary
	for _, r := range m.rounds {
		s.Rounds++
		if !r.Outcome.Won {
			s.Losses++
			continue
		}
		s.Wins++
		if s.Fastest == 0 || r.Outcome.Elapsed < s.Fastest {
			s.Fastest = r.Outcome.Elapsed
		}
	}
	return s, nil
}
