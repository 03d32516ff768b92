// internal/rng/rng.go
//
// Random integer sources for the game engine.
// Responsibilities:
//   - Define the Source capability (inclusive integer range).
//   - Provide a crypto/rand backed default for real play.
//   - Provide a seeded math/rand/v2 source for reproducible sessions.
//
// Notes:
//   - The engine only ever asks for inclusive ranges such as [1,100] or [1,W].
//   - A degenerate range (hi <= lo) always yields lo.

package rng

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source draws integers uniformly from the inclusive range [lo, hi].
type Source interface {
	IntRange(lo, hi int) int
}

// crypto is a Source backed by crypto/rand.
type crypto struct{}

// NewCrypto returns a Source drawing from the operating system CSPRNG.
func NewCrypto() Source { return crypto{} }

// IntRange returns a cryptographically random integer in [lo, hi].
// If the entropy read fails, lo is returned.
func (crypto) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(hi-lo+1)))
	if err != nil {
		return lo
	}
	return lo + int(nBig.Int64())
}

// Seeded is a deterministic Source for a fixed seed.
type Seeded struct {
	r *mrand.Rand
}

// NewSeeded creates a deterministic PCG-backed Source.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: mrand.New(mrand.NewPCG(uint64(seed), 0))}
}

// IntRange returns a pseudo-random integer in [lo, hi].
func (s *Seeded) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Sequence replays a fixed list of values, cycling when exhausted.
// Each value is clamped into the requested range.
type Sequence struct {
	vals []int
	next int
}

// NewSequence returns a Sequence over vals. With no values it always yields lo.
func NewSequence(vals ...int) *Sequence {
	return &Sequence{vals: vals}
}

// IntRange returns the next scripted value clamped to [lo, hi].
func (s *Sequence) IntRange(lo, hi int) int {
	if len(s.vals) == 0 {
		return lo
	}
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return min(max(v, lo), hi)
}
