package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntRangeBounds(t *testing.T) {
	sources := map[string]Source{
		"crypto": NewCrypto(),
		"seeded": NewSeeded(42),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			seen := map[int]bool{}
			for i := 0; i < 2000; i++ {
				n := src.IntRange(1, 10)
				assert.GreaterOrEqual(t, n, 1)
				assert.LessOrEqual(t, n, 10)
				seen[n] = true
			}
			assert.Len(t, seen, 10, "every value in range should eventually appear")
		})
	}
}

func TestIntRangeDegenerate(t *testing.T) {
	assert.Equal(t, 7, NewCrypto().IntRange(7, 7))
	assert.Equal(t, 7, NewSeeded(1).IntRange(7, 3))
}

func TestSeededReproducible(t *testing.T) {
	a, b := NewSeeded(99), NewSeeded(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntRange(1, 100), b.IntRange(1, 100))
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(30, 5, 500, -4)
	assert.Equal(t, 30, s.IntRange(1, 100))
	assert.Equal(t, 5, s.IntRange(1, 10))
	assert.Equal(t, 100, s.IntRange(1, 100), "clamped high")
	assert.Equal(t, 1, s.IntRange(1, 100), "clamped low")
	assert.Equal(t, 30, s.IntRange(1, 100), "cycles")

	assert.Equal(t, 3, NewSequence().IntRange(3, 9))
}
