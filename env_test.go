package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/numguess/internal/rng"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("NUMGUESS_TEST_STR", "debug")
	assert.Equal(t, "debug", getEnv("NUMGUESS_TEST_STR", "warn"))
	assert.Equal(t, "warn", getEnv("NUMGUESS_TEST_UNSET", "warn"))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("NUMGUESS_TEST_INT", "42")
	t.Setenv("NUMGUESS_TEST_BAD", "forty")
	assert.Equal(t, 42, envInt("NUMGUESS_TEST_INT", 0))
	assert.Equal(t, 7, envInt("NUMGUESS_TEST_BAD", 7))
	assert.Equal(t, 7, envInt("NUMGUESS_TEST_UNSET", 7))
}

func TestRandomSource(t *testing.T) {
	_, seeded := randomSource(5).(*rng.Seeded)
	assert.True(t, seeded)

	a, b := randomSource(5), randomSource(5)
	assert.Equal(t, a.IntRange(1, 100), b.IntRange(1, 100))

	_, seeded = randomSource(0).(*rng.Seeded)
	assert.False(t, seeded)
}
