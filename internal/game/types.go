// internal/game/types.go
//
// Core type definitions for the number guessing engine.
// Defines:
//   - Difficulty: the three selectable levels and their budgets.
//   - Feedback/State: per-input evaluation and coarse round state.
//   - Result/Outcome: what Submit reports and how a round ended.

package game

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Secret range, fixed for every round.
const (
	MinSecret = 1
	MaxSecret = 100
)

// Difficulty selects the attempt and hint budgets for a round.
type Difficulty int

const (
	DifficultyUnknown Difficulty = iota
	Easy
	Medium
	Hard
)

// Budget is the per-round allowance for a difficulty.
type Budget struct {
	Attempts int // Maximum guesses in a round.
	Hints    int // Maximum hint requests in a round.
}

var budgets = map[Difficulty]Budget{
	Easy:   {Attempts: 10, Hints: 3},
	Medium: {Attempts: 5, Hints: 2},
	Hard:   {Attempts: 3, Hints: 1},
}

// Difficulties lists the selectable levels in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

var (
	ErrNotNumber         = errors.New("not a number")
	ErrInvalidChoice     = errors.New("invalid difficulty choice")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Budget returns the allowance for d. Unknown levels get a zero budget.
func (d Difficulty) Budget() Budget { return budgets[d] }

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return "Unknown"
}

// ParseDifficulty maps a menu selection ("1", "2", "3") to a Difficulty.
// Non-numeric input yields ErrNotNumber; any other number yields ErrInvalidChoice.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseUint(s, 10, 32); err != nil {
		return DifficultyUnknown, ErrNotNumber
	}
	switch s {
	case "1":
		return Easy, nil
	case "2":
		return Medium, nil
	case "3":
		return Hard, nil
	}
	return DifficultyUnknown, ErrInvalidChoice
}

// Feedback is the evaluation of one accepted input.
type Feedback string

const (
	FeedbackGreater Feedback = "greater" // secret is greater than the guess
	FeedbackLess    Feedback = "less"    // secret is less than the guess
	FeedbackCorrect Feedback = "correct"
	FeedbackHint    Feedback = "hint"
)

// State is the coarse round state.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Interval is an inclusive bracketing range known to contain the secret.
type Interval struct {
	Low  int
	High int
}

// Contains reports whether n lies within the interval.
func (iv Interval) Contains(n int) bool { return iv.Low <= n && n <= iv.High }

// Result describes the effect of one accepted input on a round.
type Result struct {
	Feedback Feedback
	State    State
	Guess    int      // Valid unless Feedback is FeedbackHint.
	Attempt  int      // Attempts used after this input.
	Hint     Interval // Valid when Feedback is FeedbackHint.
}

// Outcome is how a finished round ended.
type Outcome struct {
	Won      bool
	Attempts int           // Attempts used; equals the budget on a loss.
	Secret   int           // Revealed on a loss, also set on a win.
	Elapsed  time.Duration // Round start to the deciding guess.
}
