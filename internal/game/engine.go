// internal/game/engine.go
//
// Round engine for a single guessing round.
// Responsibilities:
//   - Draw a fresh secret in [MinSecret, MaxSecret] per round.
//   - Classify each input token as a guess, a hint request or bad input.
//   - Track attempts and hints against the difficulty budget.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Bad input and hint requests never consume an attempt.
//   - Randomness and the clock are injected so rounds can be replayed in tests.
package game

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/numguess/internal/rng"
)

var (
	// ErrBadInput is returned for a token that is neither a guess nor a
	// usable hint request while hints remain.
	ErrBadInput = errors.New("expected a number or 'H' for a hint")
	// ErrBadGuess is returned for a token that is not a guess once hints are spent.
	ErrBadGuess = errors.New("expected a number")

	ErrRoundOver = errors.New("round finished")
)

// Round holds the state of a single round.
type Round struct {
	ID         string     // Unique round identifier.
	Difficulty Difficulty // Fixed for the round.
	Attempts   int        // Guesses made so far.
	HintsLeft  int        // Hint requests still available.
	Started    time.Time
	Ended      time.Time // Zero until the deciding guess.
	Finished   bool
	Won        bool

	secret int
	budget Budget
	src    rng.Source
	now    func() time.Time
}

// NewRound starts a round at difficulty d.
// A nil now defaults to time.Now.
func NewRound(d Difficulty, src rng.Source, now func() time.Time) (*Round, error) {
	b, ok := budgets[d]
	if !ok {
		return nil, ErrUnknownDifficulty
	}
	if now == nil {
		now = time.Now
	}
	return &Round{
		ID:         uuid.NewString(),
		Difficulty: d,
		HintsLeft:  b.Hints,
		Started:    now(),
		secret:     src.IntRange(MinSecret, MaxSecret),
		budget:     b,
		src:        src,
		now:        now,
	}, nil
}

// Budget reports the round's allowance.
func (r *Round) Budget() Budget { return r.budget }

// NextAttempt is the 1-based index of the guess the round is waiting for.
func (r *Round) NextAttempt() int { return r.Attempts + 1 }

// Submit applies one trimmed input token to the round.
//
// Accepted tokens:
//   - a non-negative decimal integer: a guess, consumes an attempt.
//   - "H" or "h" while hints remain: a hint, consumes a hint only.
//
// Anything else returns ErrBadInput (hints remain) or ErrBadGuess and leaves
// the round untouched.
func (r *Round) Submit(token string) (Result, error) {
	if r.Finished {
		return Result{State: r.state(), Attempt: r.Attempts}, ErrRoundOver
	}
	token = strings.TrimSpace(token)

	if n, err := strconv.ParseUint(token, 10, 32); err == nil {
		return r.guess(int(n)), nil
	}
	if strings.EqualFold(token, "h") && r.HintsLeft > 0 {
		r.HintsLeft--
		return Result{
			Feedback: FeedbackHint,
			State:    r.state(),
			Attempt:  r.Attempts,
			Hint:     Hint(r.secret, r.Difficulty, r.src),
		}, nil
	}
	if r.HintsLeft > 0 {
		return Result{State: r.state(), Attempt: r.Attempts}, ErrBadInput
	}
	return Result{State: r.state(), Attempt: r.Attempts}, ErrBadGuess
}

// guess scores n against the secret and advances the round.
func (r *Round) guess(n int) Result {
	r.Attempts++
	res := Result{Guess: n, Attempt: r.Attempts}

	switch {
	case n == r.secret:
		res.Feedback = FeedbackCorrect
		r.finish(true)
	case n < r.secret:
		res.Feedback = FeedbackGreater
	default:
		res.Feedback = FeedbackLess
	}
	if !r.Finished && r.Attempts >= r.budget.Attempts {
		r.finish(false)
	}
	res.State = r.state()
	return res
}

func (r *Round) finish(won bool) {
	r.Finished, r.Won = true, won
	r.Ended = r.now()
}

// Outcome reports how the round ended. ok is false while still playing.
func (r *Round) Outcome() (Outcome, bool) {
	if !r.Finished {
		return Outcome{}, false
	}
	return Outcome{
		Won:      r.Won,
		Attempts: r.Attempts,
		Secret:   r.secret,
		Elapsed:  r.Ended.Sub(r.Started),
	}, true
}

// state reports the coarse round state.
func (r *Round) state() State {
	if r.Finished {
		if r.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}
