// internal/session/session.go
//
// Session state machine around the round engine.
// Responsibilities:
//   - Show the welcome banner once, then loop over rounds.
//   - Validate difficulty menu choices and play-again answers.
//   - Drive one round over the terminal and report feedback.
//   - Own the session best score and the round history.
//
// States:
//   SelectingDifficulty → Playing → RoundEnded → AwaitingReplay
//   AwaitingReplay → SelectingDifficulty (Y) | Terminated (N)
//
// Notes:
//   - Malformed input is always answered with a corrective message and re-prompted.
//   - Terminal I/O errors end Run and are returned to the caller.

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/assets"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/rng"
	"github.com/robalobadob/numguess/internal/store"
)

// Terminal is the line-oriented I/O the session talks through.
type Terminal interface {
	Prompt(text string) (string, error)
	Say(format string, args ...any) error
}

// Phase is a session state.
type Phase int

const (
	SelectingDifficulty Phase = iota
	Playing
	RoundEnded
	AwaitingReplay
	Terminated
)

func (p Phase) String() string {
	switch p {
	case SelectingDifficulty:
		return "selecting_difficulty"
	case Playing:
		return "playing"
	case RoundEnded:
		return "round_ended"
	case AwaitingReplay:
		return "awaiting_replay"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// ErrBadReplay is returned by ParseReplay for anything but Y or N.
var ErrBadReplay = errors.New("expected Y or N")

// Config holds session collaborators. Zero fields get defaults.
type Config struct {
	Source rng.Source       // Secret and hint randomness; crypto/rand if nil.
	Store  store.Store      // Round history; in-memory if nil.
	Now    func() time.Time // Clock for round timing; time.Now if nil.
}

// Session holds everything that lives longer than one round.
type Session struct {
	Best Best // Fewest attempts to win so far.

	term  Terminal
	src   rng.Source
	store store.Store
	now   func() time.Time

	phase      Phase
	difficulty game.Difficulty
	last       game.Outcome
	greeted    bool
}

// New constructs a Session talking through term.
func New(term Terminal, cfg Config) *Session {
	s := &Session{term: term, src: cfg.Source, store: cfg.Store, now: cfg.Now}
	if s.src == nil {
		s.src = rng.NewCrypto()
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Phase reports the current state.
func (s *Session) Phase() Phase { return s.phase }

// Store exposes the round history.
func (s *Session) Store() store.Store { return s.store }

// Run steps the state machine until the player quits or I/O fails.
func (s *Session) Run(ctx context.Context) error {
	for s.phase != Terminated {
		from := s.phase
		if err := s.step(ctx); err != nil {
			return err
		}
		log.Debug().Stringer("from", from).Stringer("to", s.phase).Msg("session transition")
	}
	if sum, err := s.store.Summary(ctx); err == nil {
		log.Info().
			Int("rounds", sum.Rounds).
			Int("wins", sum.Wins).
			Int("losses", sum.Losses).
			Dur("fastest", sum.Fastest).
			Str("best", s.Best.String()).
			Msg("session finished")
	}
	return nil
}

func (s *Session) step(ctx context.Context) error {
	switch s.phase {
	case SelectingDifficulty:
		return s.selectDifficulty()
	case Playing:
		out, err := s.PlayRound(ctx, s.difficulty)
		if err != nil {
			return err
		}
		s.last = out
		s.phase = RoundEnded
		return nil
	case RoundEnded:
		return s.report()
	case AwaitingReplay:
		return s.askReplay()
	}
	return fmt.Errorf("session: no transition from %s", s.phase)
}

// selectDifficulty shows the menu and waits for a valid choice.
func (s *Session) selectDifficulty() error {
	if !s.greeted {
		lines, err := assets.BannerLines()
		if err != nil {
			return fmt.Errorf("load banner: %w", err)
		}
		for _, l := range lines {
			if err := s.term.Say("%s", l); err != nil {
				return err
			}
		}
		s.greeted = true
	}
	if err := s.term.Say("%s", menu()); err != nil {
		return err
	}

	for {
		in, err := s.term.Prompt("\nEnter your choice: ")
		if err != nil {
			return err
		}
		d, err := game.ParseDifficulty(in)
		switch {
		case errors.Is(err, game.ErrNotNumber):
			log.Debug().Str("input", in).Msg("difficulty not a number")
			if err := s.term.Say("Please just enter numbers!"); err != nil {
				return err
			}
			continue
		case errors.Is(err, game.ErrInvalidChoice):
			log.Debug().Str("input", in).Msg("difficulty out of menu")
			// Stay in SelectingDifficulty; the menu is shown again.
			return s.term.Say("Invalid choice, try again!")
		}

		s.difficulty = d
		s.phase = Playing
		return s.term.Say("\nGreat! You have selected the %s difficulty level.\nLet's start the game!", d)
	}
}

// menu renders the difficulty list from the budget table.
func menu() string {
	var b strings.Builder
	b.WriteString("Please select the difficulty level:")
	for i, d := range game.Difficulties {
		fmt.Fprintf(&b, "\n%d. %s (%d chances)", i+1, d, d.Budget().Attempts)
	}
	return b.String()
}

// PlayRound plays one round at difficulty d and returns its outcome.
// A win is offered to s.Best; the finished round is saved to the store.
func (s *Session) PlayRound(ctx context.Context, d game.Difficulty) (game.Outcome, error) {
	r, err := game.NewRound(d, s.src, s.now)
	if err != nil {
		return game.Outcome{}, err
	}
	lg := log.With().Str("round", r.ID).Stringer("difficulty", d).Logger()
	lg.Debug().Msg("round started")

	budget := r.Budget()
	for !r.Finished {
		in, err := s.term.Prompt(fmt.Sprintf("\nEnter your guess or 'H' for a hint(%d/%d hints to use): ", r.HintsLeft, budget.Hints))
		if err != nil {
			return game.Outcome{}, err
		}

		res, err := r.Submit(in)
		switch {
		case errors.Is(err, game.ErrBadInput):
			lg.Debug().Str("input", in).Int("attempt", r.NextAttempt()).Msg("bad input")
			err = s.term.Say("Please just enter numbers or 'H' for a hint!")
		case errors.Is(err, game.ErrBadGuess):
			lg.Debug().Str("input", in).Int("attempt", r.NextAttempt()).Msg("bad input")
			err = s.term.Say("Please just enter numbers!")
		case err != nil:
			return game.Outcome{}, err
		default:
			err = s.feedback(res)
		}
		if err != nil {
			return game.Outcome{}, err
		}
	}

	out, _ := r.Outcome()
	if out.Won {
		if s.Best.Record(out.Attempts) {
			lg.Debug().Int("attempts", out.Attempts).Msg("new best score")
		}
		if err := s.term.Say("\nCongratulations! You guessed the correct number in %d attempts.", out.Attempts); err != nil {
			return out, err
		}
	} else {
		if err := s.term.Say("\nYou lose! The number was %d.", out.Secret); err != nil {
			return out, err
		}
	}

	rec := store.Record{RoundID: r.ID, Difficulty: d, Outcome: out, FinishedAt: r.Ended}
	if err := s.store.Save(ctx, rec); err != nil {
		lg.Warn().Err(err).Msg("save round")
	}
	lg.Info().
		Bool("won", out.Won).
		Int("attempts", out.Attempts).
		Dur("elapsed", out.Elapsed).
		Msg("round finished")
	return out, nil
}

// feedback prints the response to an accepted guess or hint.
func (s *Session) feedback(res game.Result) error {
	switch res.Feedback {
	case game.FeedbackHint:
		return s.term.Say("The number is between %d and %d", res.Hint.Low, res.Hint.High)
	case game.FeedbackGreater:
		return s.term.Say("Incorrect! The number is greater than %d", res.Guess)
	case game.FeedbackLess:
		return s.term.Say("Incorrect! The number is less than %d", res.Guess)
	}
	// Correct guesses are announced once the round is over.
	return nil
}

// report prints the best score and the timing of the last round.
func (s *Session) report() error {
	if err := s.term.Say("Highest Score (attempts to win): %s", s.Best); err != nil {
		return err
	}
	if err := s.term.Say("Elapsed time: %s", game.FormatElapsed(s.last.Elapsed)); err != nil {
		return err
	}
	s.phase = AwaitingReplay
	return nil
}

// ParseReplay maps a play-again answer to true (Y) or false (N), case-insensitively.
func ParseReplay(in string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(in)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, ErrBadReplay
}

// askReplay waits for a valid Y/N answer.
func (s *Session) askReplay() error {
	for {
		in, err := s.term.Prompt("\nYou want to play again? (Y: Yes, N: No): ")
		if err != nil {
			return err
		}
		again, err := ParseReplay(in)
		if err != nil {
			if err := s.term.Say("Please just choose between 'Y' or 'N'"); err != nil {
				return err
			}
			continue
		}
		if again {
			s.phase = SelectingDifficulty
			return s.term.Say("")
		}
		s.phase = Terminated
		return s.term.Say("Thanks for playing!")
	}
}
