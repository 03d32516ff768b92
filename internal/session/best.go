package session

import "strconv"

// Best is the fewest attempts used to win any round in this session.
// It starts unset and only moves down.
type Best struct {
	attempts int
	set      bool
}

// Record offers a winning attempt count and reports whether it became the new best.
func (b *Best) Record(attempts int) bool {
	if b.set && attempts >= b.attempts {
		return false
	}
	b.attempts, b.set = attempts, true
	return true
}

// Attempts returns the best attempt count; ok is false before the first win.
func (b Best) Attempts() (n int, ok bool) { return b.attempts, b.set }

func (b Best) String() string {
	if !b.set {
		return "None"
	}
	return strconv.Itoa(b.attempts)
}
