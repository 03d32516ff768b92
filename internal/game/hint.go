package game

import "github.com/robalobadob/numguess/internal/rng"

// hintWidth is the maximum distance of either interval edge from the secret.
var hintWidth = map[Difficulty]int{
	Easy:   10,
	Medium: 25,
	Hard:   50,
}

// Hint returns a randomized interval containing secret, clamped to
// [MinSecret, MaxSecret]. The two radii are drawn independently, so the
// interval is usually asymmetric and differs between calls.
// Unknown difficulties get the full range.
func Hint(secret int, d Difficulty, src rng.Source) Interval {
	w, ok := hintWidth[d]
	if !ok || w == 0 {
		return Interval{Low: MinSecret, High: MaxSecret}
	}
	low := max(MinSecret, secret-src.IntRange(1, w))
	high := min(MaxSecret, secret+src.IntRange(1, w))
	return Interval{Low: low, High: high}
}
