package game

import (
	"fmt"
	"time"
)

// FormatElapsed renders a round duration in whole seconds.
// Between one minute and one hour inclusive it reads "M minutes and S seconds";
// everything else, including durations past an hour, reads "N seconds".
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs >= 60 && secs <= 3600 {
		return fmt.Sprintf("%d minutes and %d seconds", secs/60, secs%60)
	}
	return fmt.Sprintf("%d seconds", secs)
}
