package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 seconds"},
		{45 * time.Second, "45 seconds"},
		{59*time.Second + 900*time.Millisecond, "59 seconds"},
		{60 * time.Second, "1 minutes and 0 seconds"},
		{90 * time.Second, "1 minutes and 30 seconds"},
		{3600 * time.Second, "60 minutes and 0 seconds"},
		// Past an hour the minutes form is not used.
		{3601 * time.Second, "3601 seconds"},
		{4000 * time.Second, "4000 seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.d))
		})
	}
}
