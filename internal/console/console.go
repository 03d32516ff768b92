// internal/console/console.go
//
// Line-oriented terminal I/O for the game.
// Responsibilities:
//   - Write prompts without a trailing newline and flush before reading.
//   - Read one line per prompt, trimmed of surrounding whitespace.
//   - Write feedback lines.
//
// Notes:
//   - End of input is reported as an error; the caller treats any I/O error as fatal.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads player input from r and writes game output to w.
type Console struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// New wraps r and w in a Console.
func New(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: bufio.NewWriter(w)}
}

// Prompt writes text, flushes, and reads one line.
// A final line without a newline is still returned; an empty read at end of
// input returns an error wrapping io.EOF.
func (c *Console) Prompt(text string) (string, error) {
	if _, err := c.out.WriteString(text); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return "", fmt.Errorf("flush prompt: %w", err)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Say writes one formatted line and flushes.
func (c *Console) Say(format string, args ...any) error {
	if _, err := fmt.Fprintf(c.out, format+"\n", args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
