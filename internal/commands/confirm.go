package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question and reads one line of answer from in.
// Only "y" or "yes" (any case) count as consent; end of input is a no.
// If in is already a *bufio.Reader it is read directly, so a caller that
// reads further lines from the same reader loses nothing.
func Confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if in == nil {
		return false, nil
	}
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(out)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
