package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator yes/no questions.
type Prompter interface {
	// Confirm asks a question and returns the operator's decision. The
	// empty answer declines.
	Confirm(prompt string) (bool, error)
}

// terminalPrompter reads answers line by line, re-asking on input it cannot
// interpret.
type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter creates a Prompter reading from in and writing prompts
// to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) Prompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) Confirm(prompt string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
		line, err := p.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if err != nil && answer == "" {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
		if err != nil {
			// The stream ended on an answer we cannot interpret.
			return false, fmt.Errorf("unrecognized confirmation %q: %w", answer, err)
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
