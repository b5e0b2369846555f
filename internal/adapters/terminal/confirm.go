package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Adapter handles yes/no confirmation prompts on the terminal.
type Adapter struct {
	stdin  io.Reader
	stderr io.Writer
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		stderr: stderr,
	}
}

// Confirm prompts the operator with a yes/no question and returns the answer.
func (a *Adapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	// Check for STARTPAGE_ASSUME_YES environment variable first (useful for scripts).
	if assume := os.Getenv("STARTPAGE_ASSUME_YES"); assume == "1" || strings.EqualFold(assume, "true") {
		return true, nil
	}

	if !a.IsInteractive() {
		return false, errors.New("cannot prompt for confirmation: non-interactive terminal")
	}

	fmt.Fprintf(a.stderr, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(a.stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// IsInteractive returns true if the terminal is interactive.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
