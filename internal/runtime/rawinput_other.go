//go:build !linux

package runtime

import (
	"fmt"

	"golang.org/x/term"
)

// EnableRawInput puts the terminal into raw mode for single-key reads.
// Returns a restore function that should be deferred to reset the terminal.
func EnableRawInput(fd int) (func(), error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enable raw input: %w", err)
	}
	return func() {
		_ = term.Restore(fd, state)
	}, nil
}
