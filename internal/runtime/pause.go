// Package runtime provides the terminal pause gate shown after errors and
// notices, with per-platform raw-mode input.
package runtime

import (
	"bufio"
	"fmt"
	"os"
)

// Pause blocks until the user presses a key, restoring the terminal
// afterwards. Falls back to line input when raw mode is unavailable
// (pipes, dumb terminals).
func Pause() {
	fmt.Print("Press any key to continue...")
	restore, err := EnableRawInput(int(os.Stdin.Fd()))
	if err == nil {
		buf := make([]byte, 1)
		_, _ = os.Stdin.Read(buf)
		restore()
		fmt.Println()
		return
	}
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
