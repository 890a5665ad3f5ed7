package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// GetTermWidth returns the terminal width, defaulting to 80.
func GetTermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		return 80
	}
	return width
}

// TruncateWithEllipsis truncates a string to maxLen runes with ellipsis if
// needed.
func TruncateWithEllipsis(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// FormatURL prepares a URL for menu display: scheme stripped, truncated to
// leave room for the index and name on one terminal line.
func FormatURL(rawURL string) string {
	if rawURL == "" {
		return "No URL"
	}
	u := strings.TrimPrefix(rawURL, "https://")
	u = strings.TrimPrefix(u, "http://")
	maxLen := GetTermWidth() - 30
	if maxLen < 20 {
		maxLen = 20
	}
	return TruncateWithEllipsis(u, maxLen)
}

// ClearScreen emits the ANSI erase-display sequence.
func ClearScreen() string {
	return "\033[2J\033[H"
}
