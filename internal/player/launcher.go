// Package player launches external media player and web browser processes.
// Platform specifics live in the build-tagged launch_* files so the
// navigator never branches on OS.
package player

import (
	"fmt"
	"os/exec"
)

// Launcher starts external programs for media and web URLs. Both calls are
// fire-and-forget: the launched process is never waited on for a result.
type Launcher interface {
	Play(url string) error
	OpenWeb(url string) error
}

// External launches the platform media player and web browser.
type External struct {
	// PlayerPath overrides the media player binary. Empty selects the
	// platform default.
	PlayerPath string
}

// New returns an External launcher using playerPath, or the platform
// default player when empty.
func New(playerPath string) *External {
	return &External{PlayerPath: playerPath}
}

// Play hands url to the media player without waiting for it to exit.
func (e *External) Play(url string) error {
	bin := e.PlayerPath
	if bin == "" {
		bin = defaultPlayer
	}
	cmd := exec.Command(bin, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start media player %s: %w", bin, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenWeb opens url in the system web browser.
func (e *External) OpenWeb(url string) error {
	cmd := browserCommand(url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open web browser: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
