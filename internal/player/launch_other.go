//go:build !windows && !darwin

package player

import "os/exec"

const defaultPlayer = "vlc"

func browserCommand(url string) *exec.Cmd {
	return exec.Command("xdg-open", url)
}
