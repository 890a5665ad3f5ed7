//go:build darwin

package player

import "os/exec"

const defaultPlayer = "vlc"

func browserCommand(url string) *exec.Cmd {
	return exec.Command("open", url)
}
