//go:build windows

package player

import "os/exec"

const defaultPlayer = `C:\Program Files\VideoLAN\VLC\vlc.exe`

func browserCommand(url string) *exec.Cmd {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
}
