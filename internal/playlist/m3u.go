// Package playlist detects M3U media playlists that arrive where a JSON
// document was expected and summarizes them for the player prompt.
package playlist

import (
	"fmt"
	"strings"

	"github.com/grafov/m3u8"
)

// Marker is the header that identifies an M3U media playlist.
const Marker = "#EXTM3U"

// IsM3U reports whether text is an M3U media playlist rather than a tree
// document.
func IsM3U(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), Marker)
}

// Entries decodes an M3U body and counts its entries: segments for a media
// playlist, variants for a master playlist.
func Entries(text string) (int, error) {
	pl, listType, err := m3u8.DecodeFrom(strings.NewReader(text), false)
	if err != nil {
		return 0, fmt.Errorf("failed to decode m3u playlist: %w", err)
	}
	switch listType {
	case m3u8.MEDIA:
		media, ok := pl.(*m3u8.MediaPlaylist)
		if !ok {
			return 0, nil
		}
		n := 0
		for _, seg := range media.Segments {
			if seg != nil {
				n++
			}
		}
		return n, nil
	case m3u8.MASTER:
		master, ok := pl.(*m3u8.MasterPlaylist)
		if !ok {
			return 0, nil
		}
		return len(master.Variants), nil
	}
	return 0, nil
}
