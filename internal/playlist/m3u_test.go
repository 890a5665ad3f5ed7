package playlist

import "testing"

const mediaPlaylist = "#EXTM3U\n#EXT-X-VERSION:3\n#EXT-X-TARGETDURATION:10\n#EXT-X-MEDIA-SEQUENCE:0\n" +
	"#EXTINF:10.0,\nseg0.ts\n#EXTINF:10.0,\nseg1.ts\n#EXTINF:10.0,\nseg2.ts\n#EXT-X-ENDLIST\n"

func TestIsM3U(t *testing.T) {
	if !IsM3U(mediaPlaylist) {
		t.Fatalf("expected media playlist to be detected")
	}
	if !IsM3U("\n  #EXTM3U\n") {
		t.Fatalf("expected detection to ignore leading whitespace")
	}
	if IsM3U(`{"name":"Root"}`) {
		t.Fatalf("JSON must not be detected as M3U")
	}
	if IsM3U("") {
		t.Fatalf("empty text must not be detected as M3U")
	}
}

func TestEntries_MediaPlaylist(t *testing.T) {
	n, err := Entries(mediaPlaylist)
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 entries, got %d", n)
	}
}

func TestEntries_MasterPlaylist(t *testing.T) {
	master := "#EXTM3U\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=1280000,RESOLUTION=640x360\nlow.m3u8\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=2560000,RESOLUTION=1280x720\nhigh.m3u8\n"
	n, err := Entries(master)
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 variants, got %d", n)
	}
}
