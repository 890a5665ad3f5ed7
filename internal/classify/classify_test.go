package classify

import "testing"

func TestRewrite_Pastebin(t *testing.T) {
	got := Rewrite("https://pastebin.com/abc123")
	want := "https://pastebin.com/raw/abc123"
	if got != want {
		t.Fatalf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	urls := []string{
		"https://pastebin.com/abc123",
		"https://pastebin.com/raw/abc123",
		"https://example.com/list.w3u",
		"",
	}
	for _, u := range urls {
		once := Rewrite(u)
		if twice := Rewrite(once); twice != once {
			t.Errorf("Rewrite not idempotent for %q: %q != %q", u, twice, once)
		}
	}
}

func TestResolve_Classification(t *testing.T) {
	cases := []struct {
		url  string
		want Kind
	}{
		{"https://example.com/list.w3u", KindDocument},
		{"https://example.com/list.json", KindDocument},
		{"https://raw.githubusercontent.com/u/r/main/list", KindDocument},
		{"https://pastebin.com/abc123", KindDocument},
		{"https://pastebin.com/raw/abc123", KindDocument},
		{"https://example.com/stream.m3u", KindMedia},
		{"https://example.com/movie.mkv", KindMedia},
		{"https://example.com/movie.mp4", KindMedia},
		{"http://host/get.php?user=x&type=m3u_plus&output=ts", KindMedia},
		{"http://host/get.php?user=x&TYPE=M3U_PLUS", KindMedia},
		{"https://example.com/", KindWeb},
		{"https://example.com/page.html", KindWeb},
		{"", KindWeb},
	}
	for _, tc := range cases {
		if _, got := Resolve(tc.url); got != tc.want {
			t.Errorf("Resolve(%q) kind = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestResolve_DocumentWinsOverMedia(t *testing.T) {
	// Sub-document patterns are checked first, so a raw paste that happens
	// to end in .m3u still loads as a document.
	if _, got := Resolve("https://pastebin.com/raw/list.m3u"); got != KindDocument {
		t.Fatalf("expected document priority, got %v", got)
	}
}

func TestResolve_RewritesBeforeClassifying(t *testing.T) {
	url, kind := Resolve("https://pastebin.com/abc123")
	if url != "https://pastebin.com/raw/abc123" {
		t.Errorf("expected rewritten URL, got %q", url)
	}
	if kind != KindDocument {
		t.Errorf("expected document kind, got %v", kind)
	}
}

func TestKindString(t *testing.T) {
	if KindDocument.String() != "document" || KindMedia.String() != "media" || KindWeb.String() != "web" {
		t.Fatalf("unexpected Kind names: %v %v %v", KindDocument, KindMedia, KindWeb)
	}
}
