// Package classify rewrites known aliasable URLs and decides how a selected
// entry is dispatched. Pure string matching; no network access.
package classify

import "strings"

// Kind is the dispatch classification of a URL.
type Kind int

const (
	// KindDocument points at another playlist tree to load and navigate into.
	KindDocument Kind = iota
	// KindMedia is handed to the external media player.
	KindMedia
	// KindWeb is opened in the system web browser.
	KindWeb
)

// String returns the classification name for log and test output.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindMedia:
		return "media"
	case KindWeb:
		return "web"
	}
	return "unknown"
}

const (
	pasteHost    = "pastebin.com"
	pasteRawPath = "pastebin.com/raw"
)

// Rewrite maps pastebin page URLs to their raw-content form. Idempotent:
// once the raw marker is present the URL passes through unchanged.
func Rewrite(rawURL string) string {
	if strings.Contains(rawURL, pasteHost) && !strings.Contains(rawURL, "raw") {
		return strings.Replace(rawURL, pasteHost, pasteRawPath, 1)
	}
	return rawURL
}

// Resolve rewrites rawURL and classifies the result. Checks run in priority
// order: sub-document patterns win over media patterns, everything else is a
// web page. Every input maps to exactly one Kind.
func Resolve(rawURL string) (string, Kind) {
	u := Rewrite(rawURL)
	switch {
	case strings.HasSuffix(u, ".w3u") || strings.HasSuffix(u, ".json") ||
		strings.Contains(u, "raw.githubusercontent.com") || strings.Contains(u, pasteRawPath):
		return u, KindDocument
	case strings.HasSuffix(u, ".m3u") || strings.HasSuffix(u, ".mkv") ||
		strings.HasSuffix(u, ".mp4") || strings.Contains(strings.ToLower(u), "type=m3u_plus"):
		return u, KindMedia
	}
	return u, KindWeb
}
