package ui

import (
	"strings"
	"testing"
)

func TestTruncateWithEllipsis(t *testing.T) {
	if got := TruncateWithEllipsis("short", 20); got != "short" {
		t.Errorf("expected passthrough, got %q", got)
	}
	if got := TruncateWithEllipsis("abcdefghij", 8); got != "abcde..." {
		t.Errorf("expected ellipsis truncation, got %q", got)
	}
	if got := TruncateWithEllipsis("abcdefghij", 2); got != "ab" {
		t.Errorf("expected hard cut below ellipsis room, got %q", got)
	}
	if got := TruncateWithEllipsis("héllo wörld", 11); got != "héllo wörld" {
		t.Errorf("rune-aware length check failed, got %q", got)
	}
}

func TestFormatURL(t *testing.T) {
	if got := FormatURL(""); got != "No URL" {
		t.Errorf(`expected "No URL", got %q`, got)
	}
	if got := FormatURL("https://example.com/x.w3u"); got != "example.com/x.w3u" {
		t.Errorf("expected scheme stripped, got %q", got)
	}
	if got := FormatURL("http://example.com/x.w3u"); got != "example.com/x.w3u" {
		t.Errorf("expected scheme stripped, got %q", got)
	}
	long := "https://example.com/" + strings.Repeat("a", 500)
	got := FormatURL(long)
	if !strings.HasSuffix(got, "...") || len([]rune(got)) >= len([]rune(long)) {
		t.Errorf("expected long URL truncated with ellipsis, got %q", got)
	}
}
