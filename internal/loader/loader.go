// Package loader turns an unreliable remote document into a trusted
// in-memory tree via the cache/fetch/sanitize/validate pipeline.
package loader

import (
	"context"
	"encoding/json"
	"fmt"

	"w3u-navigator/internal/cache"
	"w3u-navigator/internal/fetch"
	"w3u-navigator/internal/model"
	"w3u-navigator/internal/playlist"
	"w3u-navigator/internal/sanitize"
)

// ContentFetcher is the transport capability the loader depends on.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// Outcome is the result of one successful Load call. Either Doc is set, or
// MediaPlaylist is true and the fetched body was an M3U playlist that was
// never parsed or cached.
type Outcome struct {
	URL string
	Doc *model.Document

	// CachePath and CacheBytes describe the slot written on a fresh fetch.
	// Both are zero when the document came from a valid cache slot.
	CachePath  string
	CacheBytes int

	MediaPlaylist bool
	MediaEntries  int
}

// Loader orchestrates one document load at a time. Errors are terminal for
// the single call; there is no retry.
type Loader struct {
	Cache   *cache.Store
	Fetcher ContentFetcher
}

// New returns a Loader over the given store and fetcher.
func New(store *cache.Store, fetcher ContentFetcher) *Loader {
	return &Loader{Cache: store, Fetcher: fetcher}
}

// Load resolves rawURL to a Document. Cache hits are sanitized, re-validated
// and self-healed in place; corrupt slots are dropped and refetched
// transparently. A fetched body starting with #EXTM3U short-circuits into a
// media-playlist outcome without touching the cache.
func (l *Loader) Load(ctx context.Context, rawURL string) (*Outcome, error) {
	if out, ok := l.fromCache(rawURL); ok {
		return out, nil
	}

	res, err := l.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if playlist.IsM3U(res.Body) {
		entries, err := playlist.Entries(res.Body)
		if err != nil {
			entries = 0
		}
		return &Outcome{URL: rawURL, MediaPlaylist: true, MediaEntries: entries}, nil
	}

	if res.Status < 200 || res.Status >= 300 {
		return nil, fmt.Errorf("%w %s: unexpected status %d", model.ErrFetch, rawURL, res.Status)
	}

	cleaned := sanitize.Clean(res.Body)
	if err := sanitize.Validate(cleaned); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", rawURL, err)
	}
	doc, err := parse(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", rawURL, err)
	}
	canonical, err := sanitize.Canonical(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", rawURL, err)
	}
	slot, err := l.Cache.Put(rawURL, canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to cache %s: %w", rawURL, err)
	}
	return &Outcome{URL: rawURL, Doc: doc, CachePath: slot, CacheBytes: len(canonical)}, nil
}

// fromCache serves rawURL from its slot when the slot still validates,
// rewriting it with the sanitized canonical text. Any failure along the way
// invalidates the slot and reports a miss so Load falls through to a fresh
// fetch.
func (l *Loader) fromCache(rawURL string) (*Outcome, bool) {
	text, ok, err := l.Cache.Get(rawURL)
	if err != nil || !ok {
		return nil, false
	}
	cleaned := sanitize.Clean(text)
	if sanitize.Validate(cleaned) != nil {
		_ = l.Cache.Invalidate(rawURL)
		return nil, false
	}
	doc, err := parse(cleaned)
	if err != nil {
		_ = l.Cache.Invalidate(rawURL)
		return nil, false
	}
	canonical, err := sanitize.Canonical(cleaned)
	if err != nil {
		_ = l.Cache.Invalidate(rawURL)
		return nil, false
	}
	if _, err := l.Cache.Put(rawURL, canonical); err != nil {
		return nil, false
	}
	return &Outcome{URL: rawURL, Doc: doc}, true
}

func parse(text string) (*model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrBadDocument, err)
	}
	return &doc, nil
}
