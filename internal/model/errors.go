package model

import "errors"

// Sentinel errors for document loading.
var (
	// ErrFetch is returned when the transport fails or the server answers
	// with a non-success status.
	ErrFetch = errors.New("fetch failed")
	// ErrBadDocument is returned when text still fails to parse as JSON
	// after sanitizing.
	ErrBadDocument = errors.New("document is not valid JSON")
)
