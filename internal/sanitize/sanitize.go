// Package sanitize repairs superficially malformed JSON text from
// hand-edited playlist sources and gates it through a structural parse.
package sanitize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"w3u-navigator/internal/model"
)

var (
	trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)
	controlCharRegex   = regexp.MustCompile(`[\x00-\x1F\x7F]`)
)

// Clean removes trailing commas before closing brackets and strips control
// characters, repeating until the text stops changing so stacked defects
// like ",,}" are fully repaired. It does not repair unbalanced brackets or
// unescaped quotes; those remain validation failures. Clean is idempotent.
func Clean(text string) string {
	for {
		repaired := trailingCommaRegex.ReplaceAllString(text, "$1")
		repaired = controlCharRegex.ReplaceAllString(repaired, "")
		if repaired == text {
			return text
		}
		text = repaired
	}
}

// Validate runs a structural JSON parse as a yes/no gate. The parsed value
// is discarded; only the decoder's diagnostic survives.
func Validate(text string) error {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return fmt.Errorf("%w: %v", model.ErrBadDocument, err)
	}
	return nil
}

// Canonical re-encodes validated JSON with 4-space indentation, preserving
// key order. This is the form written to cache slots.
func Canonical(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "    "); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrBadDocument, err)
	}
	return buf.String(), nil
}
