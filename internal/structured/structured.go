// Package structured pulls the fenced JSON block out of free-form model
// output. It is strict: a missing block or invalid JSON is an error, and no
// attempt is made to repair the payload.
package structured

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// Markers delimiting the structured block in model output.
const (
	OpenMarker  = "```json"
	CloseMarker = "```"
)

var (
	// ErrNoStructuredBlock means the text contains no fenced JSON block.
	ErrNoStructuredBlock = eris.New("structured: no fenced json block")
	// ErrMalformedPayload means the fenced block is not valid JSON for the target.
	ErrMalformedPayload = eris.New("structured: malformed payload")
)

// blockPattern matches the first ```json fence up to the nearest closing
// fence. Only the markers are matched; the decoder judges the content.
var blockPattern = regexp.MustCompile("(?s)```json\\r?\\n(.*?)\\r?\\n```")

// ExtractionError carries the raw model text so callers can surface it.
type ExtractionError struct {
	Kind error
	Raw  string
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Err.Error()
	}
	return e.Kind.Error()
}

// Unwrap exposes both the kind sentinel and the underlying decode error.
func (e *ExtractionError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Block returns the JSON text of the first fenced block in raw.
func Block(raw string) (string, bool) {
	m := blockPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Extract decodes the fenced block of raw into v.
func Extract(raw string, v any) error {
	block, ok := Block(raw)
	if !ok {
		return &ExtractionError{Kind: ErrNoStructuredBlock, Raw: raw}
	}
	if err := json.Unmarshal([]byte(block), v); err != nil {
		return &ExtractionError{Kind: ErrMalformedPayload, Raw: raw, Err: err}
	}
	return nil
}

// RawText returns the model text attached to err, if any.
func RawText(err error) (string, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Raw, true
	}
	return "", false
}
