// Package vcio implements the solver's external text formats: a
// line-oriented stdin edge-list parser and a stdout cover writer.
// Neither function here depends on package solve; cmd/vccover is the only
// place that wires parsing, solving, and writing together.
package vcio

import "errors"

// ErrMalformedEdgeLine indicates a non-comment, non-problem line that did
// not split into exactly two whitespace-separated vertex name tokens.
var ErrMalformedEdgeLine = errors.New("vcio: malformed edge line")
