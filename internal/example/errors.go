package example

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by *ParseError.
var (
	ErrMalformedFilename = errors.New("malformed example filename")
	ErrMissingDocComment = errors.New("missing documentation comment")
	ErrMissingUsage      = errors.New("missing Usage: marker")
)

// ParseError reports an example file that cannot be turned into metadata.
type ParseError struct {
	Path    string // Path or name of the offending file
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing the file
	Err     error  // One of the sentinel errors above
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Path, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap returns the sentinel error so errors.Is works through ParseError.
func (e *ParseError) Unwrap() error {
	return e.Err
}
