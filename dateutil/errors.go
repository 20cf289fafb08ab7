package dateutil

import (
	"errors"
	"fmt"
)

var (
	// ErrBadPattern is returned for patterns with unknown letters, unsupported
	// widths or unterminated quotes.
	ErrBadPattern = errors.New("bad date pattern")

	// ErrAmbiguousLiteral is returned when parsing with a pattern whose literal
	// text would be read as a layout element.
	ErrAmbiguousLiteral = errors.New("pattern literal cannot be parsed unambiguously")
)

// ParseError describes a failed Parse.
type ParseError struct {
	Text    string
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Pattern == "" {
		return fmt.Sprintf("failed to parse %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("failed to parse %q with pattern %q: %v", e.Text, e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
