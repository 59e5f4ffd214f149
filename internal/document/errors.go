package document

import (
	"errors"
	"fmt"
)

// ErrUnreadable is wrapped by every load failure.
var ErrUnreadable = errors.New("document unreadable")

// ParseError reports a workflow document that could not be read or parsed.
type ParseError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s document: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the cause and ErrUnreadable to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	return []error{ErrUnreadable, e.Err}
}
