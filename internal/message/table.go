// Package message looks up system message text for a message id and locale.
package message

import (
	"errors"

	"github.com/hyqhyq3/winerror/internal/locale"
	"github.com/hyqhyq3/winerror/internal/msgid"
)

var (
	// ErrNotFound is returned when no message text exists for an id/locale pair.
	ErrNotFound = errors.New("message not found")
	// ErrUnsupported is returned by tables that are not available on this platform.
	ErrUnsupported = errors.New("message table not supported on this platform")
)

// Table is a message table lookup. Implementations return an error wrapping
// ErrNotFound when the pair has no text.
type Table interface {
	Lookup(lcid locale.LCID, id msgid.ID) (string, error)
	Source() string
}
