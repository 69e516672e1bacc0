package message

import (
	"fmt"
	"strings"

	"github.com/hyqhyq3/winerror/internal/locale"
	"github.com/hyqhyq3/winerror/internal/msgid"
)

// Formatter resolves message ids to display text.
type Formatter struct {
	table Table
}

func NewFormatter(table Table) *Formatter {
	return &Formatter{table: table}
}

// Format returns the message text for id in lcid, without the line break
// the system tables end their entries with.
func (f *Formatter) Format(lcid locale.LCID, id msgid.ID) (string, error) {
	text, err := f.table.Lookup(lcid, id)
	if err != nil {
		return "", err
	}
	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return "", fmt.Errorf("%w: %s in locale %d", ErrNotFound, id, lcid)
	}
	return text, nil
}

func (f *Formatter) Source() string {
	return f.table.Source()
}
