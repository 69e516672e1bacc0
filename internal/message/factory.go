package message

import (
	"fmt"
	"strings"
)

// Table sources.
const (
	SourceAuto    = "auto"
	SourceSystem  = "system"
	SourceCatalog = "catalog"
)

// NewTable returns the table for source. "auto" prefers the operating
// system's message tables and falls back to the embedded catalog.
func NewTable(source string) (Table, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "", SourceAuto:
		if t, err := NewSystemTable(); err == nil {
			return t, nil
		}
		return DefaultCatalog()
	case SourceSystem:
		return NewSystemTable()
	case SourceCatalog, "offline":
		return DefaultCatalog()
	default:
		return nil, fmt.Errorf("unknown message source: %s", source)
	}
}
