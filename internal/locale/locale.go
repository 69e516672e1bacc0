// Package locale maps language tags and numeric strings to Windows locale identifiers.
package locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLocale is returned when a value is neither a known language tag nor an integer LCID.
var ErrInvalidLocale = errors.New("invalid language")

// errUnknownTag is what a Database returns for a tag it has no entry for.
var errUnknownTag = errors.New("unknown language tag")

// LCID is a Windows locale identifier.
type LCID uint32

// Well-known identifiers.
const (
	Neutral   LCID = 0
	Invariant LCID = 127
	EnglishUS LCID = 1033
)

// Database is the platform's locale database.
type Database interface {
	// LCID returns the identifier for a BCP 47 tag.
	LCID(tag string) (LCID, error)
	// Ambient returns the identifier of the locale the process runs under.
	Ambient() (LCID, error)
}

// Resolver turns user input into an LCID.
type Resolver struct {
	db Database
}

func NewResolver(db Database) *Resolver {
	return &Resolver{db: db}
}

// Resolve interprets value as a language tag first and falls back to a
// base-10 integer identifier.
func (r *Resolver) Resolve(value string) (LCID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidLocale)
	}

	if id, err := r.db.LCID(value); err == nil {
		return id, nil
	}

	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLocale, value)
	}
	return LCID(n), nil
}

// Ambient returns the current locale of the process.
func (r *Resolver) Ambient() (LCID, error) {
	return r.db.Ambient()
}
