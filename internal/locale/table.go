package locale

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	golocale "github.com/Xuanwo/go-locale"
	"golang.org/x/text/language"
)

//go:embed tags.toml
var tagsFS embed.FS

var (
	defaultTable     *Table
	defaultTableErr  error
	defaultTableOnce sync.Once
)

// Table is a portable locale database backed by an embedded tag table.
type Table struct {
	byTag  map[string]LCID
	names  map[LCID]string
	detect func() (language.Tag, error)
}

type tagFile struct {
	LCID map[string]uint32 `toml:"lcid"`
}

// DefaultTable returns the embedded tag table. Ambient detection uses the
// POSIX locale environment (LANGUAGE > LC_ALL > LC_MESSAGES > LANG).
func DefaultTable() (*Table, error) {
	defaultTableOnce.Do(func() {
		var f tagFile
		if _, err := toml.DecodeFS(tagsFS, "tags.toml", &f); err != nil {
			defaultTableErr = fmt.Errorf("load locale table: %w", err)
			return
		}
		defaultTable = NewTable(f.LCID, golocale.Detect)
	})
	return defaultTable, defaultTableErr
}

// NewTable builds a Table from a tag->LCID map. detect may be nil, in which
// case the ambient locale is always en-US.
func NewTable(entries map[string]uint32, detect func() (language.Tag, error)) *Table {
	t := &Table{
		byTag:  make(map[string]LCID, len(entries)),
		names:  make(map[LCID]string, len(entries)),
		detect: detect,
	}
	for tag, v := range entries {
		id := LCID(v)
		t.byTag[canonical(tag)] = id
		// several tags can share an id; keep the shortest, then lexical order
		if best, ok := t.names[id]; !ok || len(tag) < len(best) || (len(tag) == len(best) && tag < best) {
			t.names[id] = tag
		}
	}
	return t
}

func (t *Table) LCID(tag string) (LCID, error) {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errUnknownTag, tag)
	}
	if id, ok := t.lookup(parsed); ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnknownTag, tag)
}

// Ambient falls back to en-US when the environment carries no usable locale.
func (t *Table) Ambient() (LCID, error) {
	if t.detect == nil {
		return EnglishUS, nil
	}
	tag, err := t.detect()
	if err != nil {
		return EnglishUS, nil
	}
	if id, ok := t.lookup(tag); ok {
		return id, nil
	}
	return EnglishUS, nil
}

// Tag returns the table's tag for id, the reverse of LCID.
func (t *Table) Tag(id LCID) (string, bool) {
	tag, ok := t.names[id]
	return tag, ok
}

// lookup walks the parent chain: en-GB-oxendict -> en-GB -> en.
func (t *Table) lookup(tag language.Tag) (LCID, bool) {
	for ; ; tag = tag.Parent() {
		if id, ok := t.byTag[canonical(tag.String())]; ok {
			return id, true
		}
		if tag.IsRoot() {
			return 0, false
		}
	}
}

func canonical(tag string) string {
	return strings.ToLower(strings.ReplaceAll(tag, "_", "-"))
}
