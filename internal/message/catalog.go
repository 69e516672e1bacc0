package message

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/hyqhyq3/winerror/internal/locale"
	"github.com/hyqhyq3/winerror/internal/msgid"
)

//go:embed catalog/*.toml
var catalogFS embed.FS

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// Catalog is an offline copy of common system messages, one table per locale.
type Catalog struct {
	tables map[locale.LCID]map[uint32]string
}

type catalogFile struct {
	LCID     uint32            `toml:"lcid"`
	Tag      string            `toml:"tag"`
	Messages map[string]string `toml:"messages"`
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		sub, err := fs.Sub(catalogFS, "catalog")
		if err != nil {
			defaultCatalogErr = err
			return
		}
		defaultCatalog, defaultCatalogErr = LoadCatalog(sub)
	})
	return defaultCatalog, defaultCatalogErr
}

// LoadCatalog reads every *.toml file at the root of fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.toml")
	if err != nil {
		return nil, err
	}

	c := &Catalog{tables: make(map[locale.LCID]map[uint32]string, len(names))}
	for _, name := range names {
		var f catalogFile
		if _, err := toml.DecodeFS(fsys, name, &f); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		if f.LCID == 0 {
			return nil, fmt.Errorf("catalog %s: missing lcid for %q", name, f.Tag)
		}

		table := c.tables[locale.LCID(f.LCID)]
		if table == nil {
			table = make(map[uint32]string, len(f.Messages))
			c.tables[locale.LCID(f.LCID)] = table
		}
		for key, text := range f.Messages {
			code, err := strconv.ParseUint(key, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("catalog %s: bad message id %q", name, key)
			}
			table[uint32(code)] = text
		}
	}
	return c, nil
}

func (c *Catalog) Source() string { return SourceCatalog }

// Lookup treats LANG_NEUTRAL as en-US and FACILITY_WIN32 HRESULTs as their Win32 code.
func (c *Catalog) Lookup(lcid locale.LCID, id msgid.ID) (string, error) {
	if lcid == locale.Neutral {
		lcid = locale.EnglishUS
	}
	table, ok := c.tables[lcid]
	if !ok {
		return "", fmt.Errorf("%w: no catalog for locale %d", ErrNotFound, lcid)
	}

	code := uint32(id)
	if w, ok := id.Win32(); ok {
		code = uint32(w)
	}
	text, ok := table[code]
	if !ok {
		return "", fmt.Errorf("%w: %s in locale %d", ErrNotFound, id, lcid)
	}
	return text, nil
}

// Locales lists the locales the catalog has tables for.
func (c *Catalog) Locales() []locale.LCID {
	out := make([]locale.LCID, 0, len(c.tables))
	for id := range c.tables {
		out = append(out, id)
	}
	return out
}
