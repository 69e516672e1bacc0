package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	table, err := DefaultTable()
	require.NoError(t, err)
	return NewResolver(table)
}

func TestResolve_LanguageTag(t *testing.T) {
	r := newTestResolver(t)

	id, err := r.Resolve("en-US")
	require.NoError(t, err)
	assert.Equal(t, LCID(1033), id)

	id, err = r.Resolve("EN-us")
	require.NoError(t, err)
	assert.Equal(t, LCID(1033), id)

	id, err = r.Resolve("de")
	require.NoError(t, err)
	assert.Equal(t, LCID(7), id)

	id, err = r.Resolve("ja-JP")
	require.NoError(t, err)
	assert.Equal(t, LCID(1041), id)
}

func TestResolve_NumericFallback(t *testing.T) {
	r := newTestResolver(t)

	id, err := r.Resolve("1033")
	require.NoError(t, err)
	assert.Equal(t, LCID(1033), id)

	id, err = r.Resolve("0")
	require.NoError(t, err)
	assert.Equal(t, Neutral, id)
}

func TestResolve_Invalid(t *testing.T) {
	r := newTestResolver(t)
	for _, in := range []string{"", "  ", "klingon-tag", "zz", "-1", "12x", "4294967296"} {
		_, err := r.Resolve(in)
		assert.ErrorIs(t, err, ErrInvalidLocale, "input %q", in)
	}
}

func TestTable_ParentChain(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	id, err := table.LCID("en-GB-oxendict")
	require.NoError(t, err)
	assert.Equal(t, LCID(2057), id)
}

func TestTable_Tag(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	tag, ok := table.Tag(1033)
	require.True(t, ok)
	assert.Equal(t, "en-US", tag)

	_, ok = table.Tag(99999)
	assert.False(t, ok)
}

func TestTable_Ambient(t *testing.T) {
	entries := map[string]uint32{"en-US": 1033, "fr": 12, "fr-FR": 1036}

	detected := NewTable(entries, func() (language.Tag, error) { return language.MustParse("fr-FR"), nil })
	id, err := detected.Ambient()
	require.NoError(t, err)
	assert.Equal(t, LCID(1036), id)

	parent := NewTable(entries, func() (language.Tag, error) { return language.MustParse("fr-CA"), nil })
	id, err = parent.Ambient()
	require.NoError(t, err)
	assert.Equal(t, LCID(12), id)

	failed := NewTable(entries, func() (language.Tag, error) { return language.Und, errors.New("not detected") })
	id, err = failed.Ambient()
	require.NoError(t, err)
	assert.Equal(t, EnglishUS, id)

	id, err = NewTable(entries, nil).Ambient()
	require.NoError(t, err)
	assert.Equal(t, EnglishUS, id)
}

type fixedDatabase struct{ ambient LCID }

func (d fixedDatabase) LCID(string) (LCID, error) { return 0, errUnknownTag }
func (d fixedDatabase) Ambient() (LCID, error)    { return d.ambient, nil }

func TestResolver_Ambient(t *testing.T) {
	r := NewResolver(fixedDatabase{ambient: 2052})
	id, err := r.Ambient()
	require.NoError(t, err)
	assert.Equal(t, LCID(2052), id)
}
