//go:build windows

package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyqhyq3/winerror/internal/locale"
)

func TestSystemTable_AccessDenied(t *testing.T) {
	table, err := NewSystemTable()
	require.NoError(t, err)

	f := NewFormatter(table)
	text, err := f.Format(locale.EnglishUS, 5)
	if errors.Is(err, ErrNotFound) {
		t.Skip("en-US message tables not installed")
	}
	require.NoError(t, err)
	assert.Equal(t, "Access is denied.", text)

	again, err := f.Format(locale.EnglishUS, 5)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestSystemTable_NotFound(t *testing.T) {
	table, err := NewSystemTable()
	require.NoError(t, err)

	_, err = table.Lookup(locale.EnglishUS, 0x3FFFFFFF)
	assert.ErrorIs(t, err, ErrNotFound)
}
