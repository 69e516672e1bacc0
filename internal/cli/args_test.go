package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Options(t *testing.T) {
	inv, err := ParseArgs([]string{"--language", "en-US", "0x5", "--help"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0x5"}, inv.Params)
	assert.Equal(t, map[string]string{"language": "en-US", "help": ""}, inv.Options)
}

func TestParseArgs_EndOfOptions(t *testing.T) {
	inv, err := ParseArgs([]string{"--", "--help", "--language", "-5"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--help", "--language", "-5"}, inv.Params)
	assert.Empty(t, inv.Options)
}

func TestParseArgs_UnknownTokensArePositional(t *testing.T) {
	inv, err := ParseArgs([]string{"--foo", "-5", "--language=de"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--foo", "-5", "--language=de"}, inv.Params)
}

func TestParseArgs_LastLanguageWins(t *testing.T) {
	inv, err := ParseArgs([]string{"--language", "de", "--language", "1041", "5"})
	require.NoError(t, err)
	v, ok := inv.Option(OptionLanguage)
	assert.True(t, ok)
	assert.Equal(t, "1041", v)
}

func TestParseArgs_MissingLanguageValue(t *testing.T) {
	_, err := ParseArgs([]string{"5", "--language"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArguments))

	var missing *MissingValueError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, OptionLanguage, missing.Option)
}

func TestParseArgs_LanguageAfterEndMarker(t *testing.T) {
	inv, err := ParseArgs([]string{"--", "--language"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--language"}, inv.Params)
}

func TestSelectMode(t *testing.T) {
	cases := []struct {
		args []string
		want Mode
	}{
		{nil, ModeUsage},
		{[]string{"--language", "1033"}, ModeUsage},
		{[]string{"--help"}, ModeHelp},
		{[]string{"5", "--help"}, ModeHelp},
		{[]string{"5"}, ModeLookup},
		{[]string{"--", "--help"}, ModeLookup},
	}
	for _, c := range cases {
		inv, err := ParseArgs(c.args)
		require.NoError(t, err)
		assert.Equal(t, c.want, SelectMode(inv), "args %v", c.args)
	}
}
