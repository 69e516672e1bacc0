package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyqhyq3/winerror/internal/locale"
	"github.com/hyqhyq3/winerror/internal/message"
	"github.com/hyqhyq3/winerror/internal/msgid"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitInvalidArgument, ExitCode(&MissingValueError{Option: OptionLanguage}))
	assert.Equal(t, ExitInvalidNumber, ExitCode(fmt.Errorf("x: %w", msgid.ErrInvalidNumber)))
	assert.Equal(t, ExitInvalidLocale, ExitCode(fmt.Errorf("x: %w", locale.ErrInvalidLocale)))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("x: %w", message.ErrNotFound)))
	assert.Equal(t, 7, ExitCode(fmt.Errorf("wrapped: %w", &ExitCodeError{Code: 7})))
}

func TestExitCodeError_Nil(t *testing.T) {
	var e *ExitCodeError
	assert.Empty(t, e.Error())
	assert.Nil(t, e.Unwrap())
	assert.Empty(t, (&ExitCodeError{Code: 1}).Error())
}
