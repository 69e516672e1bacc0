package cli

import (
	"errors"

	"github.com/hyqhyq3/winerror/internal/locale"
	"github.com/hyqhyq3/winerror/internal/message"
	"github.com/hyqhyq3/winerror/internal/msgid"
)

// Exit codes.
const (
	ExitOK              = 0
	ExitUsage           = 1
	ExitInvalidArgument = 2
	ExitInvalidNumber   = 3
	ExitInvalidLocale   = 4
	ExitNotFound        = 5
)

// ExitCodeError carries the process exit code for err. A nil Err means the
// diagnostic has already been written.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec *ExitCodeError
	if errors.As(err, &ec) {
		return ec.Code
	}
	return codeFor(err)
}

func codeFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArguments):
		return ExitInvalidArgument
	case errors.Is(err, msgid.ErrInvalidNumber):
		return ExitInvalidNumber
	case errors.Is(err, locale.ErrInvalidLocale):
		return ExitInvalidLocale
	case errors.Is(err, message.ErrNotFound):
		return ExitNotFound
	default:
		return ExitUsage
	}
}
