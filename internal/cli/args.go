package cli

import (
	"errors"
	"fmt"
)

// Option names.
const (
	OptionLanguage = "language"
	OptionHelp     = "help"
)

// ErrInvalidArguments is returned for malformed or incomplete option syntax.
var ErrInvalidArguments = errors.New("invalid arguments")

// Invocation is the command line split into positional parameters and options.
type Invocation struct {
	Params  []string
	Options map[string]string
}

// ParseArgs scans args left to right. "--language <v>" and "--help" are
// options until "--" is seen; every other token is a parameter, including
// ones that look like unknown flags or negative numbers.
func ParseArgs(args []string) (*Invocation, error) {
	inv := &Invocation{
		Params:  make([]string, 0, len(args)),
		Options: make(map[string]string, 2),
	}

	endOfOptions := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if endOfOptions {
			inv.Params = append(inv.Params, arg)
			continue
		}

		switch arg {
		case "--":
			endOfOptions = true
		case "--" + OptionLanguage:
			if i+1 >= len(args) {
				return nil, &MissingValueError{Option: OptionLanguage}
			}
			i++
			inv.Options[OptionLanguage] = args[i]
		case "--" + OptionHelp:
			inv.Options[OptionHelp] = ""
		default:
			inv.Params = append(inv.Params, arg)
		}
	}
	return inv, nil
}

// Option returns the value of an option and whether it was given.
func (inv *Invocation) Option(name string) (string, bool) {
	v, ok := inv.Options[name]
	return v, ok
}

// MissingValueError reports an option given as the last token without its value.
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%v: missing value for --%s", ErrInvalidArguments, e.Option)
}

func (e *MissingValueError) Unwrap() error { return ErrInvalidArguments }
