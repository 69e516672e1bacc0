// Package msgid parses system message identifiers given on the command line.
package msgid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when a message id is not a valid number in its implied base.
var ErrInvalidNumber = errors.New("invalid message id")

// ID is a 32-bit system message identifier. HRESULTs are negative.
type ID int32

func (id ID) String() string {
	return fmt.Sprintf("0x%08X", uint32(id))
}

// Parse reads s as hexadecimal ("0x" prefix), octal (leading "0") or decimal.
//
// Hex and octal cover the whole unsigned 32-bit range and are reinterpreted as
// two's complement, so 0x80070005 parses to a negative ID.
func Parse(s string) (ID, error) {
	switch {
	case s == "":
		return 0, fmt.Errorf("%w: empty", ErrInvalidNumber)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return parseUnsigned(s, s[2:], 16)
	case len(s) > 1 && s[0] == '0':
		return parseUnsigned(s, s[1:], 8)
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return ID(v), nil
}

func parseUnsigned(raw, digits string, base int) (ID, error) {
	// ParseUint accepts "_" separators and signs only with base 0; be explicit anyway.
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return ID(int32(uint32(v))), nil
}

// Win32 returns the Win32 error code carried by a FACILITY_WIN32 HRESULT
// (0x8007xxxx). ok is false for any other value.
func (id ID) Win32() (code uint16, ok bool) {
	u := uint32(id)
	if u&0xFFFF0000 != 0x80070000 {
		return 0, false
	}
	return uint16(u & 0xFFFF), true
}
