//go:build windows

package locale

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// LOCALE_ALLOW_NEUTRAL_NAMES
const localeAllowNeutralNames = 0x08000000

var (
	modkernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procLocaleNameToLCID   = modkernel32.NewProc("LocaleNameToLCID")
	procGetUserDefaultLCID = modkernel32.NewProc("GetUserDefaultLCID")
)

type systemDatabase struct{}

// System returns the Windows National Language Support database.
func System() (Database, error) {
	if err := procLocaleNameToLCID.Find(); err != nil {
		return nil, fmt.Errorf("LocaleNameToLCID unavailable: %w", err)
	}
	return systemDatabase{}, nil
}

func (systemDatabase) LCID(tag string) (LCID, error) {
	tag = strings.TrimSpace(tag)
	name, err := windows.UTF16PtrFromString(tag)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errUnknownTag, tag)
	}
	ret, _, _ := procLocaleNameToLCID.Call(uintptr(unsafe.Pointer(name)), localeAllowNeutralNames)
	if ret == 0 {
		return 0, fmt.Errorf("%w: %q", errUnknownTag, tag)
	}
	return LCID(ret), nil
}

func (systemDatabase) Ambient() (LCID, error) {
	if err := procGetUserDefaultLCID.Find(); err != nil {
		return 0, err
	}
	ret, _, _ := procGetUserDefaultLCID.Call()
	return LCID(ret), nil
}
