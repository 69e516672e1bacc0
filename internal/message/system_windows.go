//go:build windows

package message

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/hyqhyq3/winerror/internal/locale"
	"github.com/hyqhyq3/winerror/internal/msgid"
)

const formatFlags = windows.FORMAT_MESSAGE_ALLOCATE_BUFFER |
	windows.FORMAT_MESSAGE_FROM_SYSTEM |
	windows.FORMAT_MESSAGE_IGNORE_INSERTS

var (
	modkernel32       = windows.NewLazySystemDLL("kernel32.dll")
	procFormatMessage = modkernel32.NewProc("FormatMessageW")
)

// SystemTable reads the message tables built into Windows.
type SystemTable struct{}

func NewSystemTable() (Table, error) {
	if err := procFormatMessage.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return SystemTable{}, nil
}

func (SystemTable) Source() string { return SourceSystem }

func (SystemTable) Lookup(lcid locale.LCID, id msgid.ID) (string, error) {
	buf, err := formatMessage(uint32(lcid), uint32(id))
	if err != nil {
		return "", fmt.Errorf("%w: %s in locale %d: %v", ErrNotFound, id, lcid, err)
	}
	return CopyOut(buf)
}

// localBuffer is a FormatMessageW result allocated with LocalAlloc.
type localBuffer struct {
	ptr *uint16
	n   int
}

func formatMessage(langID, messageID uint32) (*localBuffer, error) {
	var p *uint16
	r, _, e := procFormatMessage.Call(
		uintptr(formatFlags),
		0,
		uintptr(messageID),
		uintptr(langID),
		uintptr(unsafe.Pointer(&p)),
		0,
		0,
	)
	if r == 0 || p == nil {
		var errno windows.Errno
		if errors.As(e, &errno) && errno != 0 {
			return nil, errno
		}
		return nil, errors.New("FormatMessageW returned no text")
	}
	return &localBuffer{ptr: p, n: int(r)}, nil
}

func (b *localBuffer) Text() string {
	return windows.UTF16ToString(unsafe.Slice(b.ptr, b.n))
}

func (b *localBuffer) Free() error {
	if b.ptr == nil {
		return nil
	}
	_, err := windows.LocalFree(windows.Handle(unsafe.Pointer(b.ptr)))
	b.ptr = nil
	return err
}
