//go:build !windows

package message

// NewSystemTable is only available on Windows.
func NewSystemTable() (Table, error) {
	return nil, ErrUnsupported
}
