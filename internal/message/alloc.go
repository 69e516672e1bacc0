package message

import "fmt"

// Allocation is a text buffer owned by the operating system. The caller
// copies the text out and must free the block exactly once.
type Allocation interface {
	Text() string
	Free() error
}

// CopyOut copies the text held by a into process memory and releases a.
// The release happens on every path out, including a panic in Text.
func CopyOut(a Allocation) (text string, err error) {
	defer func() {
		if ferr := a.Free(); ferr != nil && err == nil {
			err = fmt.Errorf("free message buffer: %w", ferr)
		}
	}()
	return a.Text(), nil
}
