package ic

import (
	"errors"
	"fmt"
)

// ErrTooLarge indicates the infix closure of the example words exceeds the
// characteristic-set bit width and cannot be represented.
var ErrTooLarge = errors.New("infix closure exceeds bitset width")

// TooLargeError wraps ErrTooLarge with the offending size, following the
// same context-carrying error shape as the teacher's nfa.CompileError.
type TooLargeError struct {
	Size  int
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("infix closure has %d elements, exceeds limit of %d", e.Size, e.Limit)
}

func (e *TooLargeError) Unwrap() error {
	return ErrTooLarge
}
