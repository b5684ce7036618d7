package matcher

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel every *SyntaxError wraps.
var ErrSyntax = errors.New("matcher: invalid syntax")

// SyntaxError reports where parsing failed and why.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("matcher: syntax error at byte %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
