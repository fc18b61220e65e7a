package calc

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	ErrStackEmpty     = errors.New("calc: stack empty")
	ErrNotEnoughStack = errors.New("calc: not enough values on stack")
	ErrUnknownToken   = errors.New("calc: unknown token")
	ErrNotInteger     = errors.New("calc: operand must be an integer")
)

// TokenError reports the token at which evaluation stopped.
type TokenError struct {
	Token string
	Pos   int
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("calc: token %d %q: %v", e.Pos, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// needStack is the error for an operator that wants n operands.
func needStack(n int) error {
	return fmt.Errorf("%w: need %d", ErrNotEnoughStack, n)
}

// recoverError turns a panicking error into err. Runtime errors and
// non-error values keep panicking.
func recoverError(err *error) {
	v := recover()
	if v == nil {
		return
	}
	if _, ok := v.(runtime.Error); ok {
		panic(v)
	}
	if e, ok := v.(error); ok {
		*err = e
		return
	}
	panic(v)
}
