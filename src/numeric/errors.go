package numeric

import (
	"errors"
	"fmt"
)

var (
	ErrOverflow              = errors.New("numeric: value exceeds the 128-bit domain")
	ErrInexact               = errors.New("numeric: value is not exactly representable")
	ErrInvalidMaxDenominator = errors.New("numeric: max denominator should be at least 1")

	ErrFormat = errors.New("invalid fraction format")
	ErrSyntax = errors.New("invalid syntax")
	ErrRange  = errors.New("value out of range")
)

// ParseError records a failed Parse. Part names the piece of the input that
// was rejected: "fraction", "numerator", "denominator", "float" or "integer".
type ParseError struct {
	Input string
	Part  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("numeric: parsing %q: invalid %s: %v", e.Input, e.Part, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// checkOverflow converts an ErrOverflow panic raised by the arithmetic
// helpers into an error. Anything else keeps panicking.
func checkOverflow(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(error); ok && errors.Is(e, ErrOverflow) {
			*err = e
			return
		}
		panic(v)
	}
}

func mustAdd(a, b Int128) Int128 {
	v, overflow := a.AddOverflow(b)
	if overflow {
		panic(ErrOverflow)
	}
	return v
}

func mustSub(a, b Int128) Int128 {
	v, overflow := a.SubOverflow(b)
	if overflow {
		panic(ErrOverflow)
	}
	return v
}

func mustMul(a, b Int128) Int128 {
	v, overflow := a.MulOverflow(b)
	if overflow {
		panic(ErrOverflow)
	}
	return v
}

func mustNeg(a Int128) Int128 {
	v, overflow := a.NegOverflow()
	if overflow {
		panic(ErrOverflow)
	}
	return v
}
