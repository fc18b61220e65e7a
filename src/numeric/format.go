package numeric

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	strNaN    = "nan"
	strPosInf = "inf"
	strNegInf = "-inf"
)

// String returns "nan", "inf", "-inf", the bare numerator for integers, or
// "n/d". Parse accepts every string String produces.
func (x Fraction) String() string {
	switch x.kind {
	case nan:
		return strNaN
	case posInf:
		return strPosInf
	case negInf:
		return strNegInf
	}
	return string(x.append(make([]byte, 0, 16)))
}

func (x Fraction) append(b []byte) []byte {
	b = append(b, x.num.String()...)
	if !x.den.IsZero() {
		b = append(b, '/')
		b = append(b, x.den.Inc().String()...)
	}
	return b
}

// Parse reads a Fraction from text. Leading and trailing space is ignored
// and case does not matter.
//
//	inf, +inf, infinity, +infinity  +Inf
//	-inf, -infinity                 -Inf
//	nan                             NaN
//	n/d                             New(n, d), exactly one '/'
//	1.25, -0.5e3                    FromFloat64 of the decimal literal
//	42                              an integer
//
// Failures are reported as *ParseError.
func Parse(text string) (Fraction, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch s {
	case "inf", "+inf", "infinity", "+infinity":
		return Infinity(true), nil
	case "-inf", "-infinity":
		return Infinity(false), nil
	case "nan":
		return NaN(), nil
	}

	switch {
	case strings.Contains(s, "/"):
		parts := strings.Split(s, "/")
		if len(parts) != 2 {
			return Fraction{}, &ParseError{Input: text, Part: "fraction", Err: ErrFormat}
		}
		num, err := Int128FromString(parts[0])
		if err != nil {
			return Fraction{}, &ParseError{Input: text, Part: "numerator", Err: err}
		}
		den, err := Int128FromString(parts[1])
		if err != nil {
			return Fraction{}, &ParseError{Input: text, Part: "denominator", Err: err}
		}
		f, err := TryNew(num, den)
		if err != nil {
			return Fraction{}, &ParseError{Input: text, Part: "fraction", Err: ErrRange}
		}
		return f, nil

	case strings.Contains(s, "."):
		v, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Fraction{}, &ParseError{Input: text, Part: "float", Err: ErrSyntax}
		}
		return FromFloat64(v), nil
	}

	n, err := Int128FromString(s)
	if err != nil {
		return Fraction{}, &ParseError{Input: text, Part: "integer", Err: err}
	}
	return FromInt128(n), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Fraction {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

func (x Fraction) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Fraction) UnmarshalText(b []byte) error {
	f, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = f
	return nil
}

// MarshalJSON encodes x as its canonical string, so that infinities, NaN and
// wide numerators survive JSON.
func (x Fraction) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

// UnmarshalJSON accepts a JSON string in any form Parse reads, or a JSON
// number.
func (x *Fraction) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return errors.New(`numeric: fraction: invalid value: null`)
	}
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return x.UnmarshalText([]byte(s))
	}
	if n, err := Int128FromString(string(b)); err == nil {
		*x = FromInt128(n)
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("numeric: fraction: invalid value: %s", b)
	}
	*x = FromFloat64(v)
	return nil
}
