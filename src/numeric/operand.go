package numeric

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Operand is anything that converts losslessly to a Fraction.
type Operand interface {
	constraints.Integer | Int128 | Fraction
}

// FromInt converts any Go integer.
func FromInt[T constraints.Integer](n T) Fraction {
	if ^T(0) < 0 {
		return FromInt64(int64(n))
	}
	return FromUint64(uint64(n))
}

// Of converts an Operand to a Fraction.
func Of[T Operand](v T) Fraction {
	switch v := any(v).(type) {
	case Fraction:
		return v
	case Int128:
		return FromInt128(v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt64(rv.Int())
	}
	return FromUint64(rv.Uint())
}

// Add returns a+b for any mix of operands, e.g. Add(2, f) or Add(f, g).
func Add[A, B Operand](a A, b B) Fraction {
	return Of(a).Add(Of(b))
}

func Sub[A, B Operand](a A, b B) Fraction {
	return Of(a).Sub(Of(b))
}

func Mul[A, B Operand](a A, b B) Fraction {
	return Of(a).Mul(Of(b))
}

func Div[A, B Operand](a A, b B) Fraction {
	return Of(a).Div(Of(b))
}

// Sum adds vs left to right. The empty sum is 0.
func Sum[T Operand](vs ...T) Fraction {
	out := Zero()
	for _, v := range vs {
		out = out.Add(Of(v))
	}
	return out
}

// Product multiplies vs left to right. The empty product is 1.
func Product[T Operand](vs ...T) Fraction {
	out := One()
	for _, v := range vs {
		out = out.Mul(Of(v))
	}
	return out
}
