package calc

import (
	"fmt"

	"extfrac/src/numeric"
)

var commands map[string]func(*Machine)

func init() {
	commands = map[string]func(*Machine){

		// Arithmetic

		"+": binary(numeric.Fraction.Add),
		"-": binary(numeric.Fraction.Sub),
		"*": binary(numeric.Fraction.Mul),
		"/": binary(numeric.Fraction.Div),

		// Raise the second value to the integer power on top
		"^": func(m *Machine) {
			m.need(2)
			exp := integer(m.stack.at(0))
			m.result(2, m.stack.at(1).Pow(exp))
		},

		"neg": unary(numeric.Fraction.Neg),
		"inv": unary(numeric.Fraction.Inv),
		"abs": unary(numeric.Fraction.Abs),

		// Pop a max denominator, then replace the value below it with its
		// closest approximation
		"limit": func(m *Machine) {
			m.need(2)
			max := m.stack.at(0)
			if !max.IsInt() {
				panic(fmt.Errorf("%w: max denominator %s", ErrNotInteger, max))
			}
			f, err := m.stack.at(1).LimitDenominator(max.Numerator())
			if err != nil {
				panic(err)
			}
			m.result(2, f)
		},

		// Replace the top two values with -1, 0 or 1, or NaN when unordered
		"cmp": func(m *Machine) {
			m.need(2)
			c, ok := m.stack.at(1).PartialCmp(m.stack.at(0))
			if !ok {
				m.stack.replace(2, numeric.NaN())
				return
			}
			m.stack.replace(2, numeric.FromInt64(int64(c)))
		},

		// Stack control

		"dup": func(m *Machine) {
			m.need(1)
			m.stack.Push(m.stack.at(0))
		},

		"swap": func(m *Machine) {
			m.need(2)
			a, b := m.stack.at(0), m.stack.at(1)
			m.stack.replace(2, a)
			m.stack.Push(b)
		},

		"drop": func(m *Machine) {
			m.need(1)
			m.stack.Pop()
		},

		"clear": func(m *Machine) {
			m.stack.Clear()
		},

		// Push the stack depth
		"z": func(m *Machine) {
			m.stack.Push(numeric.FromInt(m.stack.Len()))
		},

		// Printing

		// Print the top value without removing it
		"p": func(m *Machine) {
			m.need(1)
			fmt.Fprintln(m.out, m.stack.at(0))
		},

		// Pop the top value and print it
		"n": func(m *Machine) {
			m.need(1)
			f, _ := m.stack.Pop()
			fmt.Fprintln(m.out, f)
		},

		// Show the stack without modifying it
		"f": func(m *Machine) {
			m.stack.show(m.out)
		},
	}
}

func binary(op func(x, y numeric.Fraction) numeric.Fraction) func(*Machine) {
	return func(m *Machine) {
		m.need(2)
		m.result(2, op(m.stack.at(1), m.stack.at(0)))
	}
}

func unary(op func(x numeric.Fraction) numeric.Fraction) func(*Machine) {
	return func(m *Machine) {
		m.need(1)
		m.result(1, op(m.stack.at(0)))
	}
}

// integer converts an exponent operand, panicking with ErrNotInteger if it
// is not an int.
func integer(f numeric.Fraction) int {
	if !f.IsInt() {
		panic(fmt.Errorf("%w: exponent %s", ErrNotInteger, f))
	}
	n := f.Numerator()
	if !n.IsInt64() || int64(int(n.AsInt64())) != n.AsInt64() {
		panic(fmt.Errorf("%w: exponent %s out of range", ErrNotInteger, f))
	}
	return int(n.AsInt64())
}
