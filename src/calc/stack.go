package calc

import (
	"fmt"
	"io"

	"extfrac/src/numeric"
)

// Stack is a last-in first-out stack of fractions.
type Stack struct {
	data []numeric.Fraction
}

func NewStack() *Stack {
	return &Stack{data: make([]numeric.Fraction, 0, 16)}
}

func (s *Stack) Push(f numeric.Fraction) {
	s.data = append(s.data, f)
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (numeric.Fraction, error) {
	if len(s.data) == 0 {
		return numeric.Fraction{}, ErrStackEmpty
	}
	f := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return f, nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (numeric.Fraction, error) {
	if len(s.data) == 0 {
		return numeric.Fraction{}, ErrStackEmpty
	}
	return s.data[len(s.data)-1], nil
}

func (s *Stack) Len() int {
	return len(s.data)
}

func (s *Stack) Clear() {
	s.data = s.data[:0]
}

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []numeric.Fraction {
	out := make([]numeric.Fraction, len(s.data))
	copy(out, s.data)
	return out
}

// at returns the value i places below the top. The caller checks the depth.
func (s *Stack) at(i int) numeric.Fraction {
	return s.data[len(s.data)-1-i]
}

// replace pops n values and pushes f in their place.
func (s *Stack) replace(n int, f numeric.Fraction) {
	s.data = append(s.data[:len(s.data)-n], f)
}

// show prints the stack top first, one value per line.
func (s *Stack) show(w io.Writer) {
	for i := len(s.data) - 1; i >= 0; i-- {
		fmt.Fprintln(w, s.data[i])
	}
}
