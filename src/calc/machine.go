// Package calc evaluates reverse Polish expressions over numeric.Fraction
// values.
//
// Tokens are separated by white space. Anything numeric.Parse accepts is
// pushed; everything else must name an operator:
//
//	neg inv abs      unary arithmetic
//	+ - * / ^        binary arithmetic, ^ takes an integer exponent
//	limit            closest value with the denominator on top as bound
//	cmp              -1, 0 or 1, or nan when either side is nan
//	dup swap drop    stack control
//	clear z          empty the stack, push its depth
//	p n f            print the top, pop and print, print the whole stack
//
// A '#' starts a comment that runs to the end of the line.
package calc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"extfrac/src/numeric"
)

// Machine is a stack machine. A failing operator leaves the stack as it was
// before the operator ran. Machine is not safe for concurrent use.
type Machine struct {
	stack  *Stack
	maxDen numeric.Int128
	out    io.Writer
	log    zerolog.Logger
}

type Option func(*Machine)

// WithLogger sets the logger used to trace evaluation at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Machine) { m.log = logger }
}

// WithOutput sets where p, n and f print. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) { m.out = w }
}

// WithMaxDenominator approximates every pushed value whose denominator
// exceeds max. Zero or less disables the limit.
func WithMaxDenominator(max numeric.Int128) Option {
	return func(m *Machine) { m.maxDen = max }
}

func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		stack: NewStack(),
		out:   os.Stdout,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) Stack() *Stack {
	return m.stack
}

// Eval executes tokens in order, stopping at the first failure with a
// *TokenError. The context is checked before each token.
func (m *Machine) Eval(ctx context.Context, tokens []string) error {
	for i, tok := range tokens {
		if err := m.step(ctx, i, tok); err != nil {
			return err
		}
	}
	return nil
}

// EvalString executes src, which may span several lines.
func (m *Machine) EvalString(ctx context.Context, src string) error {
	return m.EvalReader(ctx, strings.NewReader(src))
}

// EvalReader executes tokens read line by line from r.
func (m *Machine) EvalReader(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	pos := 0
	for scanner.Scan() {
		for _, tok := range tokenize(scanner.Text()) {
			if err := m.step(ctx, pos, tok); err != nil {
				return err
			}
			pos++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("calc: read: %w", err)
	}
	return nil
}

func tokenize(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

func (m *Machine) step(ctx context.Context, pos int, tok string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.log.Debug().Int("pos", pos).Str("token", tok).Int("depth", m.stack.Len()).Msg("Exec")

	if err := m.exec(tok); err != nil {
		m.log.Debug().Err(err).Int("pos", pos).Str("token", tok).Msg("Token failed")
		return &TokenError{Token: tok, Pos: pos, Err: err}
	}
	return nil
}

func (m *Machine) exec(tok string) (err error) {
	defer recoverError(&err)

	if cmd, ok := commands[tok]; ok {
		cmd(m)
		return nil
	}

	f, perr := numeric.Parse(tok)
	if perr != nil {
		return fmt.Errorf("%w: %w", ErrUnknownToken, perr)
	}
	m.stack.Push(m.limit(f))
	return nil
}

// need panics unless the stack holds at least n values.
func (m *Machine) need(n int) {
	if m.stack.Len() >= n {
		return
	}
	if n == 1 {
		panic(ErrStackEmpty)
	}
	panic(needStack(n))
}

// result replaces the top n values with f.
func (m *Machine) result(n int, f numeric.Fraction) {
	m.stack.replace(n, m.limit(f))
}

func (m *Machine) limit(f numeric.Fraction) numeric.Fraction {
	if m.maxDen.Sign() <= 0 || !f.IsFinite() || f.Denominator().LessOrEqualTo(m.maxDen) {
		return f
	}
	out, err := f.LimitDenominator(m.maxDen)
	if err != nil {
		panic(err)
	}
	return out
}
