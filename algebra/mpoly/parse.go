package mpoly

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"text/scanner"
)

// maxParsedExponent caps exponents accepted by Parse.
const maxParsedExponent = 1 << 12

// Parse builds a polynomial from an expression string over the ring's
// variables. Supported syntax: integer literals, variable names, unary and
// binary + and -, *, ^ with a non-negative integer exponent, parentheses.
//
//	p, err := ring.Parse("y - x^2 + 3*(x - 1)")
func (r *Ring) Parse(src string) (*Poly, error) {
	p := &parser{ring: r}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.Error = func(_ *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = errors.New(msg)
		}
	}
	p.next()
	out := p.expr()
	if p.err != nil {
		return nil, fmt.Errorf("parsing %q: %w", src, p.err)
	}
	if p.tok != scanner.EOF {
		return nil, fmt.Errorf("parsing %q: unexpected %q at %v", src, p.text(), p.s.Pos())
	}
	return out, nil
}

type parser struct {
	ring *Ring
	s    scanner.Scanner
	tok  rune
	err  error
}

func (p *parser) next() { p.tok = p.s.Scan() }

func (p *parser) text() string { return p.s.TokenText() }

func (p *parser) fail(format string, args ...any) *Poly {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
	return p.ring.Zero()
}

func (p *parser) expr() *Poly {
	out := p.term()
	for p.err == nil && (p.tok == '+' || p.tok == '-') {
		op := p.tok
		p.next()
		rhs := p.term()
		if op == '+' {
			out = out.Add(rhs)
		} else {
			out = out.Sub(rhs)
		}
	}
	return out
}

func (p *parser) term() *Poly {
	out := p.unary()
	for p.err == nil && p.tok == '*' {
		p.next()
		out = out.Mul(p.unary())
	}
	return out
}

func (p *parser) unary() *Poly {
	neg := false
	for p.tok == '-' || p.tok == '+' {
		if p.tok == '-' {
			neg = !neg
		}
		p.next()
	}
	out := p.power()
	if neg {
		out = out.Neg()
	}
	return out
}

func (p *parser) power() *Poly {
	base := p.primary()
	if p.err != nil || p.tok != '^' {
		return base
	}
	p.next()
	if p.tok != scanner.Int {
		return p.fail("exponent must be an integer literal, got %q at %v", p.text(), p.s.Pos())
	}
	k, ok := new(big.Int).SetString(p.text(), 0)
	if !ok || !k.IsInt64() || k.Int64() < 0 || k.Int64() > maxParsedExponent {
		return p.fail("invalid exponent %q at %v", p.text(), p.s.Pos())
	}
	p.next()
	return base.Pow(int(k.Int64()))
}

func (p *parser) primary() *Poly {
	switch p.tok {
	case scanner.Ident:
		name := p.text()
		v, ok := p.ring.Var(name)
		if !ok {
			return p.fail("unknown variable %q at %v", name, p.s.Pos())
		}
		p.next()
		return p.ring.X(v)
	case scanner.Int:
		c, ok := new(big.Int).SetString(p.text(), 0)
		if !ok {
			return p.fail("invalid integer %q at %v", p.text(), p.s.Pos())
		}
		p.next()
		return p.ring.Constant(c)
	case '(':
		p.next()
		out := p.expr()
		if p.err == nil && p.tok != ')' {
			return p.fail("missing closing parenthesis at %v", p.s.Pos())
		}
		p.next()
		return out
	case '/':
		return p.fail("division is not supported at %v", p.s.Pos())
	default:
		return p.fail("unexpected %q at %v", p.text(), p.s.Pos())
	}
}

// MustParse is Parse for statically known expressions; it panics on error.
func (r *Ring) MustParse(src string) *Poly {
	p, err := r.Parse(src)
	if err != nil {
		panic(err)
	}
	return p
}
