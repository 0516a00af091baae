package mpoly

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/consensys/algmat/algebra"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// term is a coefficient times a monomial, the monomial given as a dense
// exponent vector of length NumVars.
type term struct {
	coeff fr.Element
	exp   []int
}

// Poly is a polynomial of the ring, stored as nonzero terms sorted in
// descending graded-reverse-lex order. Polys are immutable; all operations
// return new values.
type Poly struct {
	ring  *Ring
	terms []term
}

var canonical grevlex

// Zero returns the zero polynomial.
func (r *Ring) Zero() *Poly {
	return &Poly{ring: r}
}

// One returns the constant polynomial 1.
func (r *Ring) One() *Poly {
	return r.Constant(big.NewInt(1))
}

// Constant returns the constant polynomial with the given integer value,
// embedded into the coefficient field.
func (r *Ring) Constant(c *big.Int) *Poly {
	var e fr.Element
	e.SetBigInt(c)
	return r.constant(e)
}

func (r *Ring) constant(c fr.Element) *Poly {
	if c.IsZero() {
		return r.Zero()
	}
	return &Poly{ring: r, terms: []term{{coeff: c, exp: make([]int, r.NumVars())}}}
}

// X returns the polynomial consisting of the single variable v.
func (r *Ring) X(v algebra.Variable) *Poly {
	if err := r.checkVar(v); err != nil {
		panic(err)
	}
	exp := make([]int, r.NumVars())
	exp[v] = 1
	var one fr.Element
	one.SetUint64(1)
	return &Poly{ring: r, terms: []term{{coeff: one, exp: exp}}}
}

func (p *Poly) IsZero() bool { return len(p.terms) == 0 }

// Support returns the variables occurring in p, in ascending order.
func (p *Poly) Support() []algebra.Variable {
	n := p.ring.NumVars()
	seen := make([]bool, n)
	for _, t := range p.terms {
		for i, e := range t.exp {
			if e > 0 {
				seen[i] = true
			}
		}
	}
	var vars []algebra.Variable
	for i := 0; i < n; i++ {
		if seen[i] {
			vars = append(vars, algebra.Variable(i))
		}
	}
	return vars
}

// TotalDegree returns the total degree of p, or -1 for the zero polynomial.
func (p *Poly) TotalDegree() int {
	if p.IsZero() {
		return -1
	}
	best := 0
	for _, t := range p.terms {
		d := 0
		for _, e := range t.exp {
			d += e
		}
		if d > best {
			best = d
		}
	}
	return best
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	merged := make([]term, 0, len(p.terms)+len(q.terms))
	merged = append(merged, p.terms...)
	merged = append(merged, q.terms...)
	return &Poly{ring: p.ring, terms: normalize(merged)}
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	out := make([]term, len(p.terms))
	for i, t := range p.terms {
		var c fr.Element
		c.Neg(&t.coeff)
		out[i] = term{coeff: c, exp: t.exp}
	}
	return &Poly{ring: p.ring, terms: out}
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.Add(q.Neg())
}

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return p.ring.Zero()
	}
	out := make([]term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			var c fr.Element
			c.Mul(&a.coeff, &b.coeff)
			exp := make([]int, len(a.exp))
			for i := range exp {
				exp[i] = a.exp[i] + b.exp[i]
			}
			out = append(out, term{coeff: c, exp: exp})
		}
	}
	return &Poly{ring: p.ring, terms: normalize(out)}
}

// Pow returns p^k for k >= 0.
func (p *Poly) Pow(k int) *Poly {
	if k < 0 {
		panic("negative exponent")
	}
	out := p.ring.One()
	base := p
	for k > 0 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}
	return out
}

// Equal reports coefficient-wise equality.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if !p.terms[i].coeff.Equal(&q.terms[i].coeff) {
			return false
		}
		for j := range p.terms[i].exp {
			if p.terms[i].exp[j] != q.terms[i].exp[j] {
				return false
			}
		}
	}
	return true
}

// mulTerm returns p scaled by the term (c, exp).
func (p *Poly) mulTerm(c fr.Element, exp []int) *Poly {
	out := make([]term, len(p.terms))
	for i, t := range p.terms {
		var nc fr.Element
		nc.Mul(&t.coeff, &c)
		ne := make([]int, len(t.exp))
		for j := range ne {
			ne[j] = t.exp[j] + exp[j]
		}
		out[i] = term{coeff: nc, exp: ne}
	}
	return &Poly{ring: p.ring, terms: out}
}

// monic returns p scaled so its leading coefficient under ord is 1.
func (p *Poly) monic(ord order) *Poly {
	if p.IsZero() {
		return p
	}
	lt := p.leadingTerm(ord)
	var inv fr.Element
	inv.Inverse(&lt.coeff)
	out := make([]term, len(p.terms))
	for i, t := range p.terms {
		var c fr.Element
		c.Mul(&t.coeff, &inv)
		out[i] = term{coeff: c, exp: t.exp}
	}
	return &Poly{ring: p.ring, terms: out}
}

// leadingTerm returns the maximal term of p under ord. p must be nonzero.
func (p *Poly) leadingTerm(ord order) term {
	best := p.terms[0]
	for _, t := range p.terms[1:] {
		if ord.compare(t.exp, best.exp) > 0 {
			best = t
		}
	}
	return best
}

// normalize sorts terms into canonical order, merges duplicates and drops
// zero coefficients.
func normalize(terms []term) []term {
	if len(terms) == 0 {
		return nil
	}
	sort.Slice(terms, func(i, j int) bool {
		return canonical.compare(terms[i].exp, terms[j].exp) > 0
	})
	out := terms[:0]
	for _, t := range terms {
		if len(out) > 0 && expEqual(out[len(out)-1].exp, t.exp) {
			last := &out[len(out)-1]
			last.coeff.Add(&last.coeff, &t.coeff)
			continue
		}
		out = append(out, t)
	}
	final := out[:0]
	for _, t := range out {
		if !t.coeff.IsZero() {
			final = append(final, t)
		}
	}
	if len(final) == 0 {
		return nil
	}
	return append([]term(nil), final...)
}

func expEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func expDivides(a, b []int) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

func expDiv(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func expLCM(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		if a[i] >= b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

func expTotal(a []int) int {
	d := 0
	for _, e := range a {
		d += e
	}
	return d
}

var (
	halfModulusOnce sync.Once
	halfModulus     big.Int
)

// signedString renders a coefficient as a signed integer, picking the
// representative of smallest absolute value.
func signedString(c *fr.Element) string {
	halfModulusOnce.Do(func() {
		halfModulus.Rsh(fr.Modulus(), 1)
	})
	var b big.Int
	c.BigInt(&b)
	if b.Cmp(&halfModulus) > 0 {
		b.Sub(&b, fr.Modulus())
	}
	return b.String()
}

func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		cs := signedString(&t.coeff)
		neg := strings.HasPrefix(cs, "-")
		abs := strings.TrimPrefix(cs, "-")
		switch {
		case i == 0 && neg:
			sb.WriteByte('-')
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		mono := p.ring.monoString(t.exp)
		switch {
		case mono == "":
			sb.WriteString(abs)
		case abs == "1":
			sb.WriteString(mono)
		default:
			sb.WriteString(abs)
			sb.WriteByte('*')
			sb.WriteString(mono)
		}
	}
	return sb.String()
}

func (r *Ring) monoString(exp []int) string {
	var parts []string
	for i, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, r.names[i])
		case e > 1:
			parts = append(parts, r.names[i]+"^"+strconv.Itoa(e))
		}
	}
	return strings.Join(parts, "*")
}
