package mpoly

import (
	"github.com/consensys/algmat/algebra"
)

// IsPrime reports whether the ideal is prime.
//
// This is a partial decision: a complete one needs primary decomposition,
// which this engine does not implement. IsPrime certifies non-primality on
// concrete witnesses — the unit ideal, or a reduced-basis element with a
// monomial factor neither of whose cofactors lies in the ideal (catching
// ideals such as ideal(x*y) or ideal(x^2)) — and reports prime otherwise.
// Plug a CAS-backed algebra.Engine for certified primality.
func (e *Engine) IsPrime(i algebra.Ideal) (bool, error) {
	I, err := e.ideal(i)
	if err != nil {
		return false, err
	}
	gb := I.groebner()
	if len(gb) == 0 {
		// the zero ideal of a polynomial ring over a field is prime
		return true, nil
	}
	if I.containsUnit() {
		return false, nil
	}

	for _, g := range gb {
		content := monomialContent(g)
		for v, mult := range content {
			if mult == 0 {
				continue
			}
			x := e.ring.X(algebra.Variable(v))
			if normalForm(x, gb, canonical).IsZero() {
				continue
			}
			cofactor := divideByVariable(g, v)
			if !normalForm(cofactor, gb, canonical).IsZero() {
				// g = x_v * cofactor with both factors outside the ideal
				return false, nil
			}
		}
	}
	return true, nil
}

// monomialContent returns, per variable, the largest power dividing every
// term of g.
func monomialContent(g *Poly) []int {
	content := append([]int(nil), g.terms[0].exp...)
	for _, t := range g.terms[1:] {
		for i, e := range t.exp {
			if e < content[i] {
				content[i] = e
			}
		}
	}
	return content
}

// divideByVariable returns g / x_v; every term of g must be divisible.
func divideByVariable(g *Poly, v int) *Poly {
	out := make([]term, len(g.terms))
	for i, t := range g.terms {
		exp := append([]int(nil), t.exp...)
		exp[v]--
		out[i] = term{coeff: t.coeff, exp: exp}
	}
	return &Poly{ring: g.ring, terms: out}
}
