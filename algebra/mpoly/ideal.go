package mpoly

import (
	"strings"
	"sync"

	"github.com/consensys/algmat/algebra"
)

// Ideal is an ideal of a Ring, given by a generating set. The reduced
// Gröbner basis (grevlex) is computed on first use and cached; an Ideal may
// be shared between goroutines.
type Ideal struct {
	ring *Ring
	gens []*Poly

	gbOnce sync.Once
	gb     []*Poly
}

func newIdeal(r *Ring, gens []*Poly) *Ideal {
	kept := make([]*Poly, 0, len(gens))
	for _, g := range gens {
		if g != nil && !g.IsZero() {
			kept = append(kept, g)
		}
	}
	return &Ideal{ring: r, gens: kept}
}

// Generators returns the reduced Gröbner basis of the ideal, a canonical
// generating set: a principal ideal reports exactly one generator no matter
// how redundantly it was presented.
func (I *Ideal) Generators() []algebra.Polynomial {
	gb := I.groebner()
	out := make([]algebra.Polynomial, len(gb))
	for i, g := range gb {
		out[i] = g
	}
	return out
}

// Polys returns the concrete generators.
func (I *Ideal) Polys() []*Poly {
	return append([]*Poly(nil), I.gens...)
}

// groebner returns the reduced Gröbner basis under grevlex.
func (I *Ideal) groebner() []*Poly {
	I.gbOnce.Do(func() {
		I.gb = buchberger(I.gens, canonical)
	})
	return I.gb
}

// containsUnit reports whether the ideal is the whole ring.
func (I *Ideal) containsUnit() bool {
	gb := I.groebner()
	return len(gb) == 1 && expTotal(gb[0].terms[0].exp) == 0 && len(gb[0].terms) == 1
}

func (I *Ideal) String() string {
	if len(I.gens) == 0 {
		return "ideal(0)"
	}
	parts := make([]string, len(I.gens))
	for i, g := range I.gens {
		parts[i] = g.String()
	}
	return "ideal(" + strings.Join(parts, ", ") + ")"
}
