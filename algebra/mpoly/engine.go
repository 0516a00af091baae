package mpoly

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/algmat/algebra"
	"github.com/consensys/algmat/logger"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Engine implements algebra.Engine over a fixed Ring.
type Engine struct {
	ring *Ring
}

// NewEngine binds an engine to its ambient ring.
func NewEngine(r *Ring) *Engine {
	return &Engine{ring: r}
}

func (e *Engine) Ring() algebra.Ring { return e.ring }

// NewIdeal returns the ideal generated by the given polynomials. All
// polynomials must come from this engine's ring.
func (e *Engine) NewIdeal(gens ...algebra.Polynomial) algebra.Ideal {
	ps := make([]*Poly, len(gens))
	for i, g := range gens {
		ps[i] = e.poly(g)
	}
	return newIdeal(e.ring, ps)
}

// Sum returns the ideal a + b.
func (e *Engine) Sum(a, b algebra.Ideal) algebra.Ideal {
	ia, err := e.ideal(a)
	if err != nil {
		panic(err)
	}
	ib, err := e.ideal(b)
	if err != nil {
		panic(err)
	}
	return newIdeal(e.ring, append(ia.Polys(), ib.Polys()...))
}

// Eliminate returns the elimination ideal of i with the given variables
// removed, i.e. i ∩ k[remaining variables]. It computes a reduced Gröbner
// basis under a block order placing the removed variables first and keeps
// the elements free of them; those elements are the reduced basis of the
// elimination ideal, so the result's Generators are canonical.
func (e *Engine) Eliminate(i algebra.Ideal, remove []algebra.Variable) (algebra.Ideal, error) {
	I, err := e.ideal(i)
	if err != nil {
		return nil, err
	}
	for _, v := range remove {
		if err := e.ring.checkVar(v); err != nil {
			return nil, err
		}
	}
	if len(remove) == 0 {
		return I, nil
	}

	log := logger.Logger()
	log.Debug().Int("remove", len(remove)).Msg("computing elimination ideal")

	ord := newBlock(e.ring.NumVars(), remove)
	gb := buchberger(I.Polys(), ord)

	removed := make([]bool, e.ring.NumVars())
	for _, v := range remove {
		removed[v] = true
	}
	var kept []*Poly
	for _, g := range gb {
		free := true
		for _, v := range g.Support() {
			if removed[v] {
				free = false
				break
			}
		}
		if free {
			kept = append(kept, g)
		}
	}
	return newIdeal(e.ring, kept), nil
}

// RandomElement draws a uniform random integer in [lo, hi] and embeds it in
// the coefficient field.
func (e *Engine) RandomElement(lo, hi *big.Int) (algebra.Element, error) {
	if lo.Cmp(hi) > 0 {
		return nil, errors.New("empty sampling range")
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, big.NewInt(1))
	r, err := crand.Int(crand.Reader, width)
	if err != nil {
		return nil, fmt.Errorf("sampling field element: %w", err)
	}
	r.Add(r, lo)
	el := new(Element)
	el.v.SetBigInt(r)
	return el, nil
}

// Linear returns the polynomial x_v - c.
func (e *Engine) Linear(v algebra.Variable, c algebra.Element) algebra.Polynomial {
	el, ok := c.(*Element)
	if !ok {
		panic(fmt.Sprintf("foreign field element %T", c))
	}
	if err := e.ring.checkVar(v); err != nil {
		panic(err)
	}
	var neg fr.Element
	neg.Neg(&el.v)
	return e.ring.X(v).Add(e.ring.constant(neg))
}

// Element is an element of the BN254 scalar field.
type Element struct {
	v fr.Element
}

func (el *Element) String() string {
	return signedString(&el.v)
}

// SetBigInt sets the element from an integer, reduced into the field.
func (el *Element) SetBigInt(b *big.Int) *Element {
	el.v.SetBigInt(b)
	return el
}

func (e *Engine) poly(p algebra.Polynomial) *Poly {
	mp, ok := p.(*Poly)
	if !ok {
		panic(fmt.Sprintf("foreign polynomial %T", p))
	}
	if mp.ring != e.ring {
		panic("polynomial from a different ring")
	}
	return mp
}

func (e *Engine) ideal(i algebra.Ideal) (*Ideal, error) {
	mi, ok := i.(*Ideal)
	if !ok {
		return nil, fmt.Errorf("foreign ideal %T", i)
	}
	if mi.ring != e.ring {
		return nil, errors.New("ideal from a different ring")
	}
	return mi, nil
}
