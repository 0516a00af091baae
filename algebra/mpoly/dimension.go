package mpoly

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/consensys/algmat/algebra"
)

var (
	// ErrNotZeroDimensional is returned by Degree on ideals of positive
	// dimension.
	ErrNotZeroDimensional = errors.New("ideal is not zero-dimensional")

	errTooManyVariables = errors.New("too many variables for combinatorial dimension")
)

// maxStandardMonomials bounds the quotient dimension Degree is willing to
// enumerate.
const maxStandardMonomials = 1 << 20

// Codimension returns the codimension of the ideal, computed as NumVars
// minus the combinatorial dimension of the leading-term ideal: the dimension
// is the size of the largest variable subset supporting no leading monomial.
// The unit ideal (empty variety) gets codimension NumVars.
//
// The subset scan is exponential in the number of variables; rings with more
// than 30 variables are rejected with an error rather than searched.
func (e *Engine) Codimension(i algebra.Ideal) (int, error) {
	I, err := e.ideal(i)
	if err != nil {
		return 0, err
	}
	n := e.ring.NumVars()
	gb := I.groebner()
	if len(gb) == 0 {
		return 0, nil
	}
	if I.containsUnit() {
		return n, nil
	}
	if n > 30 {
		return 0, fmt.Errorf("%w: %d", errTooManyVariables, n)
	}

	supports := make([]uint32, len(gb))
	for k, g := range gb {
		lt := g.leadingTerm(canonical)
		var m uint32
		for v, exp := range lt.exp {
			if exp > 0 {
				m |= 1 << v
			}
		}
		supports[k] = m
	}

	dim := 0
	for s := uint32(0); s < 1<<n; s++ {
		if bits.OnesCount32(s) <= dim {
			continue
		}
		independent := true
		for _, m := range supports {
			if m&^s == 0 {
				independent = false
				break
			}
		}
		if independent {
			dim = bits.OnesCount32(s)
		}
	}
	return n - dim, nil
}

// Degree returns the degree of a zero-dimensional ideal: the number of
// standard monomials of its leading-term ideal, which is the vector-space
// dimension of the quotient ring.
func (e *Engine) Degree(i algebra.Ideal) (int, error) {
	I, err := e.ideal(i)
	if err != nil {
		return 0, err
	}
	gb := I.groebner()
	if I.containsUnit() {
		return 0, nil
	}
	n := e.ring.NumVars()

	lms := make([][]int, len(gb))
	for k, g := range gb {
		lms[k] = g.leadingTerm(canonical).exp
	}

	// a reduced basis of a zero-dimensional ideal has, for every variable,
	// a leading monomial that is a pure power of it
	bounds := make([]int, n)
	for v := 0; v < n; v++ {
		bounds[v] = -1
		for _, lm := range lms {
			if lm[v] == 0 || expTotal(lm) != lm[v] {
				continue
			}
			if bounds[v] == -1 || lm[v] < bounds[v] {
				bounds[v] = lm[v]
			}
		}
		if bounds[v] == -1 {
			return 0, ErrNotZeroDimensional
		}
	}

	count := 0
	exp := make([]int, n)
	var walk func(v int) error
	walk = func(v int) error {
		if v == n {
			for _, lm := range lms {
				if expDivides(lm, exp) {
					return nil
				}
			}
			count++
			if count > maxStandardMonomials {
				return fmt.Errorf("quotient dimension exceeds %d", maxStandardMonomials)
			}
			return nil
		}
		for k := 0; k < bounds[v]; k++ {
			exp[v] = k
			if err := walk(v + 1); err != nil {
				return err
			}
		}
		exp[v] = 0
		return nil
	}
	if err := walk(0); err != nil {
		return 0, err
	}
	return count, nil
}
