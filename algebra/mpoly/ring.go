// Package mpoly implements the algebra.Engine contract with multivariate
// polynomials over the BN254 scalar field.
//
// Polynomials are dense-exponent term lists; ideals carry a lazily computed
// reduced Gröbner basis (graded reverse lexicographic order). Elimination
// ideals are computed with a block order, codimension and zero-dimensional
// degree combinatorially from the leading-term ideal. The combinatorial
// dimension search is exponential in the number of variables and is capped at
// 30-variable rings.
//
// The coefficient field is a ~2^254 prime field, so "generic" random choices
// drawn from [1, 2^100] behave like generic rational points for all practical
// purposes while keeping arithmetic exact and fast.
package mpoly

import (
	"errors"
	"fmt"

	"github.com/consensys/algmat/algebra"
)

// Ring is a polynomial ring over the BN254 scalar field with a fixed,
// ordered list of variables. Immutable after construction.
type Ring struct {
	names []string
	index map[string]algebra.Variable
}

// NewRing builds a ring with the given variable names, in order.
func NewRing(names ...string) (*Ring, error) {
	if len(names) == 0 {
		return nil, errors.New("ring needs at least one variable")
	}
	r := &Ring{
		names: append([]string(nil), names...),
		index: make(map[string]algebra.Variable, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, errors.New("empty variable name")
		}
		if _, ok := r.index[name]; ok {
			return nil, fmt.Errorf("duplicate variable name %q", name)
		}
		r.index[name] = algebra.Variable(i)
	}
	return r, nil
}

func (r *Ring) NumVars() int { return len(r.names) }

func (r *Ring) Name(v algebra.Variable) string {
	return r.names[v]
}

func (r *Ring) Variables() []algebra.Variable {
	vars := make([]algebra.Variable, len(r.names))
	for i := range vars {
		vars[i] = algebra.Variable(i)
	}
	return vars
}

// Var looks a variable up by name.
func (r *Ring) Var(name string) (algebra.Variable, bool) {
	v, ok := r.index[name]
	return v, ok
}

func (r *Ring) checkVar(v algebra.Variable) error {
	if int(v) < 0 || int(v) >= len(r.names) {
		return fmt.Errorf("variable %d outside ring with %d variables", v, len(r.names))
	}
	return nil
}
