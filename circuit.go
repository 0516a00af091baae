package algmat

import (
	"fmt"
	"strings"

	"github.com/consensys/algmat/algebra"
	"github.com/consensys/algmat/debug"
	"github.com/consensys/algmat/internal/sets"
)

// FundamentalCircuit returns the unique circuit contained in B ∪ {x}, where B
// is a basis and x a ground-set element outside B. Subsets are scanned in
// increasing cardinality (and lexicographically within a cardinality), so the
// exponentially cheaper small subsets are exhausted first; the first circuit
// found is the answer, since the fundamental circuit is unique.
//
// Returns ErrElementInBasis when x ∈ B, and ErrNoCircuitFound when the scan
// exhausts all subsets — which cannot happen when B is genuinely a basis and
// x ∉ B, and therefore indicates a malformed argument or an engine
// inconsistency.
func (m *Matroid) FundamentalCircuit(B []algebra.Variable, x algebra.Variable) ([]algebra.Variable, error) {
	b, err := m.subset(B)
	if err != nil {
		return nil, err
	}
	if int(x) < 0 || uint(x) >= m.n {
		return nil, ErrInvalidSubset
	}
	if b.Contains(uint(x)) {
		return nil, ErrElementInBasis
	}

	members := b.With(uint(x)).Members()
	var (
		found   []algebra.Variable
		scanErr error
	)
	for k := 1; k <= len(members) && found == nil && scanErr == nil; k++ {
		sets.Combinations(members, k, func(choice []uint) bool {
			s, _ := sets.FromIndices(m.n, choice)
			class, _, err := m.classify(s)
			if err != nil {
				scanErr = err
				return false
			}
			if class != circuitOnSubset {
				return true
			}
			found = make([]algebra.Variable, len(choice))
			for i, v := range choice {
				found[i] = algebra.Variable(v)
			}
			return false
		})
	}
	if scanErr != nil {
		return nil, scanErr
	}
	if found == nil {
		return nil, ErrNoCircuitFound
	}
	return found, nil
}

// CircuitPolynomial returns the single generator of the projection ideal of
// the circuit C, unique up to a nonzero scalar; the engine's normalized
// generator is returned as-is.
//
// C must be a circuit: this is a programming-error precondition and its
// violation panics rather than returning an error.
func (m *Matroid) CircuitPolynomial(C []algebra.Variable) (algebra.Polynomial, error) {
	s, err := m.subset(C)
	if err != nil {
		return nil, err
	}
	class, f, err := m.classify(s)
	if err != nil {
		return nil, err
	}
	if class != circuitOnSubset {
		panic(fmt.Sprintf("circuit polynomial: {%s} is not a circuit\n%s", m.varNames(C), debug.Stack()))
	}
	return f, nil
}

// FundamentalCircuitPolynomial returns the circuit polynomial of the
// fundamental circuit of x with respect to the basis B.
func (m *Matroid) FundamentalCircuitPolynomial(B []algebra.Variable, x algebra.Variable) (algebra.Polynomial, error) {
	c, err := m.FundamentalCircuit(B, x)
	if err != nil {
		return nil, err
	}
	return m.CircuitPolynomial(c)
}

func (m *Matroid) varNames(S []algebra.Variable) string {
	names := make([]string, len(S))
	for i, v := range S {
		names[i] = m.ring.Name(v)
	}
	return strings.Join(names, ",")
}
