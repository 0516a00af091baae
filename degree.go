package algmat

import (
	"fmt"
	"math/big"

	"github.com/consensys/algmat/algebra"
	"github.com/consensys/algmat/debug"
	"github.com/consensys/algmat/logger"
)

// The generic point for BaseDegree is drawn coordinate-wise from
// [1, 2^100]; the range is large enough that the probability of hitting the
// measure-zero locus of bad choices is negligible.
var (
	degreeLo = big.NewInt(1)
	degreeHi = new(big.Int).Lsh(big.NewInt(1), 100)
)

// BaseDegree returns the base degree of the basis B: the number of points in
// a generic fiber over the B-coordinates, computed by pinning every variable
// of B to an independent random field element and taking the degree of the
// resulting zero-dimensional ideal.
//
// This is a Monte-Carlo computation, not a certified one: an unlucky draw
// (probability negligible but nonzero) can return a wrong value, and repeated
// calls draw fresh points. Callers wanting a safeguard can call it twice and
// compare.
//
// B must be a basis: this is a programming-error precondition and its
// violation panics rather than returning an error.
func (m *Matroid) BaseDegree(B []algebra.Variable) (int, error) {
	s, err := m.subset(B)
	if err != nil {
		return 0, err
	}
	ok, err := m.isBasis(s)
	if err != nil {
		return 0, err
	}
	if !ok {
		panic(fmt.Sprintf("base degree: {%s} is not a basis\n%s", m.varNames(B), debug.Stack()))
	}

	pins := make([]algebra.Polynomial, 0, s.Count())
	for _, v := range s.Members() {
		r, err := m.eng.RandomElement(degreeLo, degreeHi)
		if err != nil {
			return 0, err
		}
		pins = append(pins, m.eng.Linear(algebra.Variable(v), r))
	}

	log := logger.Logger()
	log.Debug().Int("pinned", len(pins)).Msg("computing base degree at a generic point")
	fiber := m.eng.Sum(m.prime, m.eng.NewIdeal(pins...))
	return m.eng.Degree(fiber)
}
