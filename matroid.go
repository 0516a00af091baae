// Copyright 2025 Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algmat

import (
	"github.com/consensys/algmat/algebra"
	"github.com/consensys/algmat/internal/sets"
	"github.com/consensys/algmat/logger"
)

// Matroid is the algebraic matroid of a prime ideal P: the ground set is the
// set of ring variables and a subset S is independent when the projection of
// the variety of P onto the S-coordinates is full-dimensional, i.e. when
// rank(S) = |S| with rank(S) = |S| - codim(P ∩ k[S]).
//
// A Matroid is immutable apart from its internal projection cache and is safe
// for concurrent use.
type Matroid struct {
	eng    algebra.Engine
	ring   algebra.Ring
	n      uint
	ground sets.Set
	prime  algebra.Ideal
	cache  *projectionCache
}

// New constructs the algebraic matroid of the prime ideal p. It returns
// ErrNotPrime when the engine rejects p's primality; engine failures
// propagate unchanged.
func New(eng algebra.Engine, p algebra.Ideal) (*Matroid, error) {
	ok, err := eng.IsPrime(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotPrime
	}

	n := uint(eng.Ring().NumVars())
	m := &Matroid{
		eng:    eng,
		ring:   eng.Ring(),
		n:      n,
		ground: sets.Full(n),
		prime:  p,
		cache:  newProjectionCache(),
	}
	m.cache.seed(m.ground.Key(), p)
	return m, nil
}

// GroundSet returns the ground set: all ring variables, in ring order.
func (m *Matroid) GroundSet() []algebra.Variable {
	return m.ring.Variables()
}

// PrimeIdeal returns the defining prime ideal.
func (m *Matroid) PrimeIdeal() algebra.Ideal { return m.prime }

// Ring returns the ambient polynomial ring.
func (m *Matroid) Ring() algebra.Ring { return m.ring }

// Engine returns the algebra engine the matroid queries.
func (m *Matroid) Engine() algebra.Engine { return m.eng }

// subset validates S ⊆ ground set and converts it to a set. Duplicates are
// harmless (subsets are sets).
func (m *Matroid) subset(S []algebra.Variable) (sets.Set, error) {
	idx := make([]uint, len(S))
	for i, v := range S {
		if int(v) < 0 {
			return sets.Set{}, ErrInvalidSubset
		}
		idx[i] = uint(v)
	}
	s, ok := sets.FromIndices(m.n, idx)
	if !ok {
		return sets.Set{}, ErrInvalidSubset
	}
	return s, nil
}

// CoordinateIdeal returns the projection ideal of S: the elimination ideal of
// the defining ideal with all variables outside S removed. Results are cached
// per subset, so repeated queries never re-invoke the engine.
func (m *Matroid) CoordinateIdeal(S []algebra.Variable) (algebra.Ideal, error) {
	s, err := m.subset(S)
	if err != nil {
		return nil, err
	}
	return m.coordinateIdeal(s)
}

func (m *Matroid) coordinateIdeal(s sets.Set) (algebra.Ideal, error) {
	key := s.Key()
	return m.cache.ideal(key, func() (algebra.Ideal, error) {
		log := logger.Logger()
		log.Debug().Str("subset", key).Msg("projecting onto subset")
		remove := s.Complement().Members()
		drop := make([]algebra.Variable, len(remove))
		for i, v := range remove {
			drop[i] = algebra.Variable(v)
		}
		return m.eng.Eliminate(m.prime, drop)
	})
}

// Rank returns |S| - codim(CoordinateIdeal(S)).
func (m *Matroid) Rank(S []algebra.Variable) (int, error) {
	s, err := m.subset(S)
	if err != nil {
		return 0, err
	}
	return m.rank(s)
}

// TotalRank returns the rank of the full ground set.
func (m *Matroid) TotalRank() (int, error) {
	return m.rank(m.ground)
}

func (m *Matroid) rank(s sets.Set) (int, error) {
	key := s.Key()
	if r, ok := m.cache.rank(key); ok {
		return r, nil
	}
	i, err := m.coordinateIdeal(s)
	if err != nil {
		return 0, err
	}
	codim, err := m.eng.Codimension(i)
	if err != nil {
		return 0, err
	}
	r := s.Count() - codim
	m.cache.setRank(key, r)
	return r, nil
}

// IsIndependent reports whether rank(S) = |S|.
func (m *Matroid) IsIndependent(S []algebra.Variable) (bool, error) {
	s, err := m.subset(S)
	if err != nil {
		return false, err
	}
	r, err := m.rank(s)
	if err != nil {
		return false, err
	}
	return r == s.Count(), nil
}

// IsBasis reports whether S is a maximum-size independent set.
func (m *Matroid) IsBasis(S []algebra.Variable) (bool, error) {
	s, err := m.subset(S)
	if err != nil {
		return false, err
	}
	return m.isBasis(s)
}

func (m *Matroid) isBasis(s sets.Set) (bool, error) {
	total, err := m.rank(m.ground)
	if err != nil {
		return false, err
	}
	if s.Count() != total {
		return false, nil
	}
	r, err := m.rank(s)
	if err != nil {
		return false, err
	}
	return r == s.Count(), nil
}

// IsCircuit reports whether S is a circuit: its projection ideal is principal
// and the generator's support is exactly S. A principal generator missing
// some variable of S signals a dependency on a proper subset and is not a
// circuit on S.
func (m *Matroid) IsCircuit(S []algebra.Variable) (bool, error) {
	s, err := m.subset(S)
	if err != nil {
		return false, err
	}
	class, _, err := m.classify(s)
	if err != nil {
		return false, err
	}
	return class == circuitOnSubset, nil
}

// circuitClass tags the outcome of the circuit test, so that callers needing
// the generator (CircuitPolynomial) do not re-derive it.
type circuitClass int

const (
	notPrincipal circuitClass = iota
	supportMismatch
	circuitOnSubset
)

func (m *Matroid) classify(s sets.Set) (circuitClass, algebra.Polynomial, error) {
	i, err := m.coordinateIdeal(s)
	if err != nil {
		return notPrincipal, nil, err
	}
	gens := i.Generators()
	if len(gens) != 1 {
		return notPrincipal, nil, nil
	}
	f := gens[0]
	support := f.Support()
	if len(support) != s.Count() {
		return supportMismatch, f, nil
	}
	for _, v := range support {
		if !s.Contains(uint(v)) {
			return supportMismatch, f, nil
		}
	}
	return circuitOnSubset, f, nil
}
