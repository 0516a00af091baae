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

// Package algebra defines the commutative-algebra contract the matroid layer
// builds on.
//
// The matroid layer never performs ring arithmetic itself; everything it needs
// (elimination ideals, codimension, zero-dimensional degree, primality) is
// obtained through an Engine. An Engine is bound to a single ambient
// polynomial ring, fixed at construction; this keeps ring ownership explicit
// instead of resolving it dynamically through ideal handles.
//
// The module ships one Engine implementation, algebra/mpoly, backed by
// Gröbner bases over the BN254 scalar field. Any computer-algebra system can
// be substituted by satisfying these interfaces.
package algebra

import "math/big"

// Variable identifies a ring variable by its index in the ambient ring's
// variable list. The matroid ground set is the full range [0, NumVars).
type Variable int

// Element is an opaque element of the coefficient field.
type Element interface {
	String() string
}

// Polynomial is an element of the ambient polynomial ring.
type Polynomial interface {
	// Support returns the variables actually occurring in the polynomial,
	// in ascending order.
	Support() []Variable
	IsZero() bool
	String() string
}

// Ideal is an ideal of the ambient ring.
//
// Generators returns a canonical generating set: engines backed by Gröbner
// bases return the reduced basis of the ideal, so a principal ideal always
// reports exactly one generator.
type Ideal interface {
	Generators() []Polynomial
	String() string
}

// Ring describes the ambient polynomial ring.
type Ring interface {
	NumVars() int
	// Name returns the display name of a variable.
	Name(v Variable) string
	// Variables returns all ring variables in index order.
	Variables() []Variable
}

// Engine performs the commutative-algebra computations the matroid layer
// consumes. Implementations must be safe for concurrent use: the matroid
// cache deduplicates identical queries but distinct subsets may be computed
// from different goroutines.
type Engine interface {
	// Ring returns the ambient ring the engine is bound to.
	Ring() Ring

	// IsPrime reports whether the ideal is prime.
	IsPrime(i Ideal) (bool, error)

	// Eliminate returns the elimination ideal obtained by removing the given
	// variables, i.e. the intersection of i with the subring on the remaining
	// variables. The returned ideal's Generators form its reduced Gröbner
	// basis.
	Eliminate(i Ideal, remove []Variable) (Ideal, error)

	// Codimension returns the codimension (height) of the ideal. The answer
	// is the same whether the ideal is viewed in the ambient ring or in the
	// subring spanned by the support of its generators.
	Codimension(i Ideal) (int, error)

	// Degree returns the degree of a zero-dimensional ideal: the dimension of
	// the quotient as a vector space over the coefficient field. It is an
	// error to call it on an ideal of positive dimension.
	Degree(i Ideal) (int, error)

	// RandomElement draws a uniform random integer in [lo, hi] and returns it
	// as an element of the coefficient field.
	RandomElement(lo, hi *big.Int) (Element, error)

	// Linear returns the polynomial x_v - c.
	Linear(v Variable, c Element) Polynomial

	// NewIdeal returns the ideal generated by the given polynomials.
	NewIdeal(gens ...Polynomial) Ideal

	// Sum returns the ideal a + b.
	Sum(a, b Ideal) Ideal
}
