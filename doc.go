// Package algmat computes with algebraic matroids.
//
// An algebraic matroid is the combinatorial structure of a prime ideal P in a
// polynomial ring: the ground set is the set of ring variables, and a subset
// S is independent exactly when the coordinate projection of the variety of P
// onto S is dominant. algmat provides construction from a prime ideal, cached
// per-subset projection (elimination) ideals, rank / independence / basis /
// circuit queries, fundamental-circuit search, circuit polynomials and the
// randomized base-degree invariant.
//
// The commutative-algebra primitives (Gröbner bases, elimination,
// codimension, degree, primality) live behind the algebra.Engine interface;
// the algebra/mpoly package is the bundled implementation, working over the
// BN254 scalar field.
package algmat
