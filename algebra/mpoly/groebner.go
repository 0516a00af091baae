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

package mpoly

import (
	"github.com/consensys/algmat/logger"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// normalForm fully reduces p modulo basis under ord: every term of the result
// is divisible by no leading monomial of the basis.
func normalForm(p *Poly, basis []*Poly, ord order) *Poly {
	remainder := p.ring.Zero()
	work := p
	for !work.IsZero() {
		lt := work.leadingTerm(ord)
		reduced := false
		for _, g := range basis {
			glt := g.leadingTerm(ord)
			if !expDivides(glt.exp, lt.exp) {
				continue
			}
			// work -= (lt / LT(g)) * g
			var q fr.Element
			q.Inverse(&glt.coeff)
			q.Mul(&q, &lt.coeff)
			work = work.Sub(g.mulTerm(q, expDiv(lt.exp, glt.exp)))
			reduced = true
			break
		}
		if !reduced {
			// move the leading term into the remainder
			mono := &Poly{ring: p.ring, terms: []term{lt}}
			remainder = remainder.Add(mono)
			work = work.Sub(mono)
		}
	}
	return remainder
}

// sPoly returns the S-polynomial of f and g under ord.
func sPoly(f, g *Poly, ord order) *Poly {
	fl := f.leadingTerm(ord)
	gl := g.leadingTerm(ord)
	l := expLCM(fl.exp, gl.exp)
	var cf, cg fr.Element
	cf.Inverse(&fl.coeff)
	cg.Inverse(&gl.coeff)
	a := f.mulTerm(cf, expDiv(l, fl.exp))
	b := g.mulTerm(cg, expDiv(l, gl.exp))
	return a.Sub(b)
}

type pair struct {
	i, j   int
	lcm    []int
	degree int
}

// buchberger computes the reduced Gröbner basis of the ideal generated by
// gens under ord. The result is monic, pairwise tail-reduced and sorted by
// ascending leading monomial, so it is a canonical generating set.
func buchberger(gens []*Poly, ord order) []*Poly {
	log := logger.Logger()

	var basis []*Poly
	for _, g := range gens {
		if !g.IsZero() {
			basis = append(basis, g.monic(ord))
		}
	}
	if len(basis) == 0 {
		return nil
	}

	var pairs []pair
	addPairs := func(j int) {
		jl := basis[j].leadingTerm(ord)
		for i := 0; i < j; i++ {
			il := basis[i].leadingTerm(ord)
			l := expLCM(il.exp, jl.exp)
			// coprime leading monomials reduce to zero (Buchberger's first criterion)
			if expTotal(l) == expTotal(il.exp)+expTotal(jl.exp) {
				continue
			}
			pairs = append(pairs, pair{i: i, j: j, lcm: l, degree: expTotal(l)})
		}
	}
	for j := range basis {
		addPairs(j)
	}

	processed := 0
	for len(pairs) > 0 {
		// normal selection: smallest lcm degree first
		best := 0
		for k := 1; k < len(pairs); k++ {
			if pairs[k].degree < pairs[best].degree {
				best = k
			}
		}
		pr := pairs[best]
		pairs[best] = pairs[len(pairs)-1]
		pairs = pairs[:len(pairs)-1]
		processed++

		r := normalForm(sPoly(basis[pr.i], basis[pr.j], ord), basis, ord)
		if r.IsZero() {
			continue
		}
		basis = append(basis, r.monic(ord))
		addPairs(len(basis) - 1)
	}

	reduced := interreduce(basis, ord)
	log.Debug().Int("generators", len(gens)).Int("pairs", processed).Int("basis", len(reduced)).Msg("gröbner basis computed")
	return reduced
}

// interreduce turns a Gröbner basis into the reduced basis: minimal leading
// monomials, fully reduced tails, monic, sorted by ascending leading
// monomial.
func interreduce(basis []*Poly, ord order) []*Poly {
	// minimalize: drop elements whose leading monomial is divisible by another's
	var minimal []*Poly
	for i, g := range basis {
		gl := g.leadingTerm(ord)
		redundant := false
		for j, h := range basis {
			if i == j {
				continue
			}
			hl := h.leadingTerm(ord)
			if expDivides(hl.exp, gl.exp) && (!expEqual(hl.exp, gl.exp) || j < i) {
				redundant = true
				break
			}
		}
		if !redundant {
			minimal = append(minimal, g)
		}
	}

	// tail-reduce each element against the others
	out := make([]*Poly, len(minimal))
	for i, g := range minimal {
		others := make([]*Poly, 0, len(minimal)-1)
		others = append(others, minimal[:i]...)
		others = append(others, minimal[i+1:]...)
		r := normalForm(g, others, ord)
		out[i] = r.monic(ord)
	}

	// deterministic ordering
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a := out[j-1].leadingTerm(ord)
			b := out[j].leadingTerm(ord)
			if ord.compare(a.exp, b.exp) <= 0 {
				break
			}
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
