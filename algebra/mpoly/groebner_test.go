package mpoly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/algmat/algebra"
)

// requireReducedBasis checks the defining properties of a reduced Gröbner
// basis: monic elements, pairwise non-divisible leading monomials, fully
// reduced tails, every input generator and every S-polynomial reducing to
// zero.
func requireReducedBasis(t *testing.T, gens, gb []*Poly, ord order) {
	t.Helper()
	assert := require.New(t)

	for i, g := range gb {
		assert.False(g.IsZero())
		lt := g.leadingTerm(ord)
		var one = g.ring.One().terms[0].coeff
		assert.True(lt.coeff.Equal(&one), "basis element %d not monic", i)

		for j, h := range gb {
			if i == j {
				continue
			}
			hl := h.leadingTerm(ord)
			assert.False(expDivides(hl.exp, lt.exp), "leading monomial of %d divides that of %d", j, i)
			for _, term := range g.terms {
				if expEqual(term.exp, lt.exp) {
					continue
				}
				assert.False(expDivides(hl.exp, term.exp), "tail of %d not reduced against %d", i, j)
			}
		}
	}

	for i, g := range gens {
		assert.True(normalForm(g, gb, ord).IsZero(), "generator %d does not reduce to zero", i)
	}
	for i := range gb {
		for j := i + 1; j < len(gb); j++ {
			s := sPoly(gb[i], gb[j], ord)
			assert.True(normalForm(s, gb, ord).IsZero(), "s-polynomial (%d,%d) does not reduce to zero", i, j)
		}
	}
}

func TestNormalForm(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x", "y")

	g := r.MustParse("x^2 - y").monic(canonical)
	nf := normalForm(r.MustParse("x^2"), []*Poly{g}, canonical)
	assert.True(nf.Equal(r.X(1)), "got %s", nf)

	// already reduced polynomials are fixed points
	p := r.MustParse("x*y + 1")
	assert.True(normalForm(p, []*Poly{g}, canonical).Equal(p))
}

func TestBuchberger(t *testing.T) {
	r := testRing(t, "x", "y", "z")

	cases := [][]string{
		{"x*y - 1", "y^2 - 1"},
		{"x^2 + y^2 + z^2 - 1", "x - y"},
		{"z - x*y", "y - x^2"},
		{"x + y + z", "x*y + y*z + x*z", "x*y*z - 1"},
	}
	for _, srcs := range cases {
		gens := make([]*Poly, len(srcs))
		for i, s := range srcs {
			gens[i] = r.MustParse(s)
		}
		gb := buchberger(gens, canonical)
		requireReducedBasis(t, gens, gb, canonical)
	}
}

func TestBuchbergerDeterministic(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x", "y", "z")

	gens := []*Poly{r.MustParse("z - x*y"), r.MustParse("y - x^2"), r.MustParse("x*z - y^2")}
	a := buchberger(gens, canonical)
	b := buchberger(gens, canonical)
	assert.Equal(len(a), len(b))
	for i := range a {
		assert.True(a[i].Equal(b[i]))
	}
}

func TestBuchbergerBlockOrder(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x", "y")

	gens := []*Poly{r.MustParse("x^2 + y^2 - 1"), r.MustParse("x - y")}
	ord := newBlock(2, []algebra.Variable{0})
	gb := buchberger(gens, ord)
	requireReducedBasis(t, gens, gb, ord)

	// the basis elements free of x generate the elimination ideal; here
	// 2y^2 - 1 must survive
	var kept []*Poly
	for _, g := range gb {
		if len(g.Support()) == 1 && g.Support()[0] == algebra.Variable(1) {
			kept = append(kept, g)
		}
	}
	assert.Len(kept, 1)
	two := r.MustParse("2")
	assert.True(kept[0].Mul(two).Equal(r.MustParse("2*y^2 - 1")), "got %s", kept[0])
}
