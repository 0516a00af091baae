package algmat_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/consensys/algmat/algebra"
)

func subsetOfMask(mask int, n int) []algebra.Variable {
	var s []algebra.Variable
	for i := 0; i < n; i++ {
		if mask&(1<<i) != 0 {
			s = append(s, algebra.Variable(i))
		}
	}
	return s
}

// rank axioms, checked on the matroid of ideal(z - x*y, w - x - y): rank is
// bounded by cardinality and by the total rank, and is monotone under
// inclusion.
func TestRankAxioms(t *testing.T) {
	m, _ := newMatroid(t, []string{"x", "y", "z", "w"}, "z - x*y", "w - x - y")
	n := 4

	total, err := m.TotalRank()
	if err != nil {
		t.Fatal(err)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	properties.Property("rank(S) <= |S| and rank(S) <= rank(E)", prop.ForAll(
		func(mask int) bool {
			s := subsetOfMask(mask, n)
			r, err := m.Rank(s)
			if err != nil {
				return false
			}
			return r <= len(s) && r <= total
		},
		gen.IntRange(0, 1<<n-1),
	))

	properties.Property("S ⊆ T implies rank(S) <= rank(T)", prop.ForAll(
		func(sub, sup int) bool {
			s := subsetOfMask(sub&sup, n)
			u := subsetOfMask(sup, n)
			rs, err := m.Rank(s)
			if err != nil {
				return false
			}
			ru, err := m.Rank(u)
			if err != nil {
				return false
			}
			return rs <= ru
		},
		gen.IntRange(0, 1<<n-1),
		gen.IntRange(0, 1<<n-1),
	))

	properties.Property("independent sets have rank = cardinality", prop.ForAll(
		func(mask int) bool {
			s := subsetOfMask(mask, n)
			ok, err := m.IsIndependent(s)
			if err != nil {
				return false
			}
			r, err := m.Rank(s)
			if err != nil {
				return false
			}
			return ok == (r == len(s))
		},
		gen.IntRange(0, 1<<n-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// every basis is independent and has the matroid's rank; checked
// exhaustively on the same small matroid.
func TestBasisImpliesIndependentOfFullRank(t *testing.T) {
	m, _ := newMatroid(t, []string{"x", "y", "z", "w"}, "z - x*y", "w - x - y")
	n := 4

	total, err := m.TotalRank()
	if err != nil {
		t.Fatal(err)
	}

	bases := 0
	for mask := 0; mask < 1<<n; mask++ {
		s := subsetOfMask(mask, n)
		isBasis, err := m.IsBasis(s)
		if err != nil {
			t.Fatal(err)
		}
		if !isBasis {
			continue
		}
		bases++
		ok, err := m.IsIndependent(s)
		if err != nil {
			t.Fatal(err)
		}
		if !ok || len(s) != total {
			t.Fatalf("basis %v is not an independent set of rank %d", s, total)
		}
	}
	if bases == 0 {
		t.Fatal("no basis found")
	}
}
