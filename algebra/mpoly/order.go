package mpoly

import "github.com/consensys/algmat/algebra"

// order is a monomial order on exponent vectors of a fixed length.
// compare returns +1 when a > b, -1 when a < b and 0 on equality.
type order interface {
	compare(a, b []int) int
}

// grevlex is graded reverse lexicographic order, the default order for
// Gröbner basis computations.
type grevlex struct{}

func (grevlex) compare(a, b []int) int {
	da, db := 0, 0
	for i := range a {
		da += a[i]
		db += b[i]
	}
	if da != db {
		if da > db {
			return 1
		}
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// block is the product order grevlex × grevlex with the masked variables in
// the leading block. Monomials involving a masked variable dominate all
// monomials free of them, which makes it an elimination order for the masked
// block.
type block struct {
	masked []bool
}

func newBlock(n int, remove []algebra.Variable) block {
	masked := make([]bool, n)
	for _, v := range remove {
		masked[v] = true
	}
	return block{masked: masked}
}

func (o block) compare(a, b []int) int {
	if c := o.maskedCompare(a, b, true); c != 0 {
		return c
	}
	return o.maskedCompare(a, b, false)
}

func (o block) maskedCompare(a, b []int, want bool) int {
	da, db := 0, 0
	for i := range a {
		if o.masked[i] == want {
			da += a[i]
			db += b[i]
		}
	}
	if da != db {
		if da > db {
			return 1
		}
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if o.masked[i] != want || a[i] == b[i] {
			continue
		}
		if a[i] < b[i] {
			return 1
		}
		return -1
	}
	return 0
}
