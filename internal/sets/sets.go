// Package sets implements order-independent variable subsets on top of
// bitsets, with canonical string keys for map lookups and size-ordered
// subset enumeration.
package sets

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is an immutable-by-convention subset of a universe {0, ..., n-1}.
// The zero value is not usable; use New or FromIndices.
type Set struct {
	n uint
	b *bitset.BitSet
}

// New returns the empty subset of a universe of size n.
func New(n uint) Set {
	return Set{n: n, b: bitset.New(n)}
}

// Full returns the full universe of size n.
func Full(n uint) Set {
	s := New(n)
	for i := uint(0); i < n; i++ {
		s.b.Set(i)
	}
	return s
}

// FromIndices returns the subset containing the given indices. Indices out of
// the universe are reported by the second return value (the first offender).
func FromIndices(n uint, indices []uint) (Set, bool) {
	s := New(n)
	for _, i := range indices {
		if i >= n {
			return Set{}, false
		}
		s.b.Set(i)
	}
	return s, true
}

func (s Set) Universe() uint { return s.n }

func (s Set) Contains(i uint) bool { return s.b.Test(i) }

// Count returns the cardinality of the set.
func (s Set) Count() int { return int(s.b.Count()) }

// With returns a copy of s with i added.
func (s Set) With(i uint) Set {
	c := s.b.Clone()
	c.Set(i)
	return Set{n: s.n, b: c}
}

// Members returns the elements in ascending order.
func (s Set) Members() []uint {
	m := make([]uint, 0, s.b.Count())
	for i, ok := s.b.NextSet(0); ok && i < s.n; i, ok = s.b.NextSet(i + 1) {
		m = append(m, i)
	}
	return m
}

// Complement returns the universe minus s.
func (s Set) Complement() Set {
	c := New(s.n)
	for i := uint(0); i < s.n; i++ {
		if !s.b.Test(i) {
			c.b.Set(i)
		}
	}
	return Set{n: s.n, b: c.b}
}

// IsSubsetOf reports whether every element of s belongs to t.
func (s Set) IsSubsetOf(t Set) bool {
	return t.b.IsSuperSet(s.b)
}

// Equal reports set equality.
func (s Set) Equal(t Set) bool {
	return s.n == t.n && s.b.Equal(t.b)
}

// Key returns a canonical encoding of the set: the sorted member indices in
// decimal, comma-separated. Two set-equal subsets always produce the same
// key, regardless of insertion order.
func (s Set) Key() string {
	var sb strings.Builder
	first := true
	for i, ok := s.b.NextSet(0); ok && i < s.n; i, ok = s.b.NextSet(i + 1) {
		if !first {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		first = false
	}
	return sb.String()
}

// Combinations calls yield for every k-element subset of members, in
// lexicographic order of the chosen index tuples. members must be sorted.
// Enumeration stops early when yield returns false; Combinations reports
// whether the enumeration ran to completion.
func Combinations(members []uint, k int, yield func(choice []uint) bool) bool {
	if k < 0 || k > len(members) {
		return true
	}
	choice := make([]uint, k)
	var rec func(start, idx int) bool
	rec = func(start, idx int) bool {
		if idx == k {
			return yield(choice)
		}
		for i := start; i <= len(members)-(k-idx); i++ {
			choice[idx] = members[i]
			if !rec(i+1, idx+1) {
				return false
			}
		}
		return true
	}
	return rec(0, 0)
}
