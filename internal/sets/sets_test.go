package sets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestKeyIsOrderIndependent(t *testing.T) {
	assert := require.New(t)

	a, ok := FromIndices(9, []uint{7, 0, 3})
	assert.True(ok)
	b, ok := FromIndices(9, []uint{3, 7, 0, 3})
	assert.True(ok)

	assert.Equal("0,3,7", a.Key())
	assert.Equal(a.Key(), b.Key())
	assert.True(a.Equal(b))

	assert.Equal("", New(4).Key())
}

func TestFromIndicesRejectsOutOfRange(t *testing.T) {
	_, ok := FromIndices(3, []uint{0, 3})
	require.False(t, ok)
}

func TestMembersAndComplement(t *testing.T) {
	assert := require.New(t)

	s, _ := FromIndices(5, []uint{1, 4})
	if diff := cmp.Diff([]uint{1, 4}, s.Members()); diff != "" {
		t.Fatalf("members mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint{0, 2, 3}, s.Complement().Members()); diff != "" {
		t.Fatalf("complement mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(2, s.Count())
	assert.Equal(5, Full(5).Count())
	assert.True(s.IsSubsetOf(Full(5)))
	assert.False(Full(5).IsSubsetOf(s))
	assert.True(New(5).IsSubsetOf(s))

	w := s.With(2)
	assert.True(w.Contains(2))
	assert.False(s.Contains(2), "With must not mutate the receiver")
}

func TestCombinationsOrder(t *testing.T) {
	assert := require.New(t)

	var got [][]uint
	done := Combinations([]uint{1, 2, 5}, 2, func(choice []uint) bool {
		got = append(got, append([]uint(nil), choice...))
		return true
	})
	assert.True(done)
	want := [][]uint{{1, 2}, {1, 5}, {2, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("combinations mismatch (-want +got):\n%s", diff)
	}
}

func TestCombinationsEarlyStop(t *testing.T) {
	assert := require.New(t)

	calls := 0
	done := Combinations([]uint{0, 1, 2, 3}, 1, func([]uint) bool {
		calls++
		return calls < 2
	})
	assert.False(done)
	assert.Equal(2, calls)

	// k out of range yields nothing but completes
	assert.True(Combinations([]uint{0}, 5, func([]uint) bool { return false }))
	assert.True(Combinations([]uint{0}, -1, func([]uint) bool { return false }))

	// k = 0 yields exactly the empty choice
	empty := 0
	Combinations([]uint{0, 1}, 0, func(c []uint) bool {
		empty++
		return true
	})
	assert.Equal(1, empty)
}
