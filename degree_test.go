package algmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseDegreeParabola(t *testing.T) {
	assert := require.New(t)
	m, ring := newMatroid(t, []string{"x", "y"}, "y - x^2")

	// pinning x determines y: one point in the generic fiber
	d, err := m.BaseDegree(vars(ring, "x"))
	assert.NoError(err)
	assert.Equal(1, d)

	// pinning y leaves x^2 = r: two points
	d, err = m.BaseDegree(vars(ring, "y"))
	assert.NoError(err)
	assert.Equal(2, d)
}

func TestBaseDegreeIsStableAcrossDraws(t *testing.T) {
	assert := require.New(t)
	m, ring := newMatroid(t, []string{"x", "y"}, "x^2 + y^2 - 1")

	B := vars(ring, "x")
	first, err := m.BaseDegree(B)
	assert.NoError(err)
	second, err := m.BaseDegree(B)
	assert.NoError(err)

	// Monte-Carlo, but the bad locus has measure zero in a ~2^100 range:
	// disagreement is a failure
	assert.Equal(first, second)
	assert.Equal(2, first)
}

func TestBaseDegreePanicsOffBasis(t *testing.T) {
	assert := require.New(t)
	m, ring := newMatroid(t, []string{"x", "y"}, "y - x^2")

	require.Panics(t, func() {
		_, _ = m.BaseDegree(nil) // the empty set is not a basis here
	})

	defer func() {
		r := recover()
		assert.NotNil(r)
		msg, ok := r.(string)
		assert.True(ok)
		assert.Contains(msg, "{x,y} is not a basis")
		assert.Contains(msg, "degree_test.go")
	}()
	_, _ = m.BaseDegree(vars(ring, "x", "y"))
}
