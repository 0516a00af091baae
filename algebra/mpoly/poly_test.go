package mpoly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/algmat/algebra"
)

func testRing(t *testing.T, names ...string) *Ring {
	t.Helper()
	r, err := NewRing(names...)
	require.NoError(t, err)
	return r
}

func TestNewRing(t *testing.T) {
	assert := require.New(t)

	_, err := NewRing()
	assert.Error(err)

	_, err = NewRing("x", "x")
	assert.Error(err)

	r := testRing(t, "x", "y", "z")
	assert.Equal(3, r.NumVars())
	assert.Equal("y", r.Name(algebra.Variable(1)))

	v, ok := r.Var("z")
	assert.True(ok)
	assert.Equal(algebra.Variable(2), v)
	_, ok = r.Var("w")
	assert.False(ok)
}

func TestPolyArithmetic(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x", "y")

	x, y := r.X(0), r.X(1)

	// (x+y)^2 = x^2 + 2xy + y^2
	sq := x.Add(y).Pow(2)
	expanded := r.MustParse("x^2 + 2*x*y + y^2")
	assert.True(sq.Equal(expanded), "got %s", sq)

	// p - p = 0
	assert.True(sq.Sub(sq).IsZero())

	// p * 0 = 0
	assert.True(sq.Mul(r.Zero()).IsZero())

	// p^0 = 1
	assert.True(x.Pow(0).Equal(r.One()))

	assert.Equal(2, sq.TotalDegree())
	assert.Equal(-1, r.Zero().TotalDegree())
}

func TestPolySupport(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x", "y", "z")

	p := r.MustParse("x*z - z")
	assert.Equal([]algebra.Variable{0, 2}, p.Support())
	assert.Empty(r.Constant(big.NewInt(7)).Support())
	assert.Empty(r.Zero().Support())
}

func TestPolyString(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x", "y")

	assert.Equal("0", r.Zero().String())
	assert.Equal("-x^2 + y", r.MustParse("y - x^2").String())
	assert.Equal("-3", r.MustParse("-3").String())
	assert.Equal("2*x*y", r.MustParse("2*x*y").String())

	// String output parses back to the same polynomial
	p := r.MustParse("3*x^2*y - x + 5")
	back, err := r.Parse(p.String())
	assert.NoError(err)
	assert.True(p.Equal(back))
}

func TestNormalizeMergesTerms(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x", "y")

	p := r.MustParse("x + x + y - 2*x")
	assert.True(p.Equal(r.X(1)), "got %s", p)
}
