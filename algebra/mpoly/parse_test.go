package mpoly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	r := testRing(t, "x", "y")

	for _, src := range []string{
		"",
		"x + w",     // unknown variable
		"(x + y",    // missing paren
		"x / y",     // division
		"x ^ y",     // non-literal exponent
		"x ^ -2",    // negative exponent
		"x y",       // missing operator
		"x ^ 99999", // exponent over the cap
	} {
		_, err := r.Parse(src)
		require.Error(t, err, "input %q", src)
	}
}

func TestParsePrecedence(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x", "y")

	// ^ binds tighter than *, which binds tighter than + and -
	p := r.MustParse("y - 2*x^2")
	q := r.X(1).Sub(r.X(0).Pow(2).Mul(r.MustParse("2")))
	assert.True(p.Equal(q), "got %s want %s", p, q)

	// unary minus applies to the whole power
	assert.True(r.MustParse("-x^2").Equal(r.X(0).Pow(2).Neg()))
}

func TestParseBigLiteral(t *testing.T) {
	assert := require.New(t)
	r := testRing(t, "x")

	p, err := r.Parse("1267650600228229401496703205376*x") // 2^100
	assert.NoError(err)
	assert.False(p.IsZero())
	assert.Equal("1267650600228229401496703205376*x", p.String())
}
