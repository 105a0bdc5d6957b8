package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindIrreducibleForPrimitiveMatchesGF256Standard(t *testing.T) {
	a := assert.New(t)

	got, err := FindIrreducibleForPrimitive(2, 8, 2)
	a.NoError(err)

	// The search walks candidates in ascending integer order; the
	// standard QR-code modulus 0x11d (x^8+x^4+x^3+x^2+1) is the
	// smallest degree-8 GF(2) polynomial admitting alpha=2.
	a.Equal([]uint64{1, 0, 1, 1, 1, 0, 0, 0, 1}, got)

	f, err := NewExtField(2, 8, 2, got)
	a.NoError(err)
	a.Equal(uint64(256), f.Order())
}

func TestIsPrimitiveElementAgreesWithFieldConstruction(t *testing.T) {
	a := assert.New(t)

	ok, err := IsPrimitiveElement(2, 8, gf256Poly, 2)
	a.NoError(err)
	a.True(ok)

	// 0 can never be primitive: its powers are all zero.
	ok, err = IsPrimitiveElement(2, 8, gf256Poly, 0)
	a.NoError(err)
	a.False(ok)
}

func TestFindIrreducibleAndPrimitiveSmallFields(t *testing.T) {
	a := assert.New(t)

	for _, tc := range []struct {
		p uint64
		k int
	}{
		{2, 3},
		{2, 4},
		{3, 2},
		{5, 2},
		{2, 6},
	} {
		alpha, poly, err := FindIrreducibleAndPrimitive(tc.p, tc.k)
		a.NoError(err, "p=%d k=%d", tc.p, tc.k)
		a.Equal(tc.k+1, len(poly))
		a.Equal(uint64(1), poly[tc.k])

		f, err := NewExtField(tc.p, tc.k, alpha, poly)
		a.NoError(err, "p=%d k=%d", tc.p, tc.k)
		a.Equal(ipow(tc.p, tc.k), f.Order())
	}
}

func TestMinimalPolynomialHasBetaAsRoot(t *testing.T) {
	a := assert.New(t)

	f, err := NewExtField(2, 4, 2, []uint64{1, 1, 0, 0, 1}) // x^4+x+1
	a.NoError(err)

	for i := uint64(1); i < f.Order(); i++ {
		m, err := f.MinimalPolynomial(i)
		a.NoError(err)
		a.Equal(uint64(0), m.Eval(i))
		a.LessOrEqual(m.Degree(), f.K())
	}
}

func TestMinimalPolynomialRejectsNonBinaryFields(t *testing.T) {
	a := assert.New(t)

	alpha, poly, err := FindIrreducibleAndPrimitive(3, 2)
	a.NoError(err)

	f, err := NewExtField(3, 2, alpha, poly)
	a.NoError(err)

	_, err = f.MinimalPolynomial(alpha)
	a.Error(err)
}
