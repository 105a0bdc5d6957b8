package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval4MatchesScalarEval(t *testing.T) {
	a := assert.New(t)

	f, err := NewExtField(2, 8, 2, gf256Poly)
	a.NoError(err)

	p := NewPolynomial(f, []uint64{1, 37, 200, 9, 5})
	xs := [4]uint64{1, 2, 17, 255}

	got := Eval4(f, p.Coeffs(), xs)
	for lane, x := range xs {
		a.Equal(p.Eval(x), got[lane], "lane %d", lane)
	}
}

func TestMul16MatchesFieldMul(t *testing.T) {
	a := assert.New(t)

	alpha, poly, err := FindIrreducibleAndPrimitive(2, 16)
	a.NoError(err)

	f, err := NewExtField(2, 16, alpha, poly)
	a.NoError(err)

	for _, x := range []uint16{1, 2, 1000, 65535} {
		for _, y := range []uint16{1, 3, 500} {
			a.Equal(uint16(f.Mul(uint64(x), uint64(y))), Mul16(f, x, y))
		}
	}
}
