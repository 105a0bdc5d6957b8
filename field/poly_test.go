package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomialNormalizesTrailingZeroes(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(17)
	a.NoError(err)

	p := NewPolynomial(f, []uint64{1, 2, 0, 0})
	a.Equal(1, p.Degree())
	a.Equal([]uint64{1, 2}, p.Coeffs())

	z := NewPolynomial(f, []uint64{0, 0, 0})
	a.True(z.IsZero())
	a.Equal(-1, z.Degree())
}

func TestPolynomialAddSubNeg(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(17)
	a.NoError(err)

	p := NewPolynomial(f, []uint64{3, 5, 9})
	q := NewPolynomial(f, []uint64{1, 1, 1, 1})

	sum := p.Add(q)
	a.Equal(uint64(4), sum.Coeff(0))
	a.Equal(uint64(1), sum.Coeff(3))

	a.Equal(p.Coeffs(), sum.Sub(q).Coeffs())
	a.True(p.Sub(p).IsZero())
	a.True(p.Add(p.Neg()).IsZero())
}

func TestPolynomialMulEvalConsistentWithHorner(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(101)
	a.NoError(err)

	p := NewPolynomial(f, []uint64{1, 2, 3}) // 1 + 2x + 3x^2
	q := NewPolynomial(f, []uint64{4, 5})    // 4 + 5x

	prod := p.Mul(q)

	for _, x := range []uint64{0, 1, 7, 50, 100} {
		got := prod.Eval(x)
		want := f.Mul(p.Eval(x), q.Eval(x))
		a.Equal(want, got, "x=%d", x)
	}
}

func TestPolynomialExtSynthDivRoundtrips(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(101)
	a.NoError(err)

	divisor := NewPolynomial(f, []uint64{3, 7, 1}) // non-monic-friendly but here monic
	dividend := NewPolynomial(f, []uint64{9, 0, 5, 2, 1})

	quot, rem := dividend.ExtSynthDiv(divisor)
	reconstructed := quot.Mul(divisor).Add(rem)

	a.Equal(dividend.Coeffs(), reconstructed.Coeffs())
	a.True(rem.Degree() < divisor.Degree())
}

func TestPolynomialExtSynthDivNonMonicDivisor(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(101)
	a.NoError(err)

	divisor := NewPolynomial(f, []uint64{1, 1, 5}) // leading coeff 5, not 1
	dividend := NewPolynomial(f, []uint64{2, 4, 6, 8, 10})

	quot, rem := dividend.ExtSynthDiv(divisor)
	reconstructed := quot.Mul(divisor).Add(rem)

	a.Equal(dividend.Coeffs(), reconstructed.Coeffs())
}

func TestPolynomialDerivative(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(101)
	a.NoError(err)

	// d/dx (1 + 2x + 3x^2 + 4x^3) = 2 + 6x + 12x^2
	p := NewPolynomial(f, []uint64{1, 2, 3, 4})
	d := p.Derivative()

	a.Equal([]uint64{2, 6, 12}, d.Coeffs())
}

func TestPolynomialDerivativeCharacteristicTwo(t *testing.T) {
	a := assert.New(t)

	gf256, err := NewExtField(2, 8, 2, []uint64{1, 0, 1, 1, 1, 0, 0, 0, 1}) // 0x11d: x^8+x^4+x^3+x^2+1
	a.NoError(err)

	// Over GF(2), every even-index term differentiates to zero:
	// d/dx (1 + x + x^2 + x^3 + x^4) = 1 + 3x^2 = 1 + x^2.
	p := NewPolynomial(gf256, []uint64{1, 1, 1, 1, 1})
	d := p.Derivative()

	a.Equal(uint64(1), d.Coeff(0))
	a.Equal(uint64(0), d.Coeff(1))
	a.Equal(uint64(1), d.Coeff(2))
}

func TestProductOfMonicLinearFactors(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(101)
	a.NoError(err)

	roots := []uint64{2, 5, 7}
	p := ProductOfMonicLinearFactors(f, roots)

	a.Equal(len(roots), p.Degree())
	for _, r := range roots {
		a.Equal(uint64(0), p.Eval(r))
	}
}

func TestPartialExtendedEuclideanGCD(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(101)
	a.NoError(err)

	root1, root2 := ProductOfMonicLinearFactors(f, []uint64{3}), ProductOfMonicLinearFactors(f, []uint64{9})
	shared := ProductOfMonicLinearFactors(f, []uint64{2})

	p := root1.Mul(shared)
	q := root2.Mul(shared)

	g, x, y := PartialExtendedEuclidean(p, q, 0)
	combo := p.Mul(x).Add(q.Mul(y))

	a.Equal(g.Coeffs(), combo.Coeffs())
}
