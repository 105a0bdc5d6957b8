package field

// Polynomial implements C2: a dense polynomial over a scalar Ring (C1's
// PrimeField or C3's ExtField), coefficients ordered little-endian
// (index i is the coefficient of x^i, spec S3/S9). The invariant held
// after every mutating operation is that the trailing coefficient is
// non-zero, or the coefficient slice is empty (the zero polynomial).
type Polynomial struct {
	r Ring
	c []uint64
}

// NewPolynomial copies coeffs and normalises (strips trailing zero
// coefficients).
func NewPolynomial(r Ring, coeffs []uint64) *Polynomial {
	c := make([]uint64, len(coeffs))
	for i, v := range coeffs {
		c[i] = r.Reduce(v)
	}

	p := &Polynomial{r: r, c: c}
	p.normalize()

	return p
}

// ZeroPolynomial returns the empty (zero) polynomial over r.
func ZeroPolynomial(r Ring) *Polynomial {
	return &Polynomial{r: r}
}

func (p *Polynomial) normalize() {
	n := len(p.c)
	for n > 0 && p.r.Equal(p.c[n-1], p.r.Zero()) {
		n--
	}
	p.c = p.c[:n]
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.c) == 0
}

// Degree returns len(coeffs)-1, or -1 for the zero polynomial (spec S3).
func (p *Polynomial) Degree() int {
	return len(p.c) - 1
}

// LeadCoeff returns the trailing non-zero coefficient, or the ring's zero
// for the zero polynomial.
func (p *Polynomial) LeadCoeff() uint64 {
	if len(p.c) == 0 {
		return p.r.Zero()
	}

	return p.c[len(p.c)-1]
}

// Coeffs returns a defensive copy of the little-endian coefficient slice.
func (p *Polynomial) Coeffs() []uint64 {
	out := make([]uint64, len(p.c))
	copy(out, p.c)

	return out
}

// Coeff returns the coefficient of x^i, or zero if i is out of range.
func (p *Polynomial) Coeff(i int) uint64 {
	if i < 0 || i >= len(p.c) {
		return p.r.Zero()
	}

	return p.c[i]
}

func (p *Polynomial) Copy() *Polynomial {
	return NewPolynomial(p.r, p.c)
}

// Ring returns the scalar ring this polynomial is defined over.
func (p *Polynomial) Ring() Ring {
	return p.r
}

// Add returns p+q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}

	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = p.r.Add(p.Coeff(i), q.Coeff(i))
	}

	return NewPolynomial(p.r, out)
}

// Sub returns p-q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}

	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = p.r.Sub(p.Coeff(i), q.Coeff(i))
	}

	return NewPolynomial(p.r, out)
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]uint64, len(p.c))
	for i, v := range p.c {
		out[i] = p.r.Neg(v)
	}

	return NewPolynomial(p.r, out)
}

// Scale returns p*s for a scalar s (MulScalarInPlace's value-semantics
// counterpart, per the teacher's poly.go).
func (p *Polynomial) Scale(s uint64) *Polynomial {
	out := make([]uint64, len(p.c))
	for i, v := range p.c {
		out[i] = p.r.Mul(v, s)
	}

	return NewPolynomial(p.r, out)
}

// Mul is schoolbook O(mn) polynomial multiplication (spec S4.2).
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return ZeroPolynomial(p.r)
	}

	out := make([]uint64, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		if p.r.Equal(a, p.r.Zero()) {
			continue
		}

		for j, b := range q.c {
			out[i+j] = p.r.Add(out[i+j], p.r.Mul(a, b))
		}
	}

	return NewPolynomial(p.r, out)
}

// Eval computes v = sum a_i*x^i via Horner's method (spec S4.2).
func (p *Polynomial) Eval(x uint64) uint64 {
	res := p.r.Zero()
	for i := len(p.c) - 1; i >= 0; i-- {
		res = p.r.Add(p.c[i], p.r.Mul(res, x))
	}

	return res
}

// Derivative returns the formal derivative sum i*a_i*x^(i-1), where i*a
// means repeated addition of a to itself i times — this is what makes
// characteristic-2 fields drop every even-indexed coefficient without a
// special case (spec S4.2, ported from original_source/python/gf.py's
// P.deriv).
func (p *Polynomial) Derivative() *Polynomial {
	if len(p.c) <= 1 {
		return ZeroPolynomial(p.r)
	}

	out := make([]uint64, len(p.c)-1)
	for i := 1; i < len(p.c); i++ {
		coeff := p.r.Zero()
		for j := 0; j < i; j++ {
			coeff = p.r.Add(coeff, p.c[i])
		}
		out[i-1] = coeff
	}

	return NewPolynomial(p.r, out)
}

// ExtSynthDiv divides p by divisor using extended synthetic division
// (spec S4.2), supporting non-monic divisors. The scratch buffer is
// initialised to p's coefficients; i runs from m-1 down to n-1. Positions
// [n-1, m) become the quotient, [0, n-1) the remainder.
func (p *Polynomial) ExtSynthDiv(divisor *Polynomial) (quotient, remainder *Polynomial) {
	m := len(p.c)
	n := len(divisor.c)

	if n == 0 {
		panic("field: division by the zero polynomial")
	}

	if m < n {
		return ZeroPolynomial(p.r), p.Copy()
	}

	out := make([]uint64, m)
	copy(out, p.c)

	lead := divisor.c[n-1]

	for i := m - 1; i >= n-1; i-- {
		out[i] = p.r.Div(out[i], lead)

		if !p.r.Equal(out[i], p.r.Zero()) {
			for j := 1; j < n; j++ {
				out[i-j] = p.r.Sub(out[i-j], p.r.Mul(divisor.c[n-1-j], out[i]))
			}
		}
	}

	split := n - 1

	return NewPolynomial(p.r, out[split:]), NewPolynomial(p.r, out[:split])
}

// Mod returns the remainder of ExtSynthDiv(divisor); it is the same
// computation, restricted to the remainder half (spec S4.2 invariant:
// poly_mod(a,b) == remainder(ex_synth_div(a,b))).
func (p *Polynomial) Mod(divisor *Polynomial) *Polynomial {
	_, r := p.ExtSynthDiv(divisor)
	return r
}

// Pow computes base^exp within r by square-and-multiply. A ring-level
// generalisation of PrimeField.Pow that also works for ExtField, used by
// C5 to walk consecutive powers of a primitive element when building a
// code's generator polynomial.
func Pow(r Ring, base, exp uint64) uint64 {
	x := r.One()
	base = r.Reduce(base)

	for exp > 0 {
		if exp&1 == 1 {
			x = r.Mul(x, base)
		}

		base = r.Mul(base, base)
		exp >>= 1
	}

	return x
}

// ProductOfMonicLinearFactors computes prod (x - roots[i]) — used by C5 to
// build an RS generator from consecutive primitive-element powers.
// Grounded on the teacher's PolyProductMonicNegRoots (field/polyring.go).
func ProductOfMonicLinearFactors(r Ring, roots []uint64) *Polynomial {
	out := NewPolynomial(r, []uint64{r.One()})

	for _, root := range roots {
		factor := NewPolynomial(r, []uint64{r.Neg(root), r.One()})
		out = out.Mul(factor)
	}

	return out
}

// PartialExtendedEuclidean runs the extended Euclidean algorithm on (a,b)
// until the running remainder's degree drops below stopDegree, returning
// gcd = a*x + b*y. Adapted from the teacher's poly.go/polyring.go
// implementation of the same routine; used by C5 to verify that BCH
// minimal-polynomial factors are pairwise coprime (spec S4.4) instead of
// trusting that invariant unchecked.
func PartialExtendedEuclidean(a, b *Polynomial, stopDegree int) (gcd, x, y *Polynomial) {
	if b.IsZero() || a.Degree() < stopDegree {
		return a.Copy(), NewPolynomial(a.r, []uint64{a.r.One()}), ZeroPolynomial(a.r)
	}

	q, rem := a.ExtSynthDiv(b)
	g, x1, y1 := PartialExtendedEuclidean(b, rem, stopDegree)

	return g, y1, x1.Sub(q.Mul(y1))
}
