package field

import "errors"

// Irreducible/primitive search and minimal-polynomial enumeration (C4),
// grounded on original_source/python/gf.py's GF.irr_polynomials,
// is_primitive and minimal_polynomials.

// candidateMonicPolynomials enumerates every monic polynomial of degree
// exactly k over Z/pZ, little-endian coefficients (length k+1, top
// coefficient always 1). There are exactly p^k of them — the same
// enumeration as walking integers in [p^k, 2*p^k) and decoding base-p
// digits, since the forced leading digit is then always 1.
func candidateMonicPolynomials(p uint64, k int) [][]uint64 {
	order := ipow(p, k)

	out := make([][]uint64, 0, order)
	for n := order; n < 2*order; n++ {
		out = append(out, valueToVector(p, k+1, n))
	}

	return out
}

// IsPrimitiveElement reports whether alpha generates the full
// multiplicative cycle of GF(p^k) defined by the monic polynomial
// irreducible (spec S4.3): walking alpha^1, alpha^2, ... mod irreducible
// must visit p^k-1 distinct non-zero residues before repeating.
func IsPrimitiveElement(p uint64, k int, irreducible []uint64, alpha uint64) (bool, error) {
	base, err := NewPrimeField(p)
	if err != nil {
		return false, err
	}

	irr := NewPolynomial(base, irreducible)
	if irr.Degree() != k || irr.LeadCoeff() != 1 {
		return false, ErrNotIrreducible
	}

	order := ipow(p, k)

	seen := make([]bool, order)
	x := NewPolynomial(base, []uint64{1})
	av := NewPolynomial(base, valueToVector(p, k, alpha%order))

	for i := uint64(0); i < order-1; i++ {
		x = x.Mul(av).Mod(irr)

		n := vectorToValue(p, padVector(x.Coeffs(), k))
		if n == 0 || seen[n] {
			return false, nil
		}

		seen[n] = true
	}

	return true, nil
}

// FindIrreducibleAndPrimitive searches, in ascending order, for the first
// (monic irreducible polynomial, primitive element) pair defining
// GF(p^k) — the construction path original_source/python/gf.py's
// irr_polynomials(p, k) takes with no fixed primitive element.
func FindIrreducibleAndPrimitive(p uint64, k int) (alpha uint64, irreducible []uint64, err error) {
	if k < 1 {
		return 0, nil, ErrInvalidDegree
	}

	order := ipow(p, k)

	for _, candidate := range candidateMonicPolynomials(p, k) {
		for a := uint64(1); a < order; a++ {
			ok, err := IsPrimitiveElement(p, k, candidate, a)
			if err != nil {
				return 0, nil, err
			}

			if ok {
				return a, candidate, nil
			}
		}
	}

	return 0, nil, ErrNoIrreducible
}

// FindIrreducibleForPrimitive searches for the first monic irreducible
// polynomial of degree k admitting the given alpha as a primitive
// element — the construction path irr_polynomials(p, k, primitive) takes
// when a specific generator (e.g. alpha=2 for GF(2^8)) is required.
func FindIrreducibleForPrimitive(p uint64, k int, alpha uint64) ([]uint64, error) {
	if k < 1 {
		return nil, ErrInvalidDegree
	}

	for _, candidate := range candidateMonicPolynomials(p, k) {
		ok, err := IsPrimitiveElement(p, k, candidate, alpha)
		if err != nil {
			return nil, err
		}

		if ok {
			return candidate, nil
		}
	}

	return nil, ErrNoIrreducible
}

var errBinaryMinimalPolynomialsOnly = errors.New("field: minimal polynomials are only searched here over GF(2^k)")

// MinimalPolynomial finds the smallest-degree monic polynomial with
// coefficients in GF(2) (0 or 1, embedded directly as ExtField elements)
// having beta as a root — searched by increasing degree up to f.K(),
// matching original_source/python/gf.py's minimal_polynomials. Used by
// BCH generator construction (spec S4.4) to build minimal polynomials of
// alpha^1..alpha^(2t).
func (f *ExtField) MinimalPolynomial(beta uint64) (*Polynomial, error) {
	if f.p != 2 {
		return nil, errBinaryMinimalPolynomialsOnly
	}

	for deg := 1; deg <= f.k; deg++ {
		low := uint64(1) << uint(deg)
		high := uint64(1) << uint(deg+1)

		for n := low; n < high; n++ {
			coeffs := valueToVector(2, deg+1, n)
			m := NewPolynomial(f, coeffs)

			if m.Eval(beta) == f.Zero() {
				return m, nil
			}
		}
	}

	return nil, ErrNoIrreducible
}
