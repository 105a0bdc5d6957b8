package code

import "github.com/arlenfield/gfcodec/field"

// Reference configurations named in spec S6/S8. Each mirrors how the
// original Python scripts hardcode one GF object per file (gf.GF256,
// PrimeField(257, ...)) with a single constructor call site.

func newBCH(m int, fcr uint64, t int) (*Code, error) {
	alpha, poly, err := field.FindIrreducibleAndPrimitive(2, m)
	if err != nil {
		return nil, err
	}

	ef, err := field.NewExtField(2, m, alpha, poly)
	if err != nil {
		return nil, err
	}

	return NewBCHCode(ef, fcr, t)
}

// NewBCH63_30 builds the standard (63,30,t=6) binary BCH code over
// GF(2^6).
func NewBCH63_30() (*Code, error) {
	return newBCH(6, 1, 6)
}

// NewBCH63_45 builds the standard (63,45,t=3) binary BCH code over
// GF(2^6).
func NewBCH63_45() (*Code, error) {
	return newBCH(6, 1, 3)
}

// NewRS256 builds a Reed-Solomon code over GF(2^8) (byte alphabet, the
// canonical QR-code modulus 0x11d, alpha=2), correcting ecc/2 errors in an
// n-byte block.
func NewRS256(n uint64, ecc int) (*Code, error) {
	if ecc <= 0 || ecc%2 != 0 {
		return nil, ErrBounds
	}

	poly, err := field.FindIrreducibleForPrimitive(2, 8, 2)
	if err != nil {
		return nil, err
	}

	ef, err := field.NewExtField(2, 8, 2, poly)
	if err != nil {
		return nil, err
	}

	return NewRSCode(ef, ef.Alpha(), 1, ecc/2, n)
}

// NewRS257 builds a Reed-Solomon code over the prime field Z/257Z (spec
// S6 reference configuration: msg_len=16, ecc=4).
func NewRS257(n uint64, ecc int) (*Code, error) {
	if ecc <= 0 || ecc%2 != 0 {
		return nil, ErrBounds
	}

	pf, err := field.NewPrimeField(257)
	if err != nil {
		return nil, err
	}

	return NewRSCode(pf, pf.Generator(), 1, ecc/2, n)
}
