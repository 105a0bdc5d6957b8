package code

import (
	"fmt"

	"github.com/arlenfield/gfcodec/field"
)

// Code implements C5: a Reed-Solomon or BCH code's parameters and
// generator polynomial, built once and reused by both Encoder (C6) and
// Decoder (C7). Unexported fields are immutable after construction
// (spec S5: safe to share by reference).
type Code struct {
	ring      field.Ring
	n         uint64 // codeword length, symbols
	k         uint64 // message length, symbols
	t         int    // designed error-correcting capacity
	alpha     uint64 // primitive element used for roots/generator, integer form
	fcr       uint64 // first consecutive root exponent b
	generator *field.Polynomial
}

func (c *Code) N() uint64                    { return c.n }
func (c *Code) K() uint64                    { return c.k }
func (c *Code) T() int                       { return c.t }
func (c *Code) Alpha() uint64                { return c.alpha }
func (c *Code) FirstConsecutiveRoot() uint64 { return c.fcr }
func (c *Code) Ring() field.Ring             { return c.ring }
func (c *Code) Generator() *field.Polynomial { return c.generator.Copy() }

// NewRSCode builds a Reed-Solomon code of designed distance 2t+1 over
// ring (an ExtField or PrimeField), generator polynomial
// g(x) = prod_{i=0}^{2t-1} (x - alpha^(fcr+i)) (spec S4.4), codeword
// length n, message length n-2t.
func NewRSCode(ring field.Ring, alpha uint64, fcr uint64, t int, n uint64) (*Code, error) {
	if t <= 0 || uint64(2*t) >= n {
		return nil, ErrBounds
	}

	roots := make([]uint64, 2*t)
	seen := make(map[uint64]bool, 2*t)
	for i := range roots {
		root := field.Pow(ring, alpha, fcr+uint64(i))
		if seen[root] {
			return nil, field.ErrNonUniquePoints
		}
		seen[root] = true
		roots[i] = root
	}

	return &Code{
		ring:      ring,
		n:         n,
		k:         n - uint64(2*t),
		t:         t,
		alpha:     alpha,
		fcr:       fcr,
		generator: field.ProductOfMonicLinearFactors(ring, roots),
	}, nil
}

// NewBCHCode builds a binary BCH code over ef (GF(2^m), n = 2^m-1) with
// designed error-correcting capacity t, generator = lcm of the minimal
// polynomials of alpha^fcr..alpha^(fcr+2t-1), deduplicated, taken as a
// plain product since the kept factors are verified pairwise coprime
// via PartialExtendedEuclidean before being folded in (spec S4.4 — this
// replaces the unchecked "minimal polynomials are coprime or equal"
// comment in original_source with an actual gcd check).
func NewBCHCode(ef *field.ExtField, fcr uint64, t int) (*Code, error) {
	if ef.P() != 2 {
		return nil, ErrBounds
	}

	n := ef.Order() - 1
	if t <= 0 || uint64(2*t) >= n {
		return nil, ErrBounds
	}

	gen := field.NewPolynomial(ef, []uint64{ef.One()})
	seen := make(map[string]bool)

	for i := 0; i < 2*t; i++ {
		root := field.Pow(ef, ef.Alpha(), fcr+uint64(i))

		m, err := ef.MinimalPolynomial(root)
		if err != nil {
			return nil, err
		}

		key := polyKey(m)
		if seen[key] {
			continue
		}
		seen[key] = true

		if gen.Degree() > 0 {
			g, _, _ := field.PartialExtendedEuclidean(gen, m, 0)
			if g.Degree() > 0 {
				return nil, field.ErrNotCoprime
			}
		}

		gen = gen.Mul(m)
	}

	return &Code{
		ring:      ef,
		n:         n,
		k:         n - uint64(gen.Degree()),
		t:         t,
		alpha:     ef.Alpha(),
		fcr:       fcr,
		generator: gen,
	}, nil
}

func polyKey(p *field.Polynomial) string {
	return fmt.Sprint(p.Coeffs())
}
