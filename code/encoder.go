package code

import "github.com/arlenfield/gfcodec/field"

// Encoder implements C6: systematic encoding, c(x) = p(x) - (p(x) mod
// g(x)) where p(x) = m(x)*x^(n-k) (spec S4.5), grounded on
// original_source/python/bch.py/rs257.py's rs_encode_systematic.
type Encoder struct {
	c *Code
}

func NewEncoder(c *Code) *Encoder { return &Encoder{c: c} }

// Encode returns an n-symbol codeword (little-endian) for an exactly
// k-symbol message. Systematic: the top k coefficients of the result
// are the message unchanged; the bottom n-k are parity.
func (e *Encoder) Encode(message []uint64) ([]uint64, error) {
	c := e.c
	if uint64(len(message)) != c.k {
		return nil, ErrMessageSize
	}

	shift := c.n - c.k
	shifted := make([]uint64, shift+c.k)
	copy(shifted[shift:], message)

	p := field.NewPolynomial(c.ring, shifted)
	parity := p.Mod(c.generator)
	codeword := p.Sub(parity)

	out := make([]uint64, c.n)
	copy(out, codeword.Coeffs())

	return out, nil
}
