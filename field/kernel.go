package field

// Fast kernels (C8) for two field sizes: GF(2^8) (byte-oriented RS codes;
// the code package's syndrome loop uses Eval4) and GF(2^16) (Mul16, which
// no code-package preset or decoder path uses).
// Grounded on the exp/log-table multiply style of AshokShau-qrcode's
// reedsolomon.go and krepost-gf256's field.go — both skip the generic
// Ring indirection in their innermost loop and index the tables directly.

// Eval4 evaluates the same polynomial (coeffs, little-endian) at four
// points at once by running independent Horner accumulators in lockstep,
// one per lane. The decoder's Syndromes uses it to evaluate four
// syndromes per pass over coeffs instead of one (spec S4.7); f must
// be a GF(2^8) field (f.P()==2, f.K()==8).
func Eval4(f *ExtField, coeffs []uint64, xs [4]uint64) [4]uint64 {
	var acc [4]uint64

	for i := len(coeffs) - 1; i >= 0; i-- {
		c := coeffs[i]

		for lane := 0; lane < 4; lane++ {
			acc[lane] = f.Add(c, f.Mul(acc[lane], xs[lane]))
		}
	}

	return acc
}

// Mul16 multiplies two GF(2^16) elements via f's exp/log tables. It is a
// thin, explicitly-named entry point (rather than a bare f.Mul call) so a
// caller can tell at a glance that a 16-bit field is in use (spec S4.7);
// f must satisfy f.P()==2, f.K()==16.
func Mul16(f *ExtField, a, b uint16) uint16 {
	return uint16(f.Mul(uint64(a), uint64(b)))
}
