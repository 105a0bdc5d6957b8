package field

// ExtField implements C3/C4: GF(p^k) as residues modulo an irreducible
// polynomial f over Z/pZ, represented two ways that must always agree
// (spec S3): a *vector* form (coefficients a0..a(k-1)) and an *integer*
// form (sum a_i*p^i). The integer form is canonical (spec S9) — it is
// what every exported method accepts and returns; the vector form is
// recomputed on demand from the integer form's base-p digits.
//
// Multiplication/inverse/division are O(1) via exp/log tables built once
// at construction (C3); addition/subtraction operate on the vector form,
// since the tables only linearise the multiplicative group.
type ExtField struct {
	base        *PrimeField
	p           uint64
	k           int
	order       uint64 // p^k
	alpha       uint64 // primitive element, integer form
	irreducible *Polynomial

	expTable []uint64 // length order-1: exp[i] = alpha^i
	logTable []uint64 // length order; logTable[0] is never read
}

// NewExtField builds GF(p^k) from a primitive element alpha and an
// irreducible polynomial of degree k (little-endian coefficients, k+1 of
// them, monic). Construction fails with ErrNotIrreducible if the
// polynomial isn't degree-k monic, and ErrNotPrimitive if alpha does not
// generate the full multiplicative cycle modulo it (spec S4.3's
// invariant: exp_table visits every non-zero residue exactly once).
func NewExtField(p uint64, k int, alpha uint64, irreducibleCoeffs []uint64) (*ExtField, error) {
	if k < 1 {
		return nil, ErrInvalidDegree
	}

	base, err := NewPrimeField(p)
	if err != nil {
		return nil, err
	}

	irr := NewPolynomial(base, irreducibleCoeffs)
	if irr.Degree() != k || irr.LeadCoeff() != 1 {
		return nil, ErrNotIrreducible
	}

	order := ipow(p, k)

	f := &ExtField{
		base:        base,
		p:           p,
		k:           k,
		order:       order,
		alpha:       alpha % order,
		irreducible: irr,
	}

	if err := f.buildTables(); err != nil {
		return nil, err
	}

	return f, nil
}

// buildTables walks the cyclic group generated by alpha, recording
// exp/log tables and rejecting any repeat before the full cycle closes
// (spec S4.3).
func (f *ExtField) buildTables() error {
	f.expTable = make([]uint64, f.order-1)
	f.logTable = make([]uint64, f.order)

	seen := make([]bool, f.order)
	x := uint64(1)

	for i := uint64(0); i < f.order-1; i++ {
		if x == 0 || seen[x] {
			return ErrNotPrimitive
		}

		seen[x] = true
		f.expTable[i] = x
		f.logTable[x] = i

		x = f.referenceMultiply(x, f.alpha)
	}

	if x != 1 {
		return ErrNotPrimitive
	}

	return nil
}

// referenceMultiply is the slow polynomial multiply-and-reduce used only
// to build the exp/log tables (spec S4.3): vector(a)*vector(b) mod f.
func (f *ExtField) referenceMultiply(a, b uint64) uint64 {
	pa := NewPolynomial(f.base, valueToVector(f.p, f.k, a))
	pb := NewPolynomial(f.base, valueToVector(f.p, f.k, b))

	prod := pa.Mul(pb).Mod(f.irreducible)

	return vectorToValue(f.p, padVector(prod.Coeffs(), f.k))
}

func (f *ExtField) P() uint64     { return f.p }
func (f *ExtField) K() int        { return f.k }
func (f *ExtField) Order() uint64 { return f.order }
func (f *ExtField) Alpha() uint64 { return f.alpha }

// Irreducible returns the defining polynomial (degree k, monic).
func (f *ExtField) Irreducible() *Polynomial { return f.irreducible.Copy() }

// Vector returns the base-p coefficient vector of the integer form a.
func (f *ExtField) Vector(a uint64) []uint64 {
	return valueToVector(f.p, f.k, a%f.order)
}

// Zero/One/Reduce/Equal — Ring plumbing.
func (f *ExtField) Zero() uint64             { return 0 }
func (f *ExtField) One() uint64              { return 1 }
func (f *ExtField) Reduce(a uint64) uint64   { return a % f.order }
func (f *ExtField) Equal(a, b uint64) bool   { return f.Reduce(a) == f.Reduce(b) }

// Add/Sub/Neg operate coefficient-wise on the vector form mod p (spec
// S4.3: tables only linearise multiplication, not addition).
func (f *ExtField) Add(a, b uint64) uint64 {
	va, vb := f.Vector(a), f.Vector(b)

	out := make([]uint64, f.k)
	for i := range out {
		out[i] = f.base.Add(va[i], vb[i])
	}

	return vectorToValue(f.p, out)
}

func (f *ExtField) Sub(a, b uint64) uint64 {
	va, vb := f.Vector(a), f.Vector(b)

	out := make([]uint64, f.k)
	for i := range out {
		out[i] = f.base.Sub(va[i], vb[i])
	}

	return vectorToValue(f.p, out)
}

func (f *ExtField) Neg(a uint64) uint64 {
	va := f.Vector(a)

	out := make([]uint64, f.k)
	for i := range out {
		out[i] = f.base.Neg(va[i])
	}

	return vectorToValue(f.p, out)
}

// Mul/Inverse/Div are O(1) exp/log table lookups (spec S4.3): for
// non-zero a,b, a*b = exp[(log[a]+log[b]) mod (p^k-1)]; zero short-circuits.
func (f *ExtField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return f.expTable[(f.logTable[a]+f.logTable[b])%(f.order-1)]
}

// Inverse panics on a==0 (DivByZero, spec S7: a programming error).
func (f *ExtField) Inverse(a uint64) uint64 {
	if a == 0 {
		panic("field: inverse of zero")
	}

	return f.expTable[(f.order-1-f.logTable[a])%(f.order-1)]
}

func (f *ExtField) Div(a, b uint64) uint64 {
	if b == 0 {
		panic("field: division by zero")
	}
	if a == 0 {
		return 0
	}

	return f.expTable[(f.logTable[a]+f.order-1-f.logTable[b])%(f.order-1)]
}

// Log returns the discrete log of a non-zero element; error on zero
// (spec S3: "element 0 has no logarithm; every operation taking log must
// guard").
func (f *ExtField) Log(a uint64) (uint64, error) {
	if a == 0 {
		return 0, ErrZeroHasNoLog
	}

	return f.logTable[a], nil
}

// Exp returns alpha^i, i taken mod (order-1).
func (f *ExtField) Exp(i uint64) uint64 {
	return f.expTable[i%(f.order-1)]
}

// --- base-p digit <-> integer-form helpers, shared by element.go/search.go ---

func ipow(p uint64, k int) uint64 {
	out := uint64(1)
	for i := 0; i < k; i++ {
		out *= p
	}

	return out
}

// valueToVector decodes n's base-p digits, little-endian, zero-padded (or
// truncated) to exactly `length` digits.
func valueToVector(p uint64, length int, n uint64) []uint64 {
	out := make([]uint64, length)
	for i := 0; i < length; i++ {
		out[i] = n % p
		n /= p
	}

	return out
}

func vectorToValue(p uint64, v []uint64) uint64 {
	out := uint64(0)
	mul := uint64(1)

	for _, c := range v {
		out += c * mul
		mul *= p
	}

	return out
}

// padVector zero-extends (or truncates) a coefficient slice to length.
func padVector(v []uint64, length int) []uint64 {
	out := make([]uint64, length)
	copy(out, v)

	return out
}
