package field

import (
	"errors"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// Ring describes the scalar arithmetic a Polynomial (C2) is built over.
// PrimeField and ExtField both implement it over the same underlying Go
// type, uint64: a PrimeField scalar is its residue in [0, p); an ExtField
// scalar is the canonical integer form of a GF(p^k) element (spec S9 notes
// the integer form is canonical, the vector form is recomputable on
// demand).
type Ring interface {
	Zero() uint64
	One() uint64
	Reduce(a uint64) uint64
	Equal(a, b uint64) bool
	Add(a, b uint64) uint64
	Sub(a, b uint64) uint64
	Neg(a uint64) uint64
	Mul(a, b uint64) uint64
	// Inverse panics if a == 0 (DivByZero is a programming error, spec S7).
	Inverse(a uint64) uint64
	Div(a, b uint64) uint64
}

const maxBitUsage = 63

// PrimeField implements C1: scalar arithmetic in Z/pZ.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

// NewPrimeField builds the field Z/pZ. p is assumed prime; construction
// fails InvalidField if it is not, or if p doesn't fit in 63 bits.
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime >= (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	if !b.ProbablyPrime(20) {
		return nil, ErrNotPrime
	}

	g, factors, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

func (f *PrimeField) Prime() uint64     { return f.prime }
func (f *PrimeField) Generator() uint64 { return f.generator }
func (f *PrimeField) Factors() []uint64 { return f.factors }

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 % f.prime }

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Equal(a, b uint64) bool {
	return f.Reduce(a) == f.Reduce(b)
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	tmp := a + b // can't overflow: both are < 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return f.prime - a
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

// Mul returns a*b mod p, via a 128-bit accumulator rather than the
// math/bits hi:lo pair (see SPEC_FULL S4.1: this is the first real call
// site for the uint128 dependency the teacher's go.mod already carried).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return uint128.From64(a).Mul64(b).Mod64(f.prime)
}

// Pow computes base^exp mod p by square-and-multiply.
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	x := f.One()
	base = f.Reduce(base)

	for exp > 0 {
		if exp&1 == 1 {
			x = f.Mul(x, base)
		}

		base = f.Mul(base, base)
		exp >>= 1
	}

	return x
}

// Inverse computes the modular inverse of a via the extended Euclidean
// algorithm on (p, a), per spec S4.1 — not Fermat's little theorem.
// Panics if a == 0 (DivByZero, spec S7: a programming error).
func (f *PrimeField) Inverse(a uint64) uint64 {
	a = f.Reduce(a)
	if a == 0 {
		panic("field: inverse of zero")
	}

	v, newV := int64(0), int64(1)
	r, newR := int64(f.prime), int64(a)

	for newR != 0 {
		q := r / newR
		v, newV = newV, v-q*newV
		r, newR = newR, r-q*newR
	}

	if v < 0 {
		v += int64(f.prime)
	}

	return uint64(v)
}

func (f *PrimeField) Div(a, b uint64) uint64 {
	return f.Mul(a, f.Inverse(b))
}

var (
	errNotPowerOfTwo = errors.New("field: n must be a power of 2")
	errNotDivisible  = errors.New("field: n must divide p-1")
	errNSTooSmall    = errors.New("field: n must be >= 2")
)

// GetRootOfUnity returns a generator of the (unique) subgroup of order n,
// when n is a power of two dividing p-1. Kept from the teacher as a
// property of any cyclic prime field; unused by the BCH/RS pipeline
// itself but exercised by its own tests (SPEC_FULL S4.1).
func (f *PrimeField) GetRootOfUnity(n uint64) (uint64, error) {
	if n == 0 || n == 1 {
		return 0, errNSTooSmall
	}

	if !IsPowerOfTwo(n) {
		return 0, errNotPowerOfTwo
	}

	if (f.prime-1)%n != 0 {
		return 0, errNotDivisible
	}

	return f.Pow(f.generator, (f.prime-1)/n), nil
}

func IsPowerOfTwo(n uint64) bool {
	return n != 0 && (n&(n-1)) == 0
}
