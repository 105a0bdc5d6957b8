package field

import "errors"

// Error kinds surfaced by field construction and scalar arithmetic.
//
// DivByZero conditions (Inverse/Div of 0) are programming errors in the
// core's inner loops: callers that can't rule them out ahead of time should
// recover from the panic rather than expect an error return, matching the
// teacher's own PrimeField.Inverse behavior.
var (
	ErrPrimeTooLarge   = errors.New("field: supporting up to 63-bit prime")
	ErrNotPrime        = errors.New("field: p must be prime")
	ErrInvalidDegree   = errors.New("field: k must be >= 1")
	ErrNotIrreducible  = errors.New("field: poly is not irreducible over the base field")
	ErrNotPrimitive    = errors.New("field: alpha is not a primitive element modulo poly")
	ErrNoIrreducible   = errors.New("field: exhausted candidates without finding an irreducible/primitive pair")
	ErrZeroHasNoLog    = errors.New("field: zero has no discrete logarithm")
	ErrNonUniquePoints = errors.New("field: roots/evaluation points must be unique")
	ErrNotCoprime      = errors.New("field: minimal polynomial factors are not pairwise coprime")
)
