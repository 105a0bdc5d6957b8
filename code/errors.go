package code

import "errors"

// Error kinds surfaced by code construction, encoding and decoding
// (spec S7). DecodeFail is always a returned error, never a panic — it
// is an expected, caller-visible outcome (too many errors to correct),
// unlike the field package's DivByZero panics.
var (
	ErrBounds       = errors.New("code: n/k/t out of bounds for this field")
	ErrMessageSize  = errors.New("code: message does not have exactly k symbols")
	ErrCodewordSize = errors.New("code: codeword does not have exactly n symbols")
	ErrDecodeFail   = errors.New("code: too many errors to correct")
)
