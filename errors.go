package bignum

import "errors"

var (
	// ErrInvalidArgument is returned for malformed input: a bad digit string,
	// an unsupported base, a zero denominator or a negative epsilon.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrZeroDivision is returned when a non-zero value is divided by zero.
	ErrZeroDivision = errors.New("division by zero")
	// ErrMathematicalUncertainty is returned for the indeterminate form 0 / 0.
	ErrMathematicalUncertainty = errors.New("mathematical uncertainty")
	// ErrDomain is returned when a function is evaluated outside its domain.
	ErrDomain = errors.New("argument out of domain")
)
