package bignum

import "fmt"

// MustParseInteger is like [ParseInteger] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseInteger(s string, base int) Integer {
	x, err := ParseInteger(s, base)
	if err != nil {
		panic(fmt.Sprintf("MustParseInteger(%q, %v) failed: %v", s, base, err))
	}
	return x
}

// MustNewRational is like [NewRational] but panics if the rational cannot be constructed.
// It simplifies safe initialization of global variables holding rationals.
func MustNewRational(num, den Integer) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewRational(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// MustParseRational is like [ParseRational] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParseRational(s string) Rational {
	r, err := ParseRational(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRational(%q) failed: %v", s, err))
	}
	return r
}

// MustQuoRem is like [Integer.QuoRem] but panics if computing error.
func (x Integer) MustQuoRem(y Integer) (Integer, Integer) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", y, err))
	}
	return q, r
}

// MustQuo is like [Rational.Quo] but panics if computing error.
func (r Rational) MustQuo(s Rational) Rational {
	q, err := r.Quo(s)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", s, err))
	}
	return q
}

// MustInv is like [Rational.Inv] but panics if computing error.
func (r Rational) MustInv() Rational {
	q, err := r.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv(%v) failed: %v", r, err))
	}
	return q
}

// MustPi is like [Pi] but panics if computing error.
func MustPi(eps Rational) Rational {
	p, err := Pi(eps)
	if err != nil {
		panic(fmt.Sprintf("MustPi(%v) failed: %v", eps, err))
	}
	return p
}
