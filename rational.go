package bignum

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Rational represents an exact fraction of two Integers.
//
// Every Rational is kept in lowest terms: the numerator is never
// negative, the sign of the value is carried by the denominator,
// and gcd(numerator, |denominator|) = 1. Zero is 0/1.
// The zero value is 0.
type Rational struct {
	num Integer // never negative
	den Integer // carries the sign, zero only in the zero value
}

// NewRational returns the fraction num / den in lowest terms.
// NewRational returns an error if den is zero.
func NewRational(num, den Integer) (Rational, error) {
	if den.IsZero() {
		return Rational{}, fmt.Errorf("denominator of %v/%v: %w", num, den, ErrInvalidArgument)
	}
	return reduce(num, den), nil
}

// NewRationalFromInt64 returns the fraction num / den in lowest terms.
// NewRationalFromInt64 returns an error if den is zero.
func NewRationalFromInt64(num, den int64) (Rational, error) {
	return NewRational(NewInteger(num), NewInteger(den))
}

// NewRationalFromInteger returns the fraction x / 1.
func NewRationalFromInteger(x Integer) Rational {
	return reduce(x, NewInteger(1))
}

// rat returns num / den for a known non-zero den.
func rat(num, den int64) Rational {
	return reduce(NewInteger(num), NewInteger(den))
}

// reduce returns num / den in lowest terms with the sign
// moved to the denominator. The den must not be zero.
func reduce(num, den Integer) Rational {
	if num.IsZero() {
		return Rational{den: NewInteger(1)}
	}
	if num.IsNeg() {
		num, den = num.Neg(), den.Neg()
	}
	g := GCD(num, den)
	if !g.IsOne() {
		num, _ = quoRemPos(num, g)
		d, _ := quoRemPos(den.Abs(), g)
		if den.IsNeg() {
			d = d.Neg()
		}
		den = d
	}
	return Rational{num: num, den: den}
}

// ParseRational converts a string to a Rational.
// The accepted forms are:
//
//	[sign]digits/[sign]digits
//	[sign]digits.digits
//	[sign].digits
//	[sign]digits
//
// Spaces are ignored.
func ParseRational(s string) (Rational, error) {
	t := strings.ReplaceAll(s, " ", "")
	if i := strings.IndexByte(t, '/'); i >= 0 {
		num, err := ParseInteger(t[:i], 10)
		if err != nil {
			return Rational{}, fmt.Errorf("numerator of %q: %w", s, err)
		}
		den, err := ParseInteger(t[i+1:], 10)
		if err != nil {
			return Rational{}, fmt.Errorf("denominator of %q: %w", s, err)
		}
		return NewRational(num, den)
	}
	if i := strings.IndexByte(t, '.'); i >= 0 {
		whole, frac := t[:i], t[i+1:]
		if frac == "" {
			return Rational{}, fmt.Errorf("no fractional digits in %q: %w", s, ErrInvalidArgument)
		}
		if frac[0] == '-' || frac[0] == '+' {
			return Rational{}, fmt.Errorf("invalid character %q in %q: %w", frac[0], s, ErrInvalidArgument)
		}
		num, err := ParseInteger(whole+frac, 10)
		if err != nil {
			return Rational{}, fmt.Errorf("decimal %q: %w", s, err)
		}
		den := NewInteger(10).Pow(uint(len(frac)))
		return reduce(num, den), nil
	}
	num, err := ParseInteger(t, 10)
	if err != nil {
		return Rational{}, fmt.Errorf("integer %q: %w", s, err)
	}
	return NewRationalFromInteger(num), nil
}

// denom returns the denominator, treating the zero value as 0/1.
func (r Rational) denom() Integer {
	if r.den.IsZero() {
		return NewInteger(1)
	}
	return r.den
}

// Num returns the numerator of r, which is never negative.
func (r Rational) Num() Integer {
	return r.num
}

// Denom returns the denominator of r, which carries the sign of r.
func (r Rational) Denom() Integer {
	return r.denom()
}

// String implements the [fmt.Stringer] interface and returns
// the fraction as "num/den", or just "num" when the denominator is 1.
// A negative fraction is prefixed with a minus sign.
func (r Rational) String() string {
	var b strings.Builder
	if r.IsNeg() {
		b.WriteByte('-')
	}
	b.WriteString(r.num.String())
	if den := r.denom().Abs(); !den.IsOne() {
		b.WriteByte('/')
		b.WriteString(den.String())
	}
	return b.String()
}

// DecimalString returns r as a decimal with at most prec digits after the
// decimal point. Excess digits are truncated and trailing zeros
// are not printed. A minus sign is printed only if at least one
// printed digit is not zero.
func (r Rational) DecimalString(prec int) string {
	den := r.denom().Abs()
	q, rem := quoRemPos(r.num, den)
	whole := q.String()
	nonzero := !q.IsZero()

	var frac []byte
	ten := NewInteger(10)
	for i := 0; i < prec && !rem.IsZero(); i++ {
		var d Integer
		d, rem = quoRemPos(rem.Mul(ten), den)
		v, _ := d.Int64()
		if v != 0 {
			nonzero = true
		}
		frac = append(frac, byte('0'+v))
	}
	frac = bytes.TrimRight(frac, "0")

	var b strings.Builder
	if r.IsNeg() && nonzero {
		b.WriteByte('-')
	}
	b.WriteString(whole)
	if len(frac) > 0 {
		b.WriteByte('.')
		b.Write(frac)
	}
	return b.String()
}

// Float64 returns a float64 approximation of r.
func (r Rational) Float64() (float64, bool) {
	den := r.denom().Abs()
	prec := 20
	if e := den.BitLen() - r.num.BitLen(); e > 0 {
		prec += e*3/10 + 1
	}
	f, err := strconv.ParseFloat(r.DecimalString(prec), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rational) Sign() int {
	if r.num.IsZero() {
		return 0
	}
	return r.den.Sign()
}

// IsZero returns true if r == 0.
func (r Rational) IsZero() bool {
	return r.num.IsZero()
}

// IsNeg returns true if r < 0.
func (r Rational) IsNeg() bool {
	return r.Sign() < 0
}

// IsPos returns true if r > 0.
func (r Rational) IsPos() bool {
	return r.Sign() > 0
}

// IsInt returns true if the denominator of r is 1 or -1.
func (r Rational) IsInt() bool {
	return r.denom().Abs().IsOne()
}

// Cmp compares r and s and returns:
//
//	-1 if r < s
//	 0 if r = s
//	+1 if r > s
func (r Rational) Cmp(s Rational) int {
	rs, ss := r.Sign(), s.Sign()
	switch {
	case rs < ss:
		return -1
	case rs > ss:
		return 1
	case rs == 0:
		return 0
	}
	a := r.num.Mul(s.denom().Abs())
	b := s.num.Mul(r.denom().Abs())
	return rs * a.Cmp(b)
}

// Equal returns true if r and s are equal.
func (r Rational) Equal(s Rational) bool {
	return r.num.Equal(s.num) && r.denom().Equal(s.denom())
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.IsZero() {
		return r
	}
	return Rational{num: r.num, den: r.den.Neg()}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.IsNeg() {
		return r.Neg()
	}
	return r
}

// Add returns the sum r + s.
func (r Rational) Add(s Rational) Rational {
	rd, sd := r.denom(), s.denom()
	return reduce(r.num.Mul(sd).Add(s.num.Mul(rd)), rd.Mul(sd))
}

// Sub returns the difference r - s.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Neg())
}

// Mul returns the product r * s.
func (r Rational) Mul(s Rational) Rational {
	return reduce(r.num.Mul(s.num), r.denom().Mul(s.denom()))
}

// Quo returns the quotient r / s.
// Quo returns an error if s is zero.
func (r Rational) Quo(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r, s, ErrZeroDivision)
	}
	return r.quo(s), nil
}

// quo returns r / s for a known non-zero s.
func (r Rational) quo(s Rational) Rational {
	return reduce(r.num.Mul(s.denom()), r.denom().Mul(s.num))
}

// Inv returns the reciprocal 1 / r.
// Inv returns an error if r is zero.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("computing [1 / %v]: %w", r, ErrZeroDivision)
	}
	return reduce(r.denom(), r.num), nil
}

// Trunc returns the integer part of r, rounded towards zero.
func (r Rational) Trunc() Integer {
	q, _ := quoRemPos(r.num, r.denom().Abs())
	if r.IsNeg() {
		return q.Neg()
	}
	return q
}

// Floor returns the largest integer less than or equal to r.
func (r Rational) Floor() Integer {
	q, rem := quoRemPos(r.num, r.denom().Abs())
	if r.IsNeg() {
		if !rem.IsZero() {
			q = q.Inc()
		}
		return q.Neg()
	}
	return q
}

// Ceil returns the smallest integer greater than or equal to r.
func (r Rational) Ceil() Integer {
	q, rem := quoRemPos(r.num, r.denom().Abs())
	if r.IsNeg() {
		return q.Neg()
	}
	if !rem.IsZero() {
		q = q.Inc()
	}
	return q
}

// Pow returns r raised to the power of exp.
// Pow returns an error if r is zero and exp is negative.
func (r Rational) Pow(exp int) (Rational, error) {
	if exp < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rational{}, fmt.Errorf("computing [%v^%v]: %w", r, exp, ErrZeroDivision)
		}
		return inv.pow(uint(-exp)), nil
	}
	return r.pow(uint(exp)), nil
}

// pow returns r raised to a non-negative power.
// Numerator and denominator are coprime, so are their powers.
func (r Rational) pow(exp uint) Rational {
	return Rational{num: r.num.Pow(exp), den: r.denom().Pow(exp)}
}
