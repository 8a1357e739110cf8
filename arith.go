package bignum

import "fmt"

// karatsubaThreshold is the operand length in words from which
// multiplication switches to the Karatsuba algorithm.
// It is a variable so that tests can lower it.
var karatsubaThreshold = 40

// Add returns the sum x + y.
func (x Integer) Add(y Integer) Integer {
	switch {
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	case x.IsNeg() == y.IsNeg():
		return addSameSign(x, y)
	}
	ax, ay := x.Abs(), y.Abs()
	switch ax.Cmp(ay) {
	case 1:
		d := subPos(ax, ay)
		if x.IsNeg() {
			return d.Neg()
		}
		return d
	case -1:
		d := subPos(ay, ax)
		if y.IsNeg() {
			return d.Neg()
		}
		return d
	}
	return Integer{}
}

// Sub returns the difference x - y.
func (x Integer) Sub(y Integer) Integer {
	return x.Add(y.Neg())
}

// addSameSign adds x and y of the same sign over the longer operand
// plus one guard word.
func addSameSign(x, y Integer) Integer {
	n := max(len(x.w), len(y.w)) + 1
	z := make([]word, n)
	var c word
	for i := range z {
		c, z[i] = addWW(x.at(i), y.at(i), c)
	}
	return normalize(z)
}

// subPos returns x - y for x >= y >= 0.
func subPos(x, y Integer) Integer {
	z := make([]word, len(x.w))
	subVV(z, x.w, y.w)
	return normalize(z)
}

// Mul returns the product x * y.
func (x Integer) Mul(y Integer) Integer {
	if x.IsZero() || y.IsZero() {
		return Integer{}
	}
	z := mulPos(x.Abs(), y.Abs())
	if x.IsNeg() != y.IsNeg() {
		return z.Neg()
	}
	return z
}

// mulPos multiplies non-negative x and y.
func mulPos(x, y Integer) Integer {
	if len(x.w) >= karatsubaThreshold && len(y.w) >= karatsubaThreshold {
		return mulKaratsuba(x, y)
	}
	return mulSchoolbook(x, y)
}

// mulSchoolbook multiplies non-negative x and y word by word.
// Every word is split into 32-bit halves, so each partial product
// fits into a single word and is accumulated at its bit offset.
func mulSchoolbook(x, y Integer) Integer {
	if x.IsZero() || y.IsZero() {
		return Integer{}
	}
	z := make([]word, len(x.w)+len(y.w)+1)
	for i, xi := range x.w {
		if xi == 0 {
			continue
		}
		x0, x1 := loword(xi), hiword(xi)
		for j, yj := range y.w {
			if yj == 0 {
				continue
			}
			y0, y1 := loword(yj), hiword(yj)
			accumulate(z, x0*y0, i+j, 0)
			accumulate(z, x0*y1, i+j, halfBits)
			accumulate(z, x1*y0, i+j, halfBits)
			accumulate(z, x1*y1, i+j+1, 0)
		}
	}
	return normalize(z)
}

// accumulate adds p << shift to z starting at word k.
func accumulate(z []word, p word, k int, shift uint) {
	if p == 0 {
		return
	}
	var c word
	c, z[k] = addWW(z[k], p<<shift, 0)
	c, z[k+1] = addWW(z[k+1], p>>(wordBits-shift), c)
	for i := k + 2; c != 0; i++ {
		c, z[i] = addWW(z[i], 0, c)
	}
}

// mulKaratsuba multiplies non-negative x and y by splitting both at
// half of the longer length and doing three recursive multiplications.
func mulKaratsuba(x, y Integer) Integer {
	m := max(len(x.w), len(y.w)) / 2
	x0, x1 := x.lower(m), x.upper(m)
	y0, y1 := y.lower(m), y.upper(m)
	z0 := mulPos(x0, y0)
	z2 := mulPos(x1, y1)
	z1 := mulPos(x0.Add(x1), y0.Add(y1)).Sub(z0).Sub(z2)
	s := uint(m * wordBits)
	return z0.Add(z1.Lsh(s)).Add(z2.Lsh(2 * s))
}

// lower returns the lowest m words of a non-negative x.
func (x Integer) lower(m int) Integer {
	m = min(m, len(x.w))
	z := make([]word, m, m+1)
	copy(z, x.w)
	return fromMag(z)
}

// upper returns a non-negative x without its lowest m words.
func (x Integer) upper(m int) Integer {
	if m >= len(x.w) {
		return Integer{}
	}
	z := make([]word, len(x.w)-m)
	copy(z, x.w[m:])
	return normalize(z)
}

// QuoRem returns the quotient q and the remainder r of the Euclidean
// division x / y, such that
//
//	x = q * y + r
//	0 <= r < |y|
//
// QuoRem returns an error if y is zero.
func (x Integer) QuoRem(y Integer) (q, r Integer, err error) {
	if y.IsZero() {
		if x.IsZero() {
			return Integer{}, Integer{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrMathematicalUncertainty)
		}
		return Integer{}, Integer{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrZeroDivision)
	}
	if x.IsZero() {
		return Integer{}, Integer{}, nil
	}
	ay := y.Abs()
	q, r = quoRemPos(x.Abs(), ay)
	switch {
	case !x.IsNeg():
		if y.IsNeg() {
			q = q.Neg()
		}
	case r.IsZero():
		if !y.IsNeg() {
			q = q.Neg()
		}
	default:
		r = ay.Sub(r)
		q = q.Inc()
		if !y.IsNeg() {
			q = q.Neg()
		}
	}
	return q, r, nil
}

// Quo returns the Euclidean quotient x / y.
// See [Integer.QuoRem] for details.
func (x Integer) Quo(y Integer) (Integer, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the Euclidean remainder, which is never negative.
// See [Integer.QuoRem] for details.
func (x Integer) Rem(y Integer) (Integer, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// quoRemPos divides x >= 0 by y > 0. It aligns the leading bit of the
// divisor with the leading bit of the remainder, subtracts, and sets
// the matching quotient bit until the remainder is less than the divisor.
func quoRemPos(x, y Integer) (q, r Integer) {
	if cmpVV(x.w, y.w) < 0 {
		return Integer{}, x
	}
	n := len(x.w)
	rem := make([]word, n)
	copy(rem, x.w)
	quo := make([]word, n+1)
	d := make([]word, n)
	ybits := y.msb()
	for cmpVV(rem, y.w) >= 0 {
		shift := msbVV(rem) - ybits
		shlVU(d, y.w, shift)
		if cmpVV(d, rem) > 0 {
			shift--
			shlVU(d, y.w, shift)
		}
		subVV(rem, rem, d)
		quo[shift/wordBits] |= 1 << (shift % wordBits)
	}
	return normalize(quo), normalize(rem)
}

// Pow returns x raised to the power of exp.
func (x Integer) Pow(exp uint) Integer {
	z, p := NewInteger(1), x
	for exp > 0 {
		if exp&1 == 1 {
			z = z.Mul(p)
		}
		exp >>= 1
		if exp > 0 {
			p = p.Mul(p)
		}
	}
	return z
}

// GCD returns the greatest common divisor of |x| and |y|.
// GCD(0, 0) is 0.
func GCD(x, y Integer) Integer {
	a, b := x.Abs(), y.Abs()
	for !b.IsZero() {
		_, r := quoRemPos(a, b)
		a, b = b, r
	}
	return a
}

// Factorial returns n!.
func Factorial(n uint64) Integer {
	z := NewInteger(1)
	for i := uint64(2); i <= n; i++ {
		z = z.Mul(NewIntegerFromUint64(i))
	}
	return z
}
