package bignum

import "fmt"

const (
	// reductionThreshold is the magnitude above which sine and cosine
	// arguments are reduced modulo 2*pi.
	reductionThreshold = 7
	// tanMaxTerms bounds the number of terms of the tangent series.
	tanMaxTerms = 1000
)

// reduceAngle returns x - k*m*pi for the integer k nearest to x/(m*pi),
// with an error less than eps. The result lies within a little more
// than m*pi/2 of zero.
func reduceAngle(x Rational, m int64, eps Rational) Rational {
	// With pi precise to 1/(8(|x|+1)) the period count is off by at most one.
	coarse := rat(1, 8).quo(NewRationalFromInteger(x.Abs().Trunc().Inc()))
	period := pi(coarse).Mul(rat(m, 1))
	k := x.quo(period).Add(rat(1, 2)).Floor()
	if k.IsZero() {
		return x
	}
	// Each removed period contributes m times the error of pi.
	prec := eps.quo(NewRationalFromInteger(k.Abs().Inc().Mul(NewInteger(4 * m))))
	period = pi(prec).Mul(rat(m, 1))
	y := x.Sub(NewRationalFromInteger(k).Mul(period))
	return roundDyadic(y, gridBits(eps))
}

// Sin returns the sine of r with an absolute error less than eps.
// A zero eps means [DefaultEpsilon].
// Sin returns an error if eps is negative.
func (r Rational) Sin(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	x := r
	if x.Abs().Cmp(rat(reductionThreshold, 1)) > 0 {
		x = reduceAngle(x, 2, eps.Mul(rat(1, 4)))
	}
	return sinSeries(x, eps.Mul(rat(1, 2))), nil
}

// Cos returns the cosine of r with an absolute error less than eps.
// A zero eps means [DefaultEpsilon].
// Cos returns an error if eps is negative.
func (r Rational) Cos(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	x := r
	if x.Abs().Cmp(rat(reductionThreshold, 1)) > 0 {
		x = reduceAngle(x, 2, eps.Mul(rat(1, 4)))
	}
	return cosSeries(x, eps.Mul(rat(1, 2))), nil
}

// sinSeries sums x - x^3/3! + x^5/5! - ... until a term drops below eps.
func sinSeries(x, eps Rational) Rational {
	x2 := x.Mul(x).Neg()
	var sum Rational
	term := x
	for n := int64(1); term.Abs().Cmp(eps) >= 0; n++ {
		sum = sum.Add(term)
		term = term.Mul(x2).quo(rat((2*n)*(2*n+1), 1))
	}
	return sum
}

// cosSeries sums 1 - x^2/2! + x^4/4! - ... until a term drops below eps.
func cosSeries(x, eps Rational) Rational {
	x2 := x.Mul(x).Neg()
	var sum Rational
	term := rat(1, 1)
	for n := int64(1); term.Abs().Cmp(eps) >= 0; n++ {
		sum = sum.Add(term)
		term = term.Mul(x2).quo(rat((2*n-1)*(2*n), 1))
	}
	return sum
}

// Tan returns the tangent of r with an absolute error less than eps.
// A zero eps means [DefaultEpsilon].
// Tan returns an error if eps is negative or if r is within eps of a pole.
func (r Rational) Tan(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	x := foldTan(r, eps.Mul(rat(1, 16)))
	neg := x.IsNeg()
	x = x.Abs()
	halfPi := pi(eps.Mul(rat(1, 16))).Mul(rat(1, 2))
	if x.Cmp(halfPi.Sub(eps)) > 0 {
		return Rational{}, fmt.Errorf("computing [tan(%v)]: %w", r, ErrDomain)
	}

	var t Rational
	if x.Cmp(halfPi.Mul(rat(1, 2))) <= 0 {
		x = roundDyadic(x, gridBits(eps.Mul(rat(1, 8))))
		t = tanSeries(x, eps.Mul(rat(1, 4)))
	} else {
		// tan x = 1/tan(pi/2 - x), where the error of the reciprocal
		// grows like 1/y^2 for y = pi/2 - x.
		y := roundDyadic(halfPi.Sub(x), gridBits(eps))
		tol := eps.Mul(y).Mul(y).Mul(rat(1, 32))
		x = foldTan(r, tol)
		neg = x.IsNeg()
		y = pi(tol).Mul(rat(1, 2)).Sub(x.Abs())
		y = roundDyadic(y, gridBits(tol))
		t = rat(1, 1).quo(tanSeries(y, tol))
	}
	if neg {
		return t.Neg(), nil
	}
	return t, nil
}

// foldTan returns r reduced modulo pi into [-pi/2, pi/2] with an error
// less than eps.
func foldTan(r, eps Rational) Rational {
	x := r
	if x.Abs().Cmp(rat(3, 2)) > 0 {
		x = reduceAngle(x, 1, eps.Mul(rat(1, 2)))
	}
	p := pi(eps.Mul(rat(1, 4)))
	halfPi := p.Mul(rat(1, 2))
	switch {
	case x.Cmp(halfPi) > 0:
		x = x.Sub(p)
	case x.Cmp(halfPi.Neg()) < 0:
		x = x.Add(p)
	}
	return x
}

// tanSeries sums the Maclaurin series of the tangent
//
//	tan x = sum B_2n*(-4)^n*(1-4^n)/(2n)! * x^(2n-1)
//
// until a term drops below eps or the term limit is reached.
// It converges quickly for |x| <= pi/4.
func tanSeries(x, eps Rational) Rational {
	x2 := x.Mul(x)
	var sum Rational
	xpow := x             // x^(2n-1)
	fact := NewInteger(1) // (2n)!
	pow4 := NewInteger(1) // 4^n
	for n := int64(1); n <= tanMaxTerms; n++ {
		fact = fact.Mul(NewInteger((2*n - 1) * (2 * n)))
		pow4 = pow4.Lsh(2)
		coef := NewInteger(1).Sub(pow4).Mul(pow4) // (-4)^n*(1-4^n), up to sign
		if n%2 == 1 {
			coef = coef.Neg()
		}
		term := bernoulli(int(2 * n)).Mul(xpow).Mul(reduce(coef, fact))
		if term.Abs().Cmp(eps) < 0 {
			break
		}
		sum = sum.Add(term)
		xpow = xpow.Mul(x2)
	}
	return sum
}

// Cot returns the cotangent of r, computed as 1 / tan(r).
// Cot returns an error if eps is negative, if r is a pole of
// the tangent, or if the tangent is zero.
func (r Rational) Cot(eps Rational) (Rational, error) {
	t, err := r.Tan(eps)
	if err != nil {
		return Rational{}, err
	}
	c, err := t.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("computing [cot(%v)]: %w", r, err)
	}
	return c, nil
}

// Sec returns the secant of r, computed as 1 / cos(r).
// Sec returns an error if eps is negative or the cosine is zero.
func (r Rational) Sec(eps Rational) (Rational, error) {
	c, err := r.Cos(eps)
	if err != nil {
		return Rational{}, err
	}
	s, err := c.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("computing [sec(%v)]: %w", r, err)
	}
	return s, nil
}

// Csc returns the cosecant of r, computed as 1 / sin(r).
// Csc returns an error if eps is negative or the sine is zero.
func (r Rational) Csc(eps Rational) (Rational, error) {
	s, err := r.Sin(eps)
	if err != nil {
		return Rational{}, err
	}
	c, err := s.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("computing [csc(%v)]: %w", r, err)
	}
	return c, nil
}
