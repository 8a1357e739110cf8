package bignum

import "fmt"

// atanSeries sums x - x^3/3 + x^5/5 - ... until a term drops below eps.
// It converges for |x| <= 1 and quickly for |x| <= 1/2.
func atanSeries(x, eps Rational) Rational {
	x2 := x.Mul(x).Neg()
	var sum Rational
	pow := x
	for n := int64(1); ; n += 2 {
		term := pow.quo(rat(n, 1))
		if term.Abs().Cmp(eps) < 0 {
			return sum
		}
		sum = sum.Add(term)
		pow = pow.Mul(x2)
	}
}

// asinSeries sums the Maclaurin series of the arcsine, where each term
// is t_n = t_(n-1)*x^2*(2n-1)^2/((2n)(2n+1)), until a term drops below eps.
func asinSeries(x, eps Rational) Rational {
	x2 := x.Mul(x)
	var sum Rational
	term := x
	for n := int64(1); term.Abs().Cmp(eps) >= 0; n++ {
		sum = sum.Add(term)
		term = term.Mul(x2).Mul(rat((2*n-1)*(2*n-1), (2*n)*(2*n+1)))
	}
	return sum
}

// Asin returns the arcsine of r in [-pi/2, pi/2] with an absolute error
// less than eps. A zero eps means [DefaultEpsilon].
// Asin returns an error if eps is negative or |r| > 1.
func (r Rational) Asin(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	a, err := asin(r, eps)
	if err != nil {
		return Rational{}, fmt.Errorf("computing [asin(%v)]: %w", r, err)
	}
	return a, nil
}

func asin(x, eps Rational) (Rational, error) {
	ax := x.Abs()
	switch ax.Cmp(rat(1, 1)) {
	case 1:
		return Rational{}, ErrDomain
	case 0:
		return withSign(pi(eps.Mul(rat(1, 2))).Mul(rat(1, 2)), x), nil
	}
	if ax.Cmp(rat(1, 2)) <= 0 {
		return asinSeries(x, eps), nil
	}
	// asin|x| = pi/2 - 2*asin(sqrt((1-|x|)/2))
	s := rootNewton(rat(1, 1).Sub(ax).Mul(rat(1, 2)), 2, eps.Mul(rat(1, 16)))
	a := asinSeries(s, eps.Mul(rat(1, 8)))
	p := pi(eps.Mul(rat(1, 4)))
	return withSign(p.Mul(rat(1, 2)).Sub(a.Mul(rat(2, 1))), x), nil
}

// withSign returns |v| with the sign of x.
func withSign(v, x Rational) Rational {
	if x.IsNeg() {
		return v.Neg()
	}
	return v
}

// Acos returns the arccosine of r in [0, pi], computed as pi/2 - asin(r),
// with an absolute error less than eps. A zero eps means [DefaultEpsilon].
// Acos returns an error if eps is negative or |r| > 1.
func (r Rational) Acos(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	half := eps.Mul(rat(1, 2))
	a, err := asin(r, half)
	if err != nil {
		return Rational{}, fmt.Errorf("computing [acos(%v)]: %w", r, err)
	}
	return pi(half).Mul(rat(1, 2)).Sub(a), nil
}

// Atan returns the arctangent of r in (-pi/2, pi/2) with an absolute
// error less than eps. A zero eps means [DefaultEpsilon].
// Atan returns an error if eps is negative.
func (r Rational) Atan(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	return atan(r, eps), nil
}

// atan reduces x into [-1/2, 1/2] before summing the series:
//
//	|x| > 1:       atan x = sign(x)*pi/2 - atan(1/x)
//	1/2 < |x| < 1: atan x = sign(x)*(pi/4 + atan((|x|-1)/(|x|+1)))
func atan(x, eps Rational) Rational {
	ax := x.Abs()
	half := eps.Mul(rat(1, 2))
	switch ax.Cmp(rat(1, 1)) {
	case 1:
		inv := reduce(x.denom(), x.num)
		return withSign(pi(half).Mul(rat(1, 2)), x).Sub(atan(inv, half))
	case 0:
		return withSign(pi(eps).Mul(rat(1, 4)), x)
	}
	if ax.Cmp(rat(1, 2)) <= 0 {
		return atanSeries(x, eps)
	}
	w := ax.Sub(rat(1, 1)).quo(ax.Add(rat(1, 1)))
	return withSign(pi(half).Mul(rat(1, 4)).Add(atanSeries(w, half)), x)
}

// Acot returns the arccotangent of r in (0, pi), computed as
// pi/2 - atan(r), with an absolute error less than eps.
// A zero eps means [DefaultEpsilon].
// Acot returns an error if eps is negative.
func (r Rational) Acot(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	half := eps.Mul(rat(1, 2))
	return pi(half).Mul(rat(1, 2)).Sub(atan(r, half)), nil
}

// Asec returns the arcsecant of r, computed as acos(1/r).
// Asec returns an error if eps is negative, r is zero or |r| < 1.
func (r Rational) Asec(eps Rational) (Rational, error) {
	inv, err := r.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("computing [asec(%v)]: %w", r, err)
	}
	return inv.Acos(eps)
}

// Acsc returns the arccosecant of r, computed as asin(1/r).
// Acsc returns an error if eps is negative, r is zero or |r| < 1.
func (r Rational) Acsc(eps Rational) (Rational, error) {
	inv, err := r.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("computing [acsc(%v)]: %w", r, err)
	}
	return inv.Asin(eps)
}
