package bignum

import "fmt"

// Sqrt returns the square root of r with an absolute error less than eps.
// A zero eps means [DefaultEpsilon].
// Sqrt returns an error if eps or r is negative.
func (r Rational) Sqrt(eps Rational) (Rational, error) {
	return r.Root(2, eps)
}

// Root returns the n-th root of r with an absolute error less than eps.
// A negative n gives the root of 1/r. A zero eps means [DefaultEpsilon].
// Root returns an error if eps is negative, n is zero, r is zero and n is
// negative, or r is negative and n is even.
func (r Rational) Root(n int, eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	switch {
	case n == 0:
		return Rational{}, fmt.Errorf("computing [root(%v, 0)]: %w", r, ErrInvalidArgument)
	case n < 0:
		inv, err := r.Inv()
		if err != nil {
			return Rational{}, fmt.Errorf("computing [root(%v, %v)]: %w", r, n, err)
		}
		return inv.Root(-n, eps)
	case r.IsNeg() && n%2 == 0:
		return Rational{}, fmt.Errorf("computing [root(%v, %v)]: %w", r, n, ErrDomain)
	case r.IsZero():
		return Rational{}, nil
	case n == 1:
		return r, nil
	}
	return rootNewton(r, n, eps), nil
}

// rootNewton computes the n-th root of a non-zero r by the Newton-Raphson
// iteration
//
//	x = ((n-1)*x + r/x^(n-1)) / n
//
// started from the smallest power of two whose n-th power is at least |r|.
// It stops when successive iterates differ by at most eps.
// Iterates are rounded to a dyadic grid finer than eps/4, which keeps
// their numerators and denominators small.
func rootNewton(r Rational, n int, eps Rational) Rational {
	a := r.Abs()
	x := rat(1, 1)
	for x.pow(uint(n)).Cmp(a) < 0 {
		x = x.Mul(rat(2, 1))
	}
	x = withSign(x, r)

	grid := gridBits(eps)
	nr := rat(int64(n), 1)
	n1 := rat(int64(n-1), 1)
	for {
		prev := x
		x = x.Mul(n1).Add(r.quo(x.pow(uint(n - 1)))).quo(nr)
		if s := roundDyadic(x, grid); !s.IsZero() {
			x = s
		}
		if x.Sub(prev).Abs().Cmp(eps) <= 0 {
			return x
		}
	}
}

// gridBits returns k such that 2^(-k) <= eps/4, so rounding to a multiple
// of 2^(-k) moves a value by at most eps/8.
func gridBits(eps Rational) uint {
	return uint(max(eps.denom().Abs().BitLen()-eps.num.BitLen()+3, 0))
}

// roundDyadic rounds r to the nearest multiple of 2^(-k).
func roundDyadic(r Rational, k uint) Rational {
	den := r.denom().Abs()
	q, rem := quoRemPos(r.num.Lsh(k), den)
	if rem.Lsh(1).Cmp(den) >= 0 {
		q = q.Inc()
	}
	if r.IsNeg() {
		q = q.Neg()
	}
	return reduce(q, NewInteger(1).Lsh(k))
}
