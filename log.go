package bignum

import "fmt"

var ln2Cache = newConstCache(func(eps Rational) Rational {
	return logSeries(rat(2, 1), eps)
})

// ln2 returns the natural logarithm of 2 with an absolute error less than eps.
func ln2(eps Rational) Rational {
	return ln2Cache.get(eps)
}

// logSeries computes ln x for x > 0 as
//
//	ln x = 2*(w + w^3/3 + w^5/5 + ...),  w = (x-1)/(x+1)
//
// with an absolute error less than eps.
func logSeries(x, eps Rational) Rational {
	w := x.Sub(rat(1, 1)).quo(x.Add(rat(1, 1)))
	w2 := w.Mul(w)
	tol := eps.Mul(rat(1, 4))
	var sum Rational
	pow := w
	for n := int64(1); ; n += 2 {
		term := pow.quo(rat(n, 1))
		if term.Abs().Cmp(tol) < 0 {
			return sum.Mul(rat(2, 1))
		}
		sum = sum.Add(term)
		pow = pow.Mul(w2)
	}
}

// Log returns the natural logarithm of r with an absolute error less
// than eps. A zero eps means [DefaultEpsilon].
// Log returns an error if eps is negative or r is not positive.
func (r Rational) Log(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	if !r.IsPos() {
		return Rational{}, fmt.Errorf("computing [log(%v)]: %w", r, ErrDomain)
	}
	return logarithm(r, eps), nil
}

// logarithm scales x by a power of two into [1/2, 1] and reconstructs
// ln x = ln(x*2^(-k)) + k*ln2.
func logarithm(x, eps Rational) Rational {
	k := x.num.BitLen() - x.denom().BitLen()
	x = x.mulPow2(-k)
	for x.Cmp(rat(1, 1)) > 0 {
		x = x.mulPow2(-1)
		k++
	}
	for x.Cmp(rat(1, 2)) < 0 {
		x = x.mulPow2(1)
		k--
	}
	if k == 0 {
		return logSeries(x, eps)
	}
	half := eps.Mul(rat(1, 2))
	abs := int64(k)
	if abs < 0 {
		abs = -abs
	}
	l := ln2(half.quo(rat(abs, 1)))
	return logSeries(x, half).Add(l.Mul(rat(int64(k), 1)))
}

// mulPow2 returns r*2^k.
func (r Rational) mulPow2(k int) Rational {
	switch {
	case k > 0:
		return reduce(r.num.Lsh(uint(k)), r.denom())
	case k < 0:
		return reduce(r.num, r.denom().Lsh(uint(-k)))
	}
	return r
}

// Log2 returns the binary logarithm of r with an absolute error less
// than eps. A zero eps means [DefaultEpsilon].
// Log2 returns an error if eps is negative or r is not positive.
func (r Rational) Log2(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	if !r.IsPos() {
		return Rational{}, fmt.Errorf("computing [log2(%v)]: %w", r, ErrDomain)
	}
	quarter := eps.Mul(rat(1, 4))
	a := logarithm(r, quarter)
	return a.quo(ln2(scaled(quarter, a))), nil
}

// Log10 returns the decimal logarithm of r with an absolute error less
// than eps. A zero eps means [DefaultEpsilon].
// Log10 returns an error if eps is negative or r is not positive.
func (r Rational) Log10(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	if !r.IsPos() {
		return Rational{}, fmt.Errorf("computing [log10(%v)]: %w", r, ErrDomain)
	}
	quarter := eps.Mul(rat(1, 4))
	a := logarithm(r, quarter)
	return a.quo(logarithm(rat(10, 1), scaled(quarter, a))), nil
}

// scaled returns eps / (|trunc(a)| + 1), the precision a divisor needs
// so that the error of the quotient a/divisor stays below eps.
func scaled(eps, a Rational) Rational {
	return eps.quo(NewRationalFromInteger(a.Trunc().Abs().Inc()))
}
