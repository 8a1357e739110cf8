package bignum

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// DefaultEpsilon returns the convergence threshold used when
// a transcendental function is called with a zero epsilon.
func DefaultEpsilon() Rational {
	return rat(1, 1_000_000)
}

// epsilon validates eps and substitutes the default for zero.
func epsilon(eps Rational) (Rational, error) {
	switch eps.Sign() {
	case -1:
		return Rational{}, fmt.Errorf("epsilon %v: %w", eps, ErrInvalidArgument)
	case 0:
		return DefaultEpsilon(), nil
	}
	return eps, nil
}

// constCache memoizes a constant by the exact epsilon it was computed
// with. Entries are never evicted. Concurrent first requests for the
// same epsilon share a single computation.
type constCache struct {
	compute func(eps Rational) Rational

	mu       sync.Mutex
	vals     map[string]Rational
	group    singleflight.Group
	computed atomic.Int64
}

func newConstCache(compute func(eps Rational) Rational) *constCache {
	return &constCache{
		compute: compute,
		vals:    make(map[string]Rational),
	}
}

func (c *constCache) lookup(key string) (Rational, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.vals[key]
	return v, ok
}

// get returns the constant for eps, computing it on a miss.
func (c *constCache) get(eps Rational) Rational {
	key := eps.String()
	if v, ok := c.lookup(key); ok {
		return v
	}
	v, _, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v := c.compute(eps)
		c.computed.Add(1)
		c.mu.Lock()
		c.vals[key] = v
		c.mu.Unlock()
		return v, nil
	})
	return v.(Rational)
}

var piCache = newConstCache(computePi)

// Pi returns pi with an absolute error less than eps.
// Values are cached by eps, so repeated calls with the same eps
// return the same value without recomputation.
// Pi returns an error if eps is negative.
func Pi(eps Rational) (Rational, error) {
	eps, err := epsilon(eps)
	if err != nil {
		return Rational{}, err
	}
	return piCache.get(eps), nil
}

// pi is Pi for an already validated eps.
func pi(eps Rational) Rational {
	return piCache.get(eps)
}

// computePi evaluates Machin's formula
//
//	pi = 16*atan(1/5) - 4*atan(1/239)
//
// with both arctangents computed concurrently.
func computePi(eps Rational) Rational {
	var a, b Rational
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a = atanSeries(rat(1, 5), eps.Mul(rat(1, 32)))
	}()
	go func() {
		defer wg.Done()
		b = atanSeries(rat(1, 239), eps.Mul(rat(1, 8)))
	}()
	wg.Wait()
	return a.Mul(rat(16, 1)).Sub(b.Mul(rat(4, 1)))
}
