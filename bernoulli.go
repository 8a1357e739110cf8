package bignum

import "sync"

// bernoulliCache holds the Bernoulli numbers B_0, B_1, ... computed so far.
var bernoulliCache = struct {
	mu  sync.Mutex
	seq []Rational
}{
	seq: []Rational{rat(1, 1), rat(-1, 2)},
}

// bernoulli returns the Bernoulli number B_n, extending the cache
// by the recurrence
//
//	B_m = -1/(m+1) * sum_{k<m} C(m+1, k)*B_k
//
// as needed. B_n is zero for every odd n > 1.
func bernoulli(n int) Rational {
	if n > 1 && n%2 == 1 {
		return Rational{}
	}
	c := &bernoulliCache
	c.mu.Lock()
	defer c.mu.Unlock()
	for m := len(c.seq); m <= n; m++ {
		if m%2 == 1 {
			c.seq = append(c.seq, Rational{})
			continue
		}
		var sum Rational
		binom := NewInteger(1) // C(m+1, k)
		for k := 0; k < m; k++ {
			if b := c.seq[k]; !b.IsZero() {
				sum = sum.Add(NewRationalFromInteger(binom).Mul(b))
			}
			binom, _ = quoRemPos(binom.Mul(NewInteger(int64(m+1-k))), NewInteger(int64(k+1)))
		}
		c.seq = append(c.seq, sum.Neg().quo(rat(int64(m+1), 1)))
	}
	return c.seq[n]
}
