package bignum

import "math/bits"

// word is a single 64-bit digit of an Integer.
type word = uint64

const (
	wordBits = 64              // size of a word in bits
	halfBits = wordBits / 2    // size of a half-word in bits
	halfMask = 1<<halfBits - 1 // mask of the lower half-word
	signBit  = word(1) << 63   // sign bit of the most significant word
	allOnes  = ^word(0)        // sign extension of a negative Integer
	wordSize = wordBits / 8    // size of a word in bytes
)

// loword returns the lower half of x.
func loword(x word) word {
	return x & halfMask
}

// hiword returns the upper half of x.
func hiword(x word) word {
	return x >> halfBits
}

// addWW calculates z1<<64 + z0 = x + y + c, with c == 0 or 1.
func addWW(x, y, c word) (z1, z0 word) {
	yc := y + c
	z0 = x + yc
	if z0 < x || yc < y {
		z1 = 1
	}
	return z1, z0
}

// subWW calculates z0 = x - y - c and the borrow z1, with c == 0 or 1.
func subWW(x, y, c word) (z1, z0 word) {
	yc := y + c
	z0 = x - yc
	if z0 > x || yc < y {
		z1 = 1
	}
	return z1, z0
}

// mulWW calculates z1<<64 + z0 = x * y.
// Both factors are split into 32-bit halves, so every partial
// product fits into a single word.
func mulWW(x, y word) (z1, z0 word) {
	x0, x1 := loword(x), hiword(x)
	y0, y1 := loword(y), hiword(y)
	w0 := x0 * y0
	t := x1*y0 + hiword(w0)
	w1 := loword(t)
	w2 := hiword(t)
	w1 += x0 * y1
	z1 = x1*y1 + w2 + hiword(w1)
	z0 = x * y
	return z1, z0
}

// bitLen returns the length of x in bits.
func bitLen(x word) int {
	return bits.Len64(x)
}

// signExt returns the word that extends x beyond its most significant word.
func signExt(top word) word {
	if top&signBit != 0 {
		return allOnes
	}
	return 0
}

// mulAddVWW calculates z = x * y + r over the magnitude x and returns the carry.
func mulAddVWW(z, x []word, y, r word) (c word) {
	c = r
	for i := range x {
		hi, lo := mulWW(x[i], y)
		var cc word
		cc, z[i] = addWW(lo, c, 0)
		c = hi + cc
	}
	return c
}

// divWVW calculates z = x / y over the magnitude x and returns the remainder.
// It is used by text conversion, where the divisor always fits into a word.
func divWVW(z, x []word, y word) (r word) {
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

// The functions below treat word slices as unsigned magnitudes.
// Missing high words are zero.

// cmpVV compares magnitudes x and y.
func cmpVV(x, y []word) int {
	n := max(len(x), len(y))
	for i := n - 1; i >= 0; i-- {
		var xi, yi word
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		switch {
		case xi < yi:
			return -1
		case xi > yi:
			return 1
		}
	}
	return 0
}

// msbVV returns the index of the most significant set bit of x,
// or -1 if x is zero.
func msbVV(x []word) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*wordBits + bitLen(x[i]) - 1
		}
	}
	return -1
}

// shlVU sets z = x << s, discarding bits that do not fit into z.
func shlVU(z, x []word, s int) {
	clear(z)
	ws, bs := s/wordBits, uint(s%wordBits)
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] == 0 {
			continue
		}
		j := i + ws
		if j < len(z) {
			z[j] |= x[i] << bs
		}
		if bs != 0 && j+1 < len(z) {
			z[j+1] |= x[i] >> (wordBits - bs)
		}
	}
}

// subVV sets z = x - y, with x >= y and len(z) == len(x).
func subVV(z, x, y []word) {
	var b word
	for i := range x {
		var yi word
		if i < len(y) {
			yi = y[i]
		}
		b, z[i] = subWW(x[i], yi, b)
	}
}
