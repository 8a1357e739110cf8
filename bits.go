package bignum

// And returns the bitwise x & y.
func (x Integer) And(y Integer) Integer {
	return bitwise(x, y, func(a, b word) word { return a & b })
}

// Or returns the bitwise x | y.
func (x Integer) Or(y Integer) Integer {
	return bitwise(x, y, func(a, b word) word { return a | b })
}

// Xor returns the bitwise x ^ y.
func (x Integer) Xor(y Integer) Integer {
	return bitwise(x, y, func(a, b word) word { return a ^ b })
}

// AndNot returns the bitwise x &^ y.
func (x Integer) AndNot(y Integer) Integer {
	return bitwise(x, y, func(a, b word) word { return a &^ b })
}

// Not returns the bitwise complement ^x, which equals -x - 1.
func (x Integer) Not() Integer {
	z := make([]word, max(len(x.w), 1))
	for i := range z {
		z[i] = ^x.at(i)
	}
	return normalize(z)
}

// bitwise applies op to the words of x and y, extending the sign
// of the shorter operand.
func bitwise(x, y Integer, op func(a, b word) word) Integer {
	z := make([]word, max(len(x.w), len(y.w)))
	for i := range z {
		z[i] = op(x.at(i), y.at(i))
	}
	return normalize(z)
}

// Lsh returns x << n, which equals x * 2^n.
func (x Integer) Lsh(n uint) Integer {
	if x.IsZero() || n == 0 {
		return x
	}
	ws, bs := int(n/wordBits), n%wordBits
	k := len(x.w)
	z := make([]word, k+ws+1)
	for i := 0; i <= k; i++ {
		xi := x.at(i)
		z[i+ws] |= xi << bs
		if bs != 0 && i+ws+1 < len(z) {
			z[i+ws+1] |= xi >> (wordBits - bs)
		}
	}
	return normalize(z)
}

// Rsh returns x >> n. The shift is arithmetic, so the result
// equals floor(x / 2^n).
func (x Integer) Rsh(n uint) Integer {
	if x.IsZero() || n == 0 {
		return x
	}
	k := len(x.w)
	ws, bs := n/wordBits, n%wordBits
	if ws >= uint(k) {
		if x.IsNeg() {
			return NewInteger(-1)
		}
		return Integer{}
	}
	z := make([]word, k-int(ws))
	for i := range z {
		j := i + int(ws)
		z[i] = x.at(j) >> bs
		if bs != 0 {
			z[i] |= x.at(j+1) << (wordBits - bs)
		}
	}
	return normalize(z)
}
