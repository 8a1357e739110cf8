package bignum

import (
	"fmt"
	"slices"
)

// Integer represents a signed integer of unbounded magnitude.
// Its words hold the value in little-endian two's-complement encoding,
// so the sign is the top bit of the most significant word.
//
// The encoding is always canonical: the most significant word is never
// redundant, and zero is the empty slice. The zero value is 0.
//
// Integer is immutable. Operations never write into the words of their
// operands, so copying an Integer is equivalent to cloning it.
type Integer struct {
	w []word
}

// normalize drops redundant most significant words from z and returns
// the resulting Integer. It takes ownership of z.
func normalize(z []word) Integer {
	n := len(z)
	for n > 0 {
		top := z[n-1]
		switch {
		case n == 1 && top == 0:
			n = 0
		case n > 1 && top == 0 && z[n-2]&signBit == 0:
			n--
		case n > 1 && top == allOnes && z[n-2]&signBit != 0:
			n--
		default:
			return Integer{w: z[:n:n]}
		}
	}
	return Integer{}
}

// fromMag returns the non-negative Integer with magnitude mag.
// It takes ownership of mag.
func fromMag(mag []word) Integer {
	return normalize(append(mag, 0))
}

// NewInteger returns an Integer equal to v.
func NewInteger(v int64) Integer {
	if v == 0 {
		return Integer{}
	}
	return Integer{w: []word{word(v)}}
}

// NewIntegerFromUint64 returns an Integer equal to v.
func NewIntegerFromUint64(v uint64) Integer {
	return fromMag([]word{v})
}

// NewIntegerFromWords returns an Integer from little-endian
// two's-complement words. The slice is copied.
func NewIntegerFromWords(words []uint64) Integer {
	return normalize(slices.Clone(words))
}

// NewIntegerFromBytes returns an Integer from the big-endian magnitude b.
// If neg is true, the result is negated.
func NewIntegerFromBytes(neg bool, b []byte) Integer {
	mag := make([]word, (len(b)+wordSize-1)/wordSize, (len(b)+wordSize-1)/wordSize+1)
	for i := range b {
		k := len(b) - 1 - i
		mag[k/wordSize] |= word(b[i]) << (8 * (k % wordSize))
	}
	z := fromMag(mag)
	if neg {
		return z.Neg()
	}
	return z
}

// ParseInteger converts a string in the given base to an Integer.
// The string consists of an optional sign followed by one or more digits.
// Digits above 9 are letters, case-insensitive, so base can be
// from 2 to 36.
func ParseInteger(s string, base int) (Integer, error) {
	if base < 2 || base > 36 {
		return Integer{}, fmt.Errorf("base %v: %w", base, ErrInvalidArgument)
	}
	pos, neg := 0, false
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}
	if pos == len(s) {
		return Integer{}, fmt.Errorf("no digits in %q: %w", s, ErrInvalidArgument)
	}
	mag := make([]word, 1, (len(s)-pos)/8+2)
	for ; pos < len(s); pos++ {
		d := digitValue(s[pos])
		if d >= base {
			return Integer{}, fmt.Errorf("invalid character %q for base %v: %w", s[pos], base, ErrInvalidArgument)
		}
		if c := mulAddVWW(mag, mag, word(base), word(d)); c != 0 {
			mag = append(mag, c)
		}
	}
	z := fromMag(mag)
	if neg {
		return z.Neg(), nil
	}
	return z, nil
}

// digitValue returns the value of the digit ch, or 36 if ch is not a digit.
func digitValue(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return 36
}

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// String implements the [fmt.Stringer] interface and returns
// the base 10 representation of x.
func (x Integer) String() string {
	return x.Text(10)
}

// Text returns the representation of x in the given base, using
// lower-case letters for digits above 9.
// Text panics if base is outside the range from 2 to 36.
func (x Integer) Text(base int) string {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("Text(%v) failed: %v", base, ErrInvalidArgument))
	}
	if x.IsZero() {
		return "0"
	}

	// Largest power of the base that fits into a word
	bb, k := word(base), 1
	for bb <= allOnes/word(base) {
		bb *= word(base)
		k++
	}

	mag := x.Abs().w
	mag = slices.Clone(mag)
	n := len(mag)
	buf := make([]byte, 0, n*wordBits+1)
	for n > 0 {
		r := divWVW(mag[:n], mag[:n], bb)
		for n > 0 && mag[n-1] == 0 {
			n--
		}
		for i := 0; i < k && (n > 0 || r != 0); i++ {
			buf = append(buf, digits[r%word(base)])
			r /= word(base)
		}
	}
	if x.IsNeg() {
		buf = append(buf, '-')
	}
	slices.Reverse(buf)
	return string(buf)
}

// at returns the i-th word of x, extending the sign beyond the top word.
func (x Integer) at(i int) word {
	if i < len(x.w) {
		return x.w[i]
	}
	if len(x.w) == 0 {
		return 0
	}
	return signExt(x.w[len(x.w)-1])
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x Integer) Sign() int {
	switch {
	case len(x.w) == 0:
		return 0
	case x.w[len(x.w)-1]&signBit != 0:
		return -1
	}
	return 1
}

// IsZero returns true if x == 0.
func (x Integer) IsZero() bool {
	return len(x.w) == 0
}

// IsNeg returns true if x < 0.
func (x Integer) IsNeg() bool {
	return x.Sign() < 0
}

// IsPos returns true if x > 0.
func (x Integer) IsPos() bool {
	return x.Sign() > 0
}

// IsOne returns true if x == 1.
func (x Integer) IsOne() bool {
	return len(x.w) == 1 && x.w[0] == 1
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x Integer) Cmp(y Integer) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case len(x.w) > len(y.w):
		return xs
	case len(x.w) < len(y.w):
		return -xs
	}
	for i := len(x.w) - 1; i >= 0; i-- {
		switch {
		case x.w[i] < y.w[i]:
			return -1
		case x.w[i] > y.w[i]:
			return 1
		}
	}
	return 0
}

// Equal returns true if x and y are equal.
func (x Integer) Equal(y Integer) bool {
	return slices.Equal(x.w, y.w)
}

// Neg returns -x.
func (x Integer) Neg() Integer {
	if x.IsZero() {
		return x
	}
	n := len(x.w)
	z := make([]word, n+1)
	c := word(1)
	for i := range z {
		c, z[i] = addWW(^x.at(i), 0, c)
	}
	return normalize(z)
}

// Abs returns |x|.
func (x Integer) Abs() Integer {
	if x.IsNeg() {
		return x.Neg()
	}
	return x
}

// Inc returns x + 1.
func (x Integer) Inc() Integer {
	if x.IsZero() {
		return NewInteger(1)
	}
	n := len(x.w)
	z := make([]word, n, n+1)
	copy(z, x.w)
	top := z[n-1]
	for i := range z {
		z[i]++
		if z[i] != 0 {
			break
		}
	}
	if top&signBit == 0 && z[n-1]&signBit != 0 {
		z = append(z, 0)
	}
	return normalize(z)
}

// Dec returns x - 1.
func (x Integer) Dec() Integer {
	if x.IsZero() {
		return NewInteger(-1)
	}
	n := len(x.w)
	z := make([]word, n, n+1)
	copy(z, x.w)
	top := z[n-1]
	for i := range z {
		z[i]--
		if z[i] != allOnes {
			break
		}
	}
	if top&signBit != 0 && z[n-1]&signBit == 0 {
		z = append(z, allOnes)
	}
	return normalize(z)
}

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x Integer) BitLen() int {
	return x.Abs().msb() + 1
}

// msb returns the index of the most significant set bit of
// a non-negative x, or -1 if x is zero.
func (x Integer) msb() int {
	return msbVV(x.w)
}

// Int64 returns x as int64.
// If x cannot be represented in int64, the result is false.
func (x Integer) Int64() (int64, bool) {
	switch len(x.w) {
	case 0:
		return 0, true
	case 1:
		return int64(x.w[0]), true
	}
	return 0, false
}

// Uint64 returns x as uint64.
// If x is negative or does not fit into uint64, the result is false.
func (x Integer) Uint64() (uint64, bool) {
	switch {
	case x.IsNeg():
		return 0, false
	case len(x.w) == 0:
		return 0, true
	case len(x.w) == 1:
		return x.w[0], true
	case len(x.w) == 2 && x.w[1] == 0:
		return x.w[0], true
	}
	return 0, false
}

// Words returns a copy of the little-endian two's-complement words of x.
func (x Integer) Words() []uint64 {
	return slices.Clone(x.w)
}

// Bytes returns the big-endian magnitude |x| without leading zero bytes.
func (x Integer) Bytes() []byte {
	mag := x.Abs().w
	b := make([]byte, 0, len(mag)*wordSize)
	for i := len(mag) - 1; i >= 0; i-- {
		for k := wordSize - 1; k >= 0; k-- {
			v := byte(mag[i] >> (8 * k))
			if len(b) == 0 && v == 0 {
				continue
			}
			b = append(b, v)
		}
	}
	return b
}
