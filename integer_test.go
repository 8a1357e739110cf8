package bignum

import (
	"math"
	"slices"
	"testing"
)

func TestInteger_ZeroValue(t *testing.T) {
	got := Integer{}
	want := MustParseInteger("0", 10)
	if !got.Equal(want) {
		t.Errorf("Integer{} = %q, want %q", got, want)
	}
	if got.String() != "0" {
		t.Errorf("Integer{}.String() = %q, want %q", got.String(), "0")
	}
	if got.Sign() != 0 {
		t.Errorf("Integer{}.Sign() = %v, want 0", got.Sign())
	}
}

func TestNewInteger(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{42, "42"},
		{-10, "-10"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		got := NewInteger(tt.v)
		if got.String() != tt.want {
			t.Errorf("NewInteger(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestNewIntegerFromUint64(t *testing.T) {
	tests := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{math.MaxInt64 + 1, "9223372036854775808"},
		{math.MaxUint64, "18446744073709551615"},
	}
	for _, tt := range tests {
		got := NewIntegerFromUint64(tt.v)
		if got.String() != tt.want {
			t.Errorf("NewIntegerFromUint64(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestInteger_Canonical(t *testing.T) {
	tests := []struct {
		s    string
		want []uint64
	}{
		{"0", nil},
		{"1", []uint64{1}},
		{"-1", []uint64{math.MaxUint64}},
		{"9223372036854775807", []uint64{math.MaxInt64}},
		{"9223372036854775808", []uint64{1 << 63, 0}},
		{"-9223372036854775808", []uint64{1 << 63}},
		{"-9223372036854775809", []uint64{math.MaxInt64, math.MaxUint64}},
		{"18446744073709551615", []uint64{math.MaxUint64, 0}},
		{"18446744073709551616", []uint64{0, 1}},
		{"-18446744073709551616", []uint64{0, math.MaxUint64}},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.s, 10)
		got := x.Words()
		if !slices.Equal(got, tt.want) {
			t.Errorf("MustParseInteger(%q).Words() = %x, want %x", tt.s, got, tt.want)
		}
	}
}

func TestNewIntegerFromWords(t *testing.T) {
	tests := []struct {
		words []uint64
		want  string
	}{
		{nil, "0"},
		{[]uint64{0, 0, 0}, "0"},
		{[]uint64{math.MaxUint64, math.MaxUint64}, "-1"},
		{[]uint64{5, 0, 0}, "5"},
		{[]uint64{0, 1}, "18446744073709551616"},
		{[]uint64{1 << 63, math.MaxUint64}, "-9223372036854775808"},
	}
	for _, tt := range tests {
		got := NewIntegerFromWords(tt.words)
		if got.String() != tt.want {
			t.Errorf("NewIntegerFromWords(%x) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestParseInteger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			base int
			want string
		}{
			{"0", 10, "0"},
			{"-0", 10, "0"},
			{"+42", 10, "42"},
			{"000123", 10, "123"},
			{"ff", 16, "255"},
			{"FF", 16, "255"},
			{"-101", 2, "-5"},
			{"zz", 36, "1295"},
			{"ZZ", 36, "1295"},
			{"777", 8, "511"},
			{"18446744073709551616", 10, "18446744073709551616"},
			{"-9223372036854775808", 10, "-9223372036854775808"},
			{"123456789012345678901234567890", 10, "123456789012345678901234567890"},
			{"10000000000000000000000000000000000000000", 16, "1461501637330902918203684832716283019655932542976"},
		}
		for _, tt := range tests {
			got, err := ParseInteger(tt.s, tt.base)
			if err != nil {
				t.Errorf("ParseInteger(%q, %v) failed: %v", tt.s, tt.base, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseInteger(%q, %v) = %q, want %q", tt.s, tt.base, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			base int
		}{
			"empty":         {"", 10},
			"minus only":    {"-", 10},
			"plus only":     {"+", 10},
			"letter":        {"12a", 10},
			"digit 2":       {"102", 2},
			"space":         {" 1", 10},
			"double sign":   {"--1", 10},
			"base too low":  {"1", 1},
			"base too high": {"1", 37},
			"point":         {"1.5", 10},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseInteger(tt.s, tt.base)
				if err == nil {
					t.Errorf("ParseInteger(%q, %v) did not fail", tt.s, tt.base)
				}
			})
		}
	})
}

func TestMustParseInteger(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseInteger(\"x\", 10) did not panic")
			}
		}()
		MustParseInteger("x", 10)
	})
}

func TestInteger_Text(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			base int
			want string
		}{
			{"0", 2, "0"},
			{"255", 16, "ff"},
			{"-255", 16, "-ff"},
			{"5", 2, "101"},
			{"1295", 36, "zz"},
			{"18446744073709551615", 16, "ffffffffffffffff"},
			{"18446744073709551616", 16, "10000000000000000"},
			{"-9223372036854775808", 16, "-8000000000000000"},
		}
		for _, tt := range tests {
			x := MustParseInteger(tt.s, 10)
			got := x.Text(tt.base)
			if got != tt.want {
				t.Errorf("%q.Text(%v) = %q, want %q", x, tt.base, got, tt.want)
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		tests := []string{
			"0",
			"1",
			"-1",
			"9223372036854775807",
			"-9223372036854775808",
			"18446744073709551616",
			"123456789012345678901234567890",
			"-340282366920938463463374607431768211457",
		}
		for _, s := range tests {
			x := MustParseInteger(s, 10)
			for base := 2; base <= 36; base++ {
				text := x.Text(base)
				got, err := ParseInteger(text, base)
				if err != nil {
					t.Errorf("ParseInteger(%q, %v) failed: %v", text, base, err)
					continue
				}
				if !got.Equal(x) {
					t.Errorf("ParseInteger(%q, %v) = %q, want %q", text, base, got, x)
				}
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Text(37) did not panic")
			}
		}()
		NewInteger(1).Text(37)
	})
}

func TestInteger_Cmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "0", -1},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{"-2", "-1", -1},
		{"18446744073709551616", "9223372036854775807", 1},
		{"-18446744073709551616", "-9223372036854775807", -1},
		{"-9223372036854775808", "-9223372036854775809", 1},
		{"18446744073709551616", "18446744073709551617", -1},
		{"123456789012345678901234567890", "123456789012345678901234567890", 0},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.x, 10)
		y := MustParseInteger(tt.y, 10)
		got := x.Cmp(y)
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", x, y, got, tt.want)
		}
		if eq := x.Equal(y); eq != (tt.want == 0) {
			t.Errorf("%q.Equal(%q) = %v, want %v", x, y, eq, tt.want == 0)
		}
	}
}

func TestInteger_Inc(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "1"},
		{"-1", "0"},
		{"-2", "-1"},
		{"41", "42"},
		{"9223372036854775807", "9223372036854775808"},
		{"18446744073709551615", "18446744073709551616"},
		{"-9223372036854775809", "-9223372036854775808"},
		{"-18446744073709551616", "-18446744073709551615"},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.x, 10)
		got := x.Inc()
		want := MustParseInteger(tt.want, 10)
		if !got.Equal(want) {
			t.Errorf("%q.Inc() = %q, want %q", x, got, want)
		}
	}
}

func TestInteger_Dec(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "-1"},
		{"1", "0"},
		{"-1", "-2"},
		{"9223372036854775808", "9223372036854775807"},
		{"18446744073709551616", "18446744073709551615"},
		{"-9223372036854775808", "-9223372036854775809"},
		{"-18446744073709551615", "-18446744073709551616"},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.x, 10)
		got := x.Dec()
		want := MustParseInteger(tt.want, 10)
		if !got.Equal(want) {
			t.Errorf("%q.Dec() = %q, want %q", x, got, want)
		}
	}
}

func TestInteger_Neg(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0"},
		{"1", "-1"},
		{"-1", "1"},
		{"-9223372036854775808", "9223372036854775808"},
		{"9223372036854775808", "-9223372036854775808"},
		{"-18446744073709551616", "18446744073709551616"},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.x, 10)
		got := x.Neg()
		want := MustParseInteger(tt.want, 10)
		if !got.Equal(want) {
			t.Errorf("%q.Neg() = %q, want %q", x, got, want)
		}
		if abs := x.Abs(); abs.IsNeg() {
			t.Errorf("%q.Abs() = %q, want non-negative", x, abs)
		}
	}
}

func TestInteger_BitLen(t *testing.T) {
	tests := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"-1", 1},
		{"255", 8},
		{"-256", 9},
		{"9223372036854775808", 64},
		{"18446744073709551616", 65},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.x, 10)
		got := x.BitLen()
		if got != tt.want {
			t.Errorf("%q.BitLen() = %v, want %v", x, got, tt.want)
		}
	}
}

func TestInteger_Int64(t *testing.T) {
	tests := []struct {
		x      string
		want   int64
		wantOk bool
	}{
		{"0", 0, true},
		{"-1", -1, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.x, 10)
		got, ok := x.Int64()
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%q.Int64() = [%v %v], want [%v %v]", x, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestInteger_Uint64(t *testing.T) {
	tests := []struct {
		x      string
		want   uint64
		wantOk bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{"-1", 0, false},
		{"18446744073709551615", math.MaxUint64, true},
		{"18446744073709551616", 0, false},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.x, 10)
		got, ok := x.Uint64()
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%q.Uint64() = [%v %v], want [%v %v]", x, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestInteger_Bytes(t *testing.T) {
	tests := []struct {
		x    string
		want []byte
	}{
		{"0", []byte{}},
		{"1", []byte{1}},
		{"-1", []byte{1}},
		{"256", []byte{1, 0}},
		{"-9223372036854775808", []byte{0x80, 0, 0, 0, 0, 0, 0, 0}},
		{"18446744073709551616", []byte{1, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		x := MustParseInteger(tt.x, 10)
		got := x.Bytes()
		if !slices.Equal(got, tt.want) {
			t.Errorf("%q.Bytes() = %x, want %x", x, got, tt.want)
		}
		back := NewIntegerFromBytes(x.IsNeg(), got)
		if !back.Equal(x) {
			t.Errorf("NewIntegerFromBytes(%v, %x) = %q, want %q", x.IsNeg(), got, back, x)
		}
	}
}

func TestInteger_Immutable(t *testing.T) {
	x := MustParseInteger("18446744073709551615", 10)
	y := x
	_ = x.Inc()
	_ = x.Dec()
	_ = x.Neg()
	_ = x.Add(x)
	_ = x.Mul(x)
	_ = x.Lsh(3)
	_, _, _ = x.QuoRem(NewInteger(7))
	_ = x.Text(16)
	if !x.Equal(y) || x.String() != "18446744073709551615" {
		t.Errorf("operations modified their operand: %q", x)
	}
}
