package bignum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRational_Log(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{"1", "2", "1/2", "3/4", "10", "1/1000", "123456789", "5/3"}
		for _, s := range tests {
			x := MustParseRational(s)
			got, err := x.Log(testEps)
			require.NoError(t, err, "%v.Log()", x)
			assert.InDelta(t, math.Log(float(t, x)), float(t, got), 2e-9, "%v.Log()", x)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			x    string
			eps  Rational
			want error
		}{
			"zero":         {"0", testEps, ErrDomain},
			"negative":     {"-1", testEps, ErrDomain},
			"negative eps": {"2", rat(-1, 10), ErrInvalidArgument},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := MustParseRational(tt.x).Log(tt.eps)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("large", func(t *testing.T) {
		x := NewRationalFromInteger(NewInteger(1).Lsh(1000))
		got, err := x.Log(testEps)
		require.NoError(t, err)
		assert.InDelta(t, 1000*math.Ln2, float(t, got), 2e-9)
	})
}

func TestRational_Log2(t *testing.T) {
	tests := []struct {
		x    string
		want float64
	}{
		{"1", 0},
		{"2", 1},
		{"8", 3},
		{"1/4", -2},
		{"3", math.Log2(3)},
		{"1000", math.Log2(1000)},
	}
	for _, tt := range tests {
		x := MustParseRational(tt.x)
		got, err := x.Log2(testEps)
		require.NoError(t, err, "%v.Log2()", x)
		assert.InDelta(t, tt.want, float(t, got), 2e-9, "%v.Log2()", x)
	}
	_, err := Rational{}.Log2(testEps)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestRational_Log10(t *testing.T) {
	tests := []struct {
		x    string
		want float64
	}{
		{"1", 0},
		{"10", 1},
		{"1000", 3},
		{"1/100", -2},
		{"2", math.Log10(2)},
	}
	for _, tt := range tests {
		x := MustParseRational(tt.x)
		got, err := x.Log10(testEps)
		require.NoError(t, err, "%v.Log10()", x)
		assert.InDelta(t, tt.want, float(t, got), 2e-9, "%v.Log10()", x)
	}
	_, err := MustParseRational("-10").Log10(testEps)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestLn2_Cache(t *testing.T) {
	eps := MustParseRational("1/3333333")
	before := ln2Cache.computed.Load()
	first := ln2(eps)
	second := ln2(eps)
	assert.True(t, first.Equal(second))
	assert.Equal(t, int64(1), ln2Cache.computed.Load()-before)
	assert.InDelta(t, math.Ln2, float(t, first), 1e-6)
}
