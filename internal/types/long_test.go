// Copyright 2025 bsonkit authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongParse(t *testing.T) {
	for _, tc := range []struct {
		s        string
		unsigned bool
		expected Long
	}{
		{"0", false, NewLong(0)},
		{"42", false, NewLong(42)},
		{"-42", false, NewLong(-42)},
		{"+42", false, NewLong(42)},
		{"9223372036854775807", false, NewLong(math.MaxInt64)},
		{"-9223372036854775808", false, NewLong(math.MinInt64)},
		{"18446744073709551615", true, NewULong(math.MaxUint64)},
		{"18446744073709551615", false, NewLong(-1)},

		// the accumulator wraps in 64-bit space
		{"18446744073709551616", true, NewULong(0)},
		{"9223372036854775808", false, NewLong(math.MinInt64)},
	} {
		tc := tc

		t.Run(tc.s, func(t *testing.T) {
			l, err := ParseLong(tc.s, tc.unsigned)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, l)
		})
	}

	for _, s := range []string{"", "-", "+", "12x", " 42", "0.5", "1e3"} {
		s := s

		t.Run("invalid "+s, func(t *testing.T) {
			_, err := ParseLong(s, false)
			require.Error(t, err)
		})
	}
}

func TestLongString(t *testing.T) {
	assert.Equal(t, "-1", NewLong(-1).String())
	assert.Equal(t, "18446744073709551615", NewLong(-1).Unsigned().String())
	assert.Equal(t, "18446744073709551615", MaxUnsignedLong.String())
	assert.Equal(t, "-9223372036854775808", NewLong(math.MinInt64).String())

	assert.Equal(t, "1111111111111111111111111111111111111111111111111111111111111111", NewULong(math.MaxUint64).Text(2))
	assert.Equal(t, "ffffffffffffffff", NewULong(math.MaxUint64).Text(16))
	assert.Equal(t, "-8000000000000000", NewLong(math.MinInt64).Text(16))
}

func TestLongArithmetic(t *testing.T) {
	t.Run("Wraparound", func(t *testing.T) {
		assert.Equal(t, NewLong(math.MinInt64), NewLong(math.MaxInt64).Add(NewLong(1)))
		assert.Equal(t, NewLong(math.MaxInt64), NewLong(math.MinInt64).Sub(NewLong(1)))
		assert.Equal(t, NewULong(0), NewULong(math.MaxUint64).Add(NewULong(1)))
		assert.True(t, NewLong(math.MinInt64).Neg().Equal(NewLong(math.MinInt64)))
	})

	t.Run("Div", func(t *testing.T) {
		res, err := NewLong(-7).Div(NewLong(2))
		require.NoError(t, err)
		assert.Equal(t, NewLong(-3), res)

		// same bits, unsigned interpretation
		res, err = NewLong(-7).Unsigned().Div(NewULong(2))
		require.NoError(t, err)
		assert.Equal(t, NewULong((math.MaxUint64-6)/2), res)

		_, err = NewLong(1).Div(NewLong(0))
		require.ErrorIs(t, err, ErrLongDivisionByZero)
	})

	t.Run("Mod", func(t *testing.T) {
		res, err := NewLong(-7).Mod(NewLong(2))
		require.NoError(t, err)
		assert.Equal(t, NewLong(-1), res)

		_, err = NewLong(1).Mod(NewLong(0))
		require.ErrorIs(t, err, ErrLongDivisionByZero)
	})

	t.Run("Shr", func(t *testing.T) {
		assert.Equal(t, NewLong(-1), NewLong(-2).Shr(1))
		assert.Equal(t, NewULong(math.MaxUint64>>1), NewULong(math.MaxUint64).Shr(1))
		assert.Equal(t, NewLong(1), NewLong(1).Shr(64)) // only the low 6 bits of n are used
	})

	t.Run("Bitwise", func(t *testing.T) {
		assert.Equal(t, NewLong(0b1000), NewLong(0b1100).And(NewLong(0b1010)))
		assert.Equal(t, NewLong(0b1110), NewLong(0b1100).Or(NewLong(0b1010)))
		assert.Equal(t, NewLong(0b0110), NewLong(0b1100).Xor(NewLong(0b1010)))
		assert.Equal(t, NewLong(-1), NewLong(0).Not())
	})
}

func TestLongCmp(t *testing.T) {
	assert.Equal(t, -1, NewLong(-1).Cmp(NewLong(0)))
	assert.Equal(t, 1, NewLong(-1).Unsigned().Cmp(NewULong(0)))
	assert.Equal(t, 0, NewLong(42).Cmp(NewULong(42)))

	assert.True(t, NewLong(-1).Equal(NewULong(math.MaxUint64)))
	assert.True(t, NewLong(0).IsZero())
	assert.False(t, NewLong(1).IsZero())
}

func FuzzLongString(f *testing.F) {
	f.Add("0", false)
	f.Add("-9223372036854775808", false)
	f.Add("18446744073709551615", true)

	f.Fuzz(func(t *testing.T, s string, unsigned bool) {
		l, err := ParseLong(s, unsigned)
		if err != nil {
			t.Skip()
		}

		l2, err := ParseLong(l.String(), unsigned)
		require.NoError(t, err)
		require.True(t, l.Equal(l2))
	})
}

func TestLongConversions(t *testing.T) {
	l := LongFromHalves(0xdddddddd, 0xaaaaaaaa)
	assert.Equal(t, int64(0xaaaaaaaadddddddd-1<<64), l.Int64())

	low, high := l.Halves()
	assert.Equal(t, uint32(0xdddddddd), low)
	assert.Equal(t, uint32(0xaaaaaaaa), high)

	assert.Equal(t, NewLong(0), LongFromFloat(math.NaN()))
	assert.Equal(t, NewLong(math.MaxInt64), LongFromFloat(math.Inf(1)))
	assert.Equal(t, NewLong(math.MinInt64), LongFromFloat(math.Inf(-1)))
	assert.Equal(t, NewLong(-3), LongFromFloat(-3.99))
	assert.Equal(t, NewLong(3), LongFromFloat(3.99))
}
