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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal128Parse(t *testing.T) {
	for _, tc := range []struct {
		s        string
		expected Decimal128
	}{
		{"0", Decimal128{H: 0x3040000000000000}},
		{"-0", Decimal128{H: 0xb040000000000000}},
		{"1", Decimal128{H: 0x3040000000000000, L: 1}},
		{"-1", Decimal128{H: 0xb040000000000000, L: 1}},
		{"0.1", Decimal128{H: 0x303e000000000000, L: 1}},
		{"+42", Decimal128{H: 0x3040000000000000, L: 42}},
		{"NaN", Decimal128NaN},
		{"nan", Decimal128NaN},
		{"Infinity", Decimal128PositiveInfinity},
		{"-inf", Decimal128NegativeInfinity},

		// extreme exponents clamp by shifting the coefficient
		{"1E+6112", Decimal128{H: 0x5ffe000000000000, L: 10}},
		{"1E+9999", Decimal128PositiveInfinity},
		{"1E-9999", Decimal128{}},
		{"5E-6177", Decimal128{}},
		{"6E-6177", Decimal128{L: 1}},
	} {
		tc := tc

		t.Run(tc.s, func(t *testing.T) {
			d, err := ParseDecimal128(tc.s)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestDecimal128ParseErrors(t *testing.T) {
	for _, s := range []string{"", "-", ".", "abc", "1.2.3", "1e", "1ee3", "0x1", " 1", "1 "} {
		s := s

		t.Run(s, func(t *testing.T) {
			_, err := ParseDecimal128(s)
			require.ErrorIs(t, err, ErrInvalidDecimal128String)
		})
	}
}

func TestDecimal128Rounding(t *testing.T) {
	// more than 34 significant digits round half to even
	for _, tc := range []struct {
		name     string
		s        string
		expected string
	}{
		{"HalfDown", "10000000000000000000000000000000005", "1.000000000000000000000000000000000E+34"},
		{"HalfUp", "10000000000000000000000000000000015", "1.000000000000000000000000000000002E+34"},
		{"Up", "10000000000000000000000000000000006", "1.000000000000000000000000000000001E+34"},
		{"Down", "10000000000000000000000000000000004", "1.000000000000000000000000000000000E+34"},
		{"HalfRestUp", "100000000000000000000000000000000051", "1.000000000000000000000000000000001E+35"},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDecimal128(tc.s)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.String())
		})
	}
}

func TestDecimal128String(t *testing.T) {
	for _, s := range []string{
		"0",
		"-0",
		"42",
		"100",
		"-1.5",
		"123.456",
		"0.000001",
		"1E-7",
		"1E+3",
		"1.5E-8",
		"0E-6176",
		"1E-6176",
		"9.999999999999999999999999999999999E+6144",
		"NaN",
		"Infinity",
		"-Infinity",
	} {
		s := s

		t.Run(s, func(t *testing.T) {
			d, err := ParseDecimal128(s)
			require.NoError(t, err)
			assert.Equal(t, s, d.String())
		})
	}

	// non-canonical combination encodings have a zero coefficient
	assert.Equal(t, "0E-6176", NewDecimal128(0x6000000000000000, 1).String())
}

func FuzzDecimal128String(f *testing.F) {
	f.Add("0.1")
	f.Add("-0")
	f.Add("NaN")
	f.Add("9.999999999999999999999999999999999E+6144")
	f.Add("1E-6176")

	f.Fuzz(func(t *testing.T, s string) {
		d, err := ParseDecimal128(s)
		if err != nil {
			t.Skip()
		}

		// the canonical text form reparses to the same bits
		d2, err := ParseDecimal128(d.String())
		require.NoError(t, err)
		require.Equal(t, d, d2)
	})
}

func TestDecimal128Predicates(t *testing.T) {
	assert.True(t, Decimal128NaN.IsNaN())
	assert.False(t, Decimal128PositiveInfinity.IsNaN())

	assert.Equal(t, 1, Decimal128PositiveInfinity.IsInf())
	assert.Equal(t, -1, Decimal128NegativeInfinity.IsInf())
	assert.Equal(t, 0, Decimal128NaN.IsInf())
	assert.Equal(t, 0, Decimal128{H: 0x3040000000000000}.IsInf())

	assert.True(t, Decimal128NegativeInfinity.IsNegative())
	assert.False(t, Decimal128{H: 0x3040000000000000}.IsNegative())

	d := NewDecimal128(0x303e000000000000, 1)
	h, l := d.GetBytes()
	assert.Equal(t, uint64(0x303e000000000000), h)
	assert.Equal(t, uint64(1), l)
	assert.True(t, d.Equal(Decimal128{H: 0x303e000000000000, L: 1}))
	assert.False(t, d.Equal(Decimal128{}))
}
