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
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// ErrInvalidDecimal128String indicates that a string is not a valid decimal128 value.
var ErrInvalidDecimal128String = lazyerrors.New("not a valid Decimal128 string")

// Decimal128 represents BSON type Decimal128:
// an IEEE 754-2008 decimal128 value stored as two 64-bit halves
// in the binary integer decimal (BID) encoding.
//
// The raw 128 bits are the value; no conversion through float64 ever happens.
type Decimal128 struct {
	H uint64
	L uint64
}

// decimal128 encoding parameters.
const (
	decimal128MaxDigits   = 34
	decimal128MaxExponent = 6111
	decimal128MinExponent = -6176
	decimal128Bias        = 6176
)

var (
	// Decimal128NaN represents decimal128 NaN.
	Decimal128NaN = Decimal128{H: 0x7c00000000000000}

	// Decimal128PositiveInfinity represents decimal128 +Infinity.
	Decimal128PositiveInfinity = Decimal128{H: 0x7800000000000000}

	// Decimal128NegativeInfinity represents decimal128 -Infinity.
	Decimal128NegativeInfinity = Decimal128{H: 0xf800000000000000}
)

// NewDecimal128 creates a Decimal128 from raw high and low halves.
func NewDecimal128(h, l uint64) Decimal128 {
	return Decimal128{H: h, L: l}
}

// GetBytes returns the raw high and low halves.
func (d Decimal128) GetBytes() (h, l uint64) {
	return d.H, d.L
}

// IsNaN reports whether the value is NaN.
func (d Decimal128) IsNaN() bool {
	return d.H>>58&(1<<5-1) == 0x1f
}

// IsInf returns +1 for +Infinity, -1 for -Infinity, and 0 otherwise.
func (d Decimal128) IsInf() int {
	if d.H>>58&(1<<5-1) != 0x1e {
		return 0
	}

	if d.H>>63 == 1 {
		return -1
	}
	return 1
}

// IsNegative reports whether the sign bit is set.
// Note that NaN values carry a sign bit too.
func (d Decimal128) IsNegative() bool {
	return d.H>>63 == 1
}

// Equal reports raw 128-bit equality.
func (d Decimal128) Equal(other Decimal128) bool {
	return d == other
}

// coefficient returns the unbiased exponent and the coefficient digits.
//
// Values using the alternate (17-bit) combination encoding are out of the
// canonical range; their coefficient is treated as zero,
// matching reference decimal128 behavior.
func (d Decimal128) coefficient() (exp int, digits string) {
	var coefHigh uint64

	if d.H>>61&3 == 3 {
		// Bits: 1*sign 2*ones 14*exponent 111*significand (implicit 0b100 prefix).
		exp = int(d.H>>47&(1<<14-1)) - decimal128Bias
		return exp, "0"
	}

	// Bits: 1*sign 14*exponent 113*significand.
	exp = int(d.H>>49&(1<<14-1)) - decimal128Bias
	coefHigh = d.H & (1<<49 - 1)

	coef := new(big.Int).SetUint64(coefHigh)
	coef.Lsh(coef, 64)
	coef.Or(coef, new(big.Int).SetUint64(d.L))

	return exp, coef.String()
}

// String renders the canonical decimal text form:
// plain notation while the adjusted exponent is in [-6, 0],
// scientific notation otherwise.
func (d Decimal128) String() string {
	var sign string
	if d.IsNegative() {
		sign = "-"
	}

	switch {
	case d.IsNaN():
		return "NaN"
	case d.IsInf() != 0:
		return sign + "Infinity"
	}

	exp, digits := d.coefficient()
	adjusted := exp + len(digits) - 1

	if exp > 0 || adjusted < -6 {
		// scientific form
		res := sign + digits[:1]
		if len(digits) > 1 {
			res += "." + digits[1:]
		}

		if adjusted >= 0 {
			return res + "E+" + strconv.Itoa(adjusted)
		}
		return res + "E" + strconv.Itoa(adjusted)
	}

	if exp == 0 {
		return sign + digits
	}

	// plain form, exp < 0
	if point := len(digits) + exp; point > 0 {
		return sign + digits[:point] + "." + digits[point:]
	}

	return sign + "0." + strings.Repeat("0", -exp-len(digits)) + digits
}

// ParseDecimal128 parses the decimal text form:
// an optional sign, integer and fraction digits, an optional exponent,
// and the NaN / Infinity literals (case-insensitive).
//
// Inputs with more than 34 significant digits are rounded half to even;
// out-of-range exponents are clamped by shifting the coefficient by the
// matching power of ten. Both adjustments are silent.
// True overflow becomes an infinity, true underflow a signed zero.
func ParseDecimal128(s string) (Decimal128, error) {
	orig := s
	if s == "" {
		return Decimal128{}, parseErr(orig)
	}

	var neg bool
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	switch strings.ToLower(s) {
	case "nan":
		return Decimal128NaN, nil
	case "inf", "infinity":
		if neg {
			return Decimal128NegativeInfinity, nil
		}
		return Decimal128PositiveInfinity, nil
	}

	mant := s
	var exp int

	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant = s[:i]

		var err error
		if exp, err = parseExponent(s[i+1:]); err != nil {
			return Decimal128{}, parseErr(orig)
		}
	}

	intPart, fracPart, hasPoint := strings.Cut(mant, ".")
	if intPart == "" && fracPart == "" {
		return Decimal128{}, parseErr(orig)
	}
	if hasPoint && strings.Contains(fracPart, ".") {
		return Decimal128{}, parseErr(orig)
	}

	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return Decimal128{}, parseErr(orig)
			}
		}
	}

	exp -= len(fracPart)

	// significant digits without leading zeros; empty means zero
	digits := strings.TrimLeft(intPart+fracPart, "0")

	digits, exp = roundDigits(digits, exp)
	digits, exp, inf := clampExponent(digits, exp)

	if inf {
		if neg {
			return Decimal128NegativeInfinity, nil
		}
		return Decimal128PositiveInfinity, nil
	}

	return fromCoefficient(neg, digits, exp), nil
}

func parseErr(s string) error {
	return lazyerrors.Errorf("%q: %w", s, ErrInvalidDecimal128String)
}

// parseExponent parses the exponent part,
// saturating values that do not fit into int instead of failing.
func parseExponent(s string) (int, error) {
	exp, err := strconv.Atoi(s)
	if err == nil {
		return exp, nil
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		if strings.HasPrefix(s, "-") {
			return -(1 << 30), nil
		}
		return 1 << 30, nil
	}

	return 0, err
}

// roundDigits rounds the significant digits half to even
// when there are more than 34 of them.
func roundDigits(digits string, exp int) (string, int) {
	if len(digits) <= decimal128MaxDigits {
		return digits, exp
	}

	kept := digits[:decimal128MaxDigits]
	dropped := digits[decimal128MaxDigits:]
	exp += len(dropped)

	var up bool
	switch {
	case dropped[0] > '5':
		up = true
	case dropped[0] < '5':
		up = false
	default:
		up = strings.TrimRight(dropped[1:], "0") != "" || (kept[len(kept)-1]-'0')%2 == 1
	}

	if !up {
		return kept, exp
	}

	kept = incrementDigits(kept)
	if len(kept) > decimal128MaxDigits {
		// carry out of 10^34-1; the trailing digit is zero
		kept = kept[:decimal128MaxDigits]
		exp++
	}

	return kept, exp
}

// incrementDigits adds one to a decimal digit string.
func incrementDigits(digits string) string {
	b := []byte(digits)

	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}

	return "1" + string(b)
}

// clampExponent moves an out-of-range exponent back into
// [-6176, 6111] by shifting the coefficient by powers of ten.
// The inf result reports overflow.
func clampExponent(digits string, exp int) (string, int, bool) {
	for exp > decimal128MaxExponent {
		if digits == "" {
			// zero coefficient clamps freely
			exp = decimal128MaxExponent
			break
		}

		if len(digits) >= decimal128MaxDigits {
			return "", 0, true
		}

		digits += "0"
		exp--
	}

	if exp >= decimal128MinExponent {
		return digits, exp, false
	}

	if digits == "" {
		return digits, decimal128MinExponent, false
	}

	n := decimal128MinExponent - exp
	if n >= len(digits) {
		// all digits shifted out; only a final round-up can survive
		var up bool
		if n == len(digits) {
			rest := strings.TrimRight(digits[1:], "0")
			up = digits[0] > '5' || (digits[0] == '5' && rest != "")
		}

		if up {
			return "1", decimal128MinExponent, false
		}
		return "", decimal128MinExponent, false
	}

	kept := digits[:len(digits)-n]
	dropped := digits[len(digits)-n:]

	var up bool
	switch {
	case dropped[0] > '5':
		up = true
	case dropped[0] < '5':
		up = false
	default:
		up = strings.TrimRight(dropped[1:], "0") != "" || (kept[len(kept)-1]-'0')%2 == 1
	}

	if up {
		kept = incrementDigits(kept)
	}

	return kept, decimal128MinExponent, false
}

// fromCoefficient assembles the BID bit pattern.
func fromCoefficient(neg bool, digits string, exp int) Decimal128 {
	var coef big.Int
	if digits != "" {
		// digits are pre-validated; 34 decimal digits always fit 113 bits
		_, ok := coef.SetString(digits, 10)
		if !ok {
			panic("types.Decimal128: invalid coefficient " + strconv.Quote(digits))
		}
	}

	var maskLow big.Int
	maskLow.SetUint64(1)
	maskLow.Lsh(&maskLow, 64)
	maskLow.Sub(&maskLow, big.NewInt(1))

	l := new(big.Int).And(&coef, &maskLow).Uint64()
	h := new(big.Int).Rsh(&coef, 64).Uint64()

	h |= uint64(exp+decimal128Bias) << 49
	if neg {
		h |= 1 << 63
	}

	return Decimal128{H: h, L: l}
}
