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
	"strconv"

	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// ErrLongDivisionByZero indicates Long division or modulo by zero.
var ErrLongDivisionByZero = lazyerrors.New("division by zero")

// Long represents a BSON 64-bit integer with a selectable interpretation.
//
// Storage is always the two's-complement bit pattern;
// the unsigned flag selects comparison, division, and rendering semantics.
// Long is immutable: every operation returns a new value.
type Long struct {
	bits     uint64
	unsigned bool
}

// MaxUnsignedLong is the largest unsigned Long, 2^64-1.
// It is the closed upper bound of Timestamp.
var MaxUnsignedLong = NewULong(math.MaxUint64)

// NewLong returns a signed Long.
func NewLong(v int64) Long {
	return Long{bits: uint64(v)}
}

// NewULong returns an unsigned Long.
func NewULong(v uint64) Long {
	return Long{bits: v, unsigned: true}
}

// LongFromHalves returns a signed Long assembled from 32-bit halves.
func LongFromHalves(low, high uint32) Long {
	return Long{bits: uint64(high)<<32 | uint64(low)}
}

// LongFromFloat returns a signed Long by truncating the given float toward zero.
//
// NaN becomes zero; values beyond the 64-bit range saturate at the
// minimum or maximum representable value.
func LongFromFloat(f float64) Long {
	switch {
	case math.IsNaN(f):
		return Long{}
	case f <= math.MinInt64:
		return NewLong(math.MinInt64)
	case f >= math.MaxInt64:
		return NewLong(math.MaxInt64)
	default:
		return NewLong(int64(math.Trunc(f)))
	}
}

// ParseLong parses an optionally signed decimal string.
//
// The accumulation wraps in 64-bit arithmetic,
// so over-long inputs wrap instead of failing; invalid characters fail.
func ParseLong(s string, unsigned bool) (Long, error) {
	orig := s

	var neg bool
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	if s == "" {
		return Long{}, lazyerrors.Errorf("types.ParseLong: %q is not a valid 64-bit integer", orig)
	}

	var bits uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Long{}, lazyerrors.Errorf("types.ParseLong: %q is not a valid 64-bit integer", orig)
		}

		bits = bits*10 + uint64(c-'0')
	}

	if neg {
		bits = -bits
	}

	return Long{bits: bits, unsigned: unsigned}, nil
}

// IsUnsigned reports whether the Long uses the unsigned interpretation.
func (l Long) IsUnsigned() bool {
	return l.unsigned
}

// Signed returns a copy with the signed interpretation; the bits are unchanged.
func (l Long) Signed() Long {
	return Long{bits: l.bits}
}

// Unsigned returns a copy with the unsigned interpretation; the bits are unchanged.
func (l Long) Unsigned() Long {
	return Long{bits: l.bits, unsigned: true}
}

// Int64 returns the bits as a signed 64-bit integer.
func (l Long) Int64() int64 {
	return int64(l.bits)
}

// Uint64 returns the bits as an unsigned 64-bit integer.
func (l Long) Uint64() uint64 {
	return l.bits
}

// Halves returns the low and high 32-bit halves.
func (l Long) Halves() (low, high uint32) {
	return uint32(l.bits), uint32(l.bits >> 32)
}

// Add returns l + other. The result keeps l's interpretation.
func (l Long) Add(other Long) Long {
	return Long{bits: l.bits + other.bits, unsigned: l.unsigned}
}

// Sub returns l - other.
func (l Long) Sub(other Long) Long {
	return Long{bits: l.bits - other.bits, unsigned: l.unsigned}
}

// Mul returns l * other.
func (l Long) Mul(other Long) Long {
	return Long{bits: l.bits * other.bits, unsigned: l.unsigned}
}

// Div returns l / other using l's interpretation.
func (l Long) Div(other Long) (Long, error) {
	if other.bits == 0 {
		return Long{}, lazyerrors.Error(ErrLongDivisionByZero)
	}

	if l.unsigned {
		return Long{bits: l.bits / other.bits, unsigned: true}, nil
	}

	return Long{bits: uint64(int64(l.bits) / int64(other.bits))}, nil
}

// Mod returns l % other using l's interpretation.
func (l Long) Mod(other Long) (Long, error) {
	if other.bits == 0 {
		return Long{}, lazyerrors.Error(ErrLongDivisionByZero)
	}

	if l.unsigned {
		return Long{bits: l.bits % other.bits, unsigned: true}, nil
	}

	return Long{bits: uint64(int64(l.bits) % int64(other.bits))}, nil
}

// Neg returns -l.
func (l Long) Neg() Long {
	return Long{bits: -l.bits, unsigned: l.unsigned}
}

// Not returns ^l.
func (l Long) Not() Long {
	return Long{bits: ^l.bits, unsigned: l.unsigned}
}

// And returns l & other.
func (l Long) And(other Long) Long {
	return Long{bits: l.bits & other.bits, unsigned: l.unsigned}
}

// Or returns l | other.
func (l Long) Or(other Long) Long {
	return Long{bits: l.bits | other.bits, unsigned: l.unsigned}
}

// Xor returns l ^ other.
func (l Long) Xor(other Long) Long {
	return Long{bits: l.bits ^ other.bits, unsigned: l.unsigned}
}

// Shl returns l << n. Only the low 6 bits of n are used.
func (l Long) Shl(n uint) Long {
	return Long{bits: l.bits << (n & 63), unsigned: l.unsigned}
}

// Shr returns l >> n: arithmetic for the signed interpretation,
// logical for the unsigned one. Only the low 6 bits of n are used.
func (l Long) Shr(n uint) Long {
	if l.unsigned {
		return Long{bits: l.bits >> (n & 63), unsigned: true}
	}

	return Long{bits: uint64(int64(l.bits) >> (n & 63))}
}

// Cmp compares l and other using l's interpretation,
// returning -1, 0, or +1.
func (l Long) Cmp(other Long) int {
	if l.bits == other.bits {
		return 0
	}

	if l.unsigned {
		if l.bits < other.bits {
			return -1
		}
		return 1
	}

	if int64(l.bits) < int64(other.bits) {
		return -1
	}
	return 1
}

// Equal reports bit equality regardless of interpretation.
func (l Long) Equal(other Long) bool {
	return l.bits == other.bits
}

// IsZero reports whether all bits are zero.
func (l Long) IsZero() bool {
	return l.bits == 0
}

// Text renders the value in the given base (2 to 36) without precision loss.
func (l Long) Text(base int) string {
	if l.unsigned {
		return strconv.FormatUint(l.bits, base)
	}

	return strconv.FormatInt(int64(l.bits), base)
}

// String implements fmt.Stringer, rendering in base 10.
func (l Long) String() string {
	return l.Text(10)
}
