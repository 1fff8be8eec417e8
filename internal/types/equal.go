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
	"bytes"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Equal returns true if two BSON values are structurally equal.
//
// Documents are equal when they have the same fields in the same order;
// float64 NaNs are equal to each other, and -0 is distinct from 0.
// Long and Decimal128 compare as raw bits.
func Equal[T Type](v1, v2 T) bool {
	return equal(v1, v2)
}

// equal is a non-generic variant of [Equal].
func equal(v1, v2 any) bool {
	switch v1 := v1.(type) {
	case *Document:
		d, ok := v2.(*Document)
		if !ok || v1.Len() != d.Len() {
			return false
		}

		for i := 0; i < v1.Len(); i++ {
			name1, value1 := v1.Entry(i)
			name2, value2 := d.Entry(i)

			if name1 != name2 || !equal(value1, value2) {
				return false
			}
		}

		return true

	case *Array:
		a, ok := v2.(*Array)
		if !ok || v1.Len() != a.Len() {
			return false
		}

		for i := 0; i < v1.Len(); i++ {
			if !equal(v1.Get(i), a.Get(i)) {
				return false
			}
		}

		return true

	default:
		return equalScalars(v1, v2)
	}
}

// equalScalars returns true if two scalar values are equal.
func equalScalars(v1, v2 any) bool {
	switch s1 := v1.(type) {
	case float64:
		s2, ok := v2.(float64)
		if !ok {
			return false
		}

		// NaN == NaN, 0 != -0
		return math.Float64bits(s1) == math.Float64bits(s2)

	case string:
		s2, ok := v2.(string)
		return ok && s1 == s2

	case Binary:
		s2, ok := v2.(Binary)
		return ok && s1.Subtype == s2.Subtype && bytes.Equal(s1.B, s2.B)

	case []byte:
		s2, ok := v2.([]byte)
		return ok && bytes.Equal(s1, s2)

	case RawDocument:
		s2, ok := v2.(RawDocument)
		return ok && bytes.Equal(s1, s2)

	case RawArray:
		s2, ok := v2.(RawArray)
		return ok && bytes.Equal(s1, s2)

	case uuid.UUID:
		s2, ok := v2.(uuid.UUID)
		return ok && s1 == s2

	case ObjectID:
		s2, ok := v2.(ObjectID)
		return ok && s1 == s2

	case bool:
		s2, ok := v2.(bool)
		return ok && s1 == s2

	case time.Time:
		s2, ok := v2.(time.Time)
		return ok && s1.Equal(s2)

	case NullType:
		_, ok := v2.(NullType)
		return ok

	case UndefinedType:
		_, ok := v2.(UndefinedType)
		return ok

	case MinKeyType:
		_, ok := v2.(MinKeyType)
		return ok

	case MaxKeyType:
		_, ok := v2.(MaxKeyType)
		return ok

	case Regex:
		s2, ok := v2.(Regex)
		return ok && s1 == s2

	case *regexp.Regexp:
		s2, ok := v2.(*regexp.Regexp)
		return ok && s1.String() == s2.String()

	case DBPointer:
		s2, ok := v2.(DBPointer)
		return ok && s1 == s2

	case JavaScript:
		s2, ok := v2.(JavaScript)
		return ok && s1 == s2

	case Symbol:
		s2, ok := v2.(Symbol)
		return ok && s1 == s2

	case CodeWithScope:
		s2, ok := v2.(CodeWithScope)
		return ok && s1.Code == s2.Code && equal(s1.Scope, s2.Scope)

	case int32:
		s2, ok := v2.(int32)
		return ok && s1 == s2

	case Timestamp:
		s2, ok := v2.(Timestamp)
		return ok && s1 == s2

	case int64:
		s2, ok := v2.(int64)
		return ok && s1 == s2

	case Long:
		s2, ok := v2.(Long)
		return ok && s1.Equal(s2)

	case Decimal128:
		s2, ok := v2.(Decimal128)
		return ok && s1 == s2

	default:
		panic(fmt.Sprintf("types.equalScalars: unhandled type %T", v1))
	}
}
