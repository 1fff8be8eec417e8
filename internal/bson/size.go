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

package bson

import (
	"fmt"
	"regexp"
	"time"

	"github.com/cristalhq/bson/bsonproto"
	"github.com/google/uuid"

	"github.com/lucsoft/bsonkit/internal/types"
)

// sizeDecimal128 is the fixed wire length of a decimal128 value:
// two little-endian uint64 halves, low first.
const sizeDecimal128 = 16

// CalculateObjectSize returns the exact encoded length of the document in bytes.
//
// The size pass is pure and allocation-free;
// Serialize trusts it to pre-size length prefixes,
// so it must match the write pass byte for byte.
func CalculateObjectSize(doc *types.Document, opts *EncodeOptions) int {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	return sizeDocument(doc, opts)
}

// sizeDocument returns the encoded length of a document.
func sizeDocument(doc *types.Document, opts *EncodeOptions) int {
	size := 5

	for i := 0; i < doc.Len(); i++ {
		name, value := doc.Entry(i)

		if opts.IgnoreUndefined {
			if _, skip := value.(types.UndefinedType); skip {
				continue
			}
		}

		size += 1 + len(name) + 1 + sizeAny(value, opts)
	}

	return size
}

// sizeArray returns the encoded length of an array.
func sizeArray(arr *types.Array, opts *EncodeOptions) int {
	size := 5

	for i := 0; i < arr.Len(); i++ {
		size += 1 + intLen(i) + 1 + sizeAny(arr.Get(i), opts)
	}

	return size
}

// sizeAny returns the encoded length of the payload of value v.
//
// It panics for invalid types; the document API prevents those.
func sizeAny(v any, opts *EncodeOptions) int {
	switch v := v.(type) {
	case *types.Document:
		return sizeDocument(v, opts)
	case types.RawDocument:
		return len(v)
	case *types.Array:
		return sizeArray(v, opts)
	case types.RawArray:
		return len(v)
	case float64:
		return bsonproto.SizeFloat64
	case string:
		return bsonproto.SizeString(v)
	case types.Binary:
		return 4 + 1 + len(v.B)
	case []byte:
		return 4 + 1 + len(v)
	case uuid.UUID:
		return 4 + 1 + 16
	case types.UndefinedType:
		return 0
	case types.ObjectID:
		return bsonproto.SizeObjectID
	case bool:
		return bsonproto.SizeBool
	case time.Time:
		return bsonproto.SizeTime
	case types.NullType:
		return 0
	case types.Regex:
		return len(v.Pattern) + 1 + len(v.Options) + 1
	case *regexp.Regexp:
		r := types.RegexFromGo(v)
		return len(r.Pattern) + 1 + len(r.Options) + 1
	case types.DBPointer:
		return bsonproto.SizeString(v.NS) + bsonproto.SizeObjectID
	case types.JavaScript:
		return bsonproto.SizeString(v.Code)
	case types.Symbol:
		return bsonproto.SizeString(string(v))
	case types.CodeWithScope:
		return 4 + bsonproto.SizeString(v.Code) + sizeDocument(v.Scope, opts)
	case int32:
		return bsonproto.SizeInt32
	case types.Timestamp:
		return bsonproto.SizeTimestamp
	case int64:
		return bsonproto.SizeInt64
	case types.Long:
		return bsonproto.SizeInt64
	case types.Decimal128:
		return sizeDecimal128
	case types.MinKeyType, types.MaxKeyType:
		return 0
	default:
		panic(fmt.Sprintf("bson.sizeAny: invalid type %T", v))
	}
}

// intLen returns len(strconv.Itoa(i)) for non-negative i without allocating.
func intLen(i int) int {
	res := 1
	for i > 9 {
		i /= 10
		res++
	}

	return res
}
