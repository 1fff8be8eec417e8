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

// Package fjson provides MongoDB Extended JSON v2 converters
// for built-in and `types` types.
//
// See https://www.mongodb.com/docs/manual/reference/mongodb-extended-json/.
//
// # Mapping
//
// Composite types
//
//	types package      fjson package        canonical JSON representation
//
//	*types.Document    *documentType        JSON object
//	*types.Array       *arrayType           JSON array
//
// Scalar types
//
//	types package      fjson package        canonical JSON representation
//
//	float64            *doubleType          {"$numberDouble": "<value>"}
//	string             *stringType          JSON string
//	types.Binary       *binaryType          {"$binary": {"base64": "<payload>", "subType": "<hex byte>"}}
//	types.ObjectID     *objectIDType        {"$oid": "<24 character hex string>"}
//	bool               *boolType            JSON true / false values
//	time.Time          *dateTimeType        {"$date": {"$numberLong": "<ms>"}}
//	types.NullType     *nullType            JSON null
//	types.Undefined    *undefinedType       {"$undefined": true}
//	types.Regex        *regexType           {"$regularExpression": {"pattern": "<pattern>", "options": "<options>"}}
//	types.DBPointer    *dbPointerType       {"$dbPointer": {"$ref": "<namespace>", "$id": {"$oid": "<hex>"}}}
//	types.JavaScript   *javaScriptType      {"$code": "<code>"}
//	types.CodeWithScope *codeWithScopeType  {"$code": "<code>", "$scope": <document>}
//	types.Symbol       *symbolType          {"$symbol": "<value>"}
//	int32              *int32Type           {"$numberInt": "<value>"}
//	types.Timestamp    *timestampType       {"$timestamp": "<unsigned decimal string>"}
//	int64, types.Long  *int64Type           {"$numberLong": "<value>"}
//	types.Decimal128   *decimal128Type      {"$numberDecimal": "<value>"}
//	types.MinKeyType   *minKeyType          {"$minKey": 1}
//	types.MaxKeyType   *maxKeyType          {"$maxKey": 1}
//
// Values promoted by decoding keep their meaning: []byte marshals as generic
// binary, uuid.UUID as binary subtype 4, *regexp.Regexp as a regular
// expression, RawDocument and RawArray as generic binary.
//
//nolint:lll // for readability
package fjson

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// fjsontype is a type that can be marshaled to Extended JSON.
//
//sumtype:decl
type fjsontype interface {
	fjsontype() // seal for sumtype

	json.Marshaler
}

// toFJSON converts built-in or types' package value to fjsontype value.
func toFJSON(v any) fjsontype {
	switch v := v.(type) {
	case *types.Document:
		return pointer.To(documentType(*v))
	case *types.Array:
		return pointer.To(arrayType(*v))
	case float64:
		return pointer.To(doubleType(v))
	case string:
		return pointer.To(stringType(v))
	case types.Binary:
		return pointer.To(binaryType(v))
	case []byte:
		return pointer.To(binaryType(types.Binary{B: v, Subtype: types.BinaryGeneric}))
	case uuid.UUID:
		return pointer.To(binaryType(types.BinaryFromUUID(v)))
	case types.RawDocument:
		return pointer.To(binaryType(types.Binary{B: v, Subtype: types.BinaryGeneric}))
	case types.RawArray:
		return pointer.To(binaryType(types.Binary{B: v, Subtype: types.BinaryGeneric}))
	case types.ObjectID:
		return pointer.To(objectIDType(v))
	case bool:
		return pointer.To(boolType(v))
	case time.Time:
		return pointer.To(dateTimeType(v))
	case types.NullType:
		return pointer.To(nullType(v))
	case types.UndefinedType:
		return pointer.To(undefinedType(v))
	case types.Regex:
		return pointer.To(regexType(v))
	case *regexp.Regexp:
		return pointer.To(regexType(types.RegexFromGo(v)))
	case types.DBPointer:
		return pointer.To(dbPointerType(v))
	case types.JavaScript:
		return pointer.To(javaScriptType(v))
	case types.CodeWithScope:
		return pointer.To(codeWithScopeType(v))
	case types.Symbol:
		return pointer.To(symbolType(v))
	case int32:
		return pointer.To(int32Type(v))
	case types.Timestamp:
		return pointer.To(timestampType(v))
	case int64:
		return pointer.To(int64Type(types.NewLong(v)))
	case types.Long:
		return pointer.To(int64Type(v))
	case types.Decimal128:
		return pointer.To(decimal128Type(v))
	case types.MinKeyType:
		return pointer.To(minKeyType(v))
	case types.MaxKeyType:
		return pointer.To(maxKeyType(v))
	}

	panic(fmt.Sprintf("not reached: %T", v)) // for sumtype to work
}

// Marshal encodes given built-in or types' package value
// into canonical Extended JSON.
func Marshal(v any) ([]byte, error) {
	if v == nil {
		panic("v is nil")
	}

	b, err := toFJSON(v).MarshalJSON()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return b, nil
}
