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

// Package types provides Go types matching BSON types that don't have built-in Go equivalents.
//
// # Mapping
//
// Composite types (passed by pointers)
//
//	Document        *types.Document
//	Array           *types.Array
//
// Scalar types (passed by values)
//
//	Double          float64
//	String          string
//	Binary data     types.Binary
//	Undefined       types.UndefinedType (deprecated by BSON, write-only)
//	ObjectId        types.ObjectID
//	Boolean         bool
//	Date            time.Time
//	Null            types.NullType
//	Regex           types.Regex
//	DBPointer       types.DBPointer (deprecated by BSON)
//	JavaScript      types.JavaScript
//	Symbol          types.Symbol (deprecated by BSON)
//	Code w/scope    types.CodeWithScope
//	32-bit integer  int32
//	Timestamp       types.Timestamp
//	64-bit integer  int64 or types.Long
//	Decimal128      types.Decimal128
//	MinKey          types.MinKeyType
//	MaxKey          types.MaxKeyType
//
// The encoder additionally accepts []byte (as generic Binary), uuid.UUID
// (as Binary with the UUID subtype), and *regexp.Regexp (as Regex);
// those values are produced by decoder promotion options.
package types

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// MaxDocumentLen is the maximum allowed length of a top-level document, in bytes.
const MaxDocumentLen = 16777216 // 16 MiB

// ScalarType represents a BSON scalar type.
type ScalarType interface {
	float64 | string | Binary | UndefinedType | ObjectID | bool | time.Time | NullType |
		Regex | DBPointer | JavaScript | Symbol | CodeWithScope |
		int32 | Timestamp | int64 | Long | Decimal128 | MinKeyType | MaxKeyType
}

// CompositeType represents a BSON composite type - *Document or *Array.
type CompositeType interface {
	*Document | *Array
}

// Type represents any BSON type (scalar or composite).
type Type interface {
	ScalarType | CompositeType
}

type (
	// NullType represents BSON type Null.
	//
	// Most callers should use the types.Null value instead.
	NullType struct{}

	// UndefinedType represents the deprecated BSON type Undefined.
	//
	// Most callers should use the types.Undefined value instead.
	UndefinedType struct{}

	// MinKeyType represents BSON type MinKey.
	MinKeyType struct{}

	// MaxKeyType represents BSON type MaxKey.
	MaxKeyType struct{}

	// Symbol represents the deprecated BSON type Symbol.
	Symbol string

	// JavaScript represents BSON type JavaScript code without scope.
	JavaScript struct {
		Code string
	}

	// CodeWithScope represents BSON type JavaScript code with a captured scope.
	CodeWithScope struct {
		Scope *Document
		Code  string
	}

	// DBPointer represents the deprecated BSON type DBPointer.
	DBPointer struct {
		NS string
		ID ObjectID
	}
)

// Null represents BSON value Null.
var Null = NullType{}

// Undefined represents BSON value Undefined.
var Undefined = UndefinedType{}

// MinKey represents BSON value MinKey.
var MinKey = MinKeyType{}

// MaxKey represents BSON value MaxKey.
var MaxKey = MaxKeyType{}

// validateValue returns an error if value is not a valid BSON value
// (including the promoted forms accepted by the encoder).
func validateValue(value any) error {
	switch value := value.(type) {
	case *Document:
		if value == nil {
			return fmt.Errorf("types.validateValue: *Document is nil")
		}
		return nil
	case *Array:
		if value == nil {
			return fmt.Errorf("types.validateValue: *Array is nil")
		}
		return nil
	case CodeWithScope:
		if value.Scope == nil {
			return fmt.Errorf("types.validateValue: CodeWithScope.Scope is nil")
		}
		return nil
	case *regexp.Regexp:
		if value == nil {
			return fmt.Errorf("types.validateValue: *regexp.Regexp is nil")
		}
		return nil
	case float64, string, Binary, UndefinedType, ObjectID, bool, time.Time, NullType,
		Regex, DBPointer, JavaScript, Symbol,
		int32, Timestamp, int64, Long, Decimal128, MinKeyType, MaxKeyType:
		return nil
	case []byte, uuid.UUID:
		return nil
	case RawDocument, RawArray:
		return nil
	default:
		return fmt.Errorf("types.validateValue: unsupported type: %[1]T (%[1]v)", value)
	}
}
