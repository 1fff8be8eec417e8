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

import "fmt"

// tag represents a BSON type tag byte.
type tag byte

const (
	tagFloat64       = tag(0x01)
	tagString        = tag(0x02)
	tagDocument      = tag(0x03)
	tagArray         = tag(0x04)
	tagBinary        = tag(0x05)
	tagUndefined     = tag(0x06) // deprecated by BSON, write-only for legacy data
	tagObjectID      = tag(0x07)
	tagBool          = tag(0x08)
	tagTime          = tag(0x09)
	tagNull          = tag(0x0a)
	tagRegex         = tag(0x0b)
	tagDBPointer     = tag(0x0c) // deprecated by BSON
	tagJavaScript    = tag(0x0d)
	tagSymbol        = tag(0x0e) // deprecated by BSON
	tagCodeWithScope = tag(0x0f)
	tagInt32         = tag(0x10)
	tagTimestamp     = tag(0x11)
	tagInt64         = tag(0x12)
	tagDecimal128    = tag(0x13)
	tagMinKey        = tag(0xff)
	tagMaxKey        = tag(0x7f)
)

// String implements fmt.Stringer.
func (t tag) String() string {
	switch t {
	case tagFloat64:
		return "Double"
	case tagString:
		return "String"
	case tagDocument:
		return "Document"
	case tagArray:
		return "Array"
	case tagBinary:
		return "Binary"
	case tagUndefined:
		return "Undefined"
	case tagObjectID:
		return "ObjectID"
	case tagBool:
		return "Bool"
	case tagTime:
		return "DateTime"
	case tagNull:
		return "Null"
	case tagRegex:
		return "Regex"
	case tagDBPointer:
		return "DBPointer"
	case tagJavaScript:
		return "JavaScript"
	case tagSymbol:
		return "Symbol"
	case tagCodeWithScope:
		return "CodeWithScope"
	case tagInt32:
		return "Int32"
	case tagTimestamp:
		return "Timestamp"
	case tagInt64:
		return "Int64"
	case tagDecimal128:
		return "Decimal128"
	case tagMinKey:
		return "MinKey"
	case tagMaxKey:
		return "MaxKey"
	default:
		return fmt.Sprintf("tag(0x%02x)", byte(t))
	}
}
