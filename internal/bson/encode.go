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
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cristalhq/bson/bsonproto"
	"github.com/google/uuid"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// SerializeWithBufferAndIndex encodes the document into the given buffer
// starting at startIndex, returning the index of the last written byte.
//
// It never touches the shared internal buffer,
// so concurrent callers may serialize into separate buffers freely.
func SerializeWithBufferAndIndex(doc *types.Document, buf []byte, opts *EncodeOptions, startIndex int) (int, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	// the size pass recurses without tracking the path,
	// so cycles must be ruled out before it runs
	if err := checkCycles(doc, map[any]struct{}{}); err != nil {
		return 0, lazyerrors.Error(err)
	}

	size := sizeDocument(doc, opts)
	if startIndex < 0 || startIndex+size > len(buf) {
		return 0, lazyerrors.Errorf(
			"document of size %d does not fit at index %d of a %d-byte buffer: %w",
			size, startIndex, len(buf), ErrBufferTooSmall,
		)
	}

	end, err := encodeDocument(buf, startIndex, doc, opts)
	if err != nil {
		return 0, lazyerrors.Error(err)
	}

	return end - 1, nil
}

// checkCycles returns ErrCyclicDocument if a document or array is
// reachable from itself. The ancestors set holds the identities of the
// containers on the current path; sharing a subtree between two fields
// is not a cycle.
func checkCycles(v any, ancestors map[any]struct{}) error {
	switch v := v.(type) {
	case *types.Document:
		if _, ok := ancestors[v]; ok {
			return lazyerrors.Error(ErrCyclicDocument)
		}

		ancestors[v] = struct{}{}
		defer delete(ancestors, v)

		for i := 0; i < v.Len(); i++ {
			_, value := v.Entry(i)
			if err := checkCycles(value, ancestors); err != nil {
				return err
			}
		}

		return nil

	case *types.Array:
		if _, ok := ancestors[v]; ok {
			return lazyerrors.Error(ErrCyclicDocument)
		}

		ancestors[v] = struct{}{}
		defer delete(ancestors, v)

		for i := 0; i < v.Len(); i++ {
			if err := checkCycles(v.Get(i), ancestors); err != nil {
				return err
			}
		}

		return nil

	case types.CodeWithScope:
		return checkCycles(v.Scope, ancestors)

	default:
		return nil
	}
}

// encodeDocument encodes the document at off, returning the end offset.
//
// It writes a placeholder length prefix, encodes the fields in insertion
// order, writes the closing NUL, and then backpatches the prefix.
// The caller must have run checkCycles first.
func encodeDocument(b []byte, off int, doc *types.Document, opts *EncodeOptions) (int, error) {
	start := off
	off += 4

	for i := 0; i < doc.Len(); i++ {
		name, value := doc.Entry(i)

		if opts.IgnoreUndefined {
			if _, skip := value.(types.UndefinedType); skip {
				continue
			}
		}

		if err := checkKey(name, opts); err != nil {
			return 0, lazyerrors.Error(err)
		}

		var err error
		if off, err = encodeField(b, off, name, value, opts); err != nil {
			return 0, lazyerrors.Error(err)
		}
	}

	b[off] = 0
	off++

	binary.LittleEndian.PutUint32(b[start:], uint32(off-start))

	return off, nil
}

// encodeArray encodes the array at off using the document layout
// with stringified element indexes as keys.
func encodeArray(b []byte, off int, arr *types.Array, opts *EncodeOptions) (int, error) {
	start := off
	off += 4

	for i := 0; i < arr.Len(); i++ {
		var err error
		if off, err = encodeField(b, off, strconv.Itoa(i), arr.Get(i), opts); err != nil {
			return 0, lazyerrors.Error(err)
		}
	}

	b[off] = 0
	off++

	binary.LittleEndian.PutUint32(b[start:], uint32(off-start))

	return off, nil
}

// checkKey validates a field name.
//
// Embedded NUL bytes are always rejected; a leading '$' and an embedded '.'
// only with the CheckKeys option.
func checkKey(name string, opts *EncodeOptions) error {
	if strings.IndexByte(name, 0) >= 0 {
		return lazyerrors.Errorf("%q: %w", name, ErrInvalidCString)
	}

	if !opts.CheckKeys {
		return nil
	}

	if strings.HasPrefix(name, "$") {
		return lazyerrors.Errorf("%q must not start with '$': %w", name, ErrInvalidKey)
	}

	if strings.Contains(name, ".") {
		return lazyerrors.Errorf("%q must not contain '.': %w", name, ErrInvalidKey)
	}

	return nil
}

// encodeKey writes the type tag and the NUL-terminated field name.
func encodeKey(b []byte, off int, t tag, name string) int {
	b[off] = byte(t)
	off++

	bsonproto.EncodeCString(b[off:], name)

	return off + bsonproto.SizeCString(name)
}

// encodeField encodes a single document field.
//
// It panics if v is not a valid type; the document API prevents those.
func encodeField(b []byte, off int, name string, v any, opts *EncodeOptions) (int, error) {
	switch v := v.(type) {
	case *types.Document:
		off = encodeKey(b, off, tagDocument, name)
		return encodeDocument(b, off, v, opts)

	case types.RawDocument:
		off = encodeKey(b, off, tagDocument, name)
		return off + copy(b[off:], v), nil

	case *types.Array:
		off = encodeKey(b, off, tagArray, name)
		return encodeArray(b, off, v, opts)

	case types.RawArray:
		off = encodeKey(b, off, tagArray, name)
		return off + copy(b[off:], v), nil

	case float64:
		off = encodeKey(b, off, tagFloat64, name)
		bsonproto.EncodeFloat64(b[off:], v)
		return off + bsonproto.SizeFloat64, nil

	case string:
		off = encodeKey(b, off, tagString, name)
		bsonproto.EncodeString(b[off:], v)
		return off + bsonproto.SizeString(v), nil

	case types.Binary:
		off = encodeKey(b, off, tagBinary, name)
		p := bsonproto.Binary{B: v.B, Subtype: bsonproto.BinarySubtype(v.Subtype)}
		bsonproto.EncodeBinary(b[off:], p)
		return off + bsonproto.SizeBinary(p), nil

	case []byte:
		off = encodeKey(b, off, tagBinary, name)
		p := bsonproto.Binary{B: v, Subtype: bsonproto.BinaryGeneric}
		bsonproto.EncodeBinary(b[off:], p)
		return off + bsonproto.SizeBinary(p), nil

	case uuid.UUID:
		off = encodeKey(b, off, tagBinary, name)
		p := bsonproto.Binary{B: v[:], Subtype: bsonproto.BinaryUUID}
		bsonproto.EncodeBinary(b[off:], p)
		return off + bsonproto.SizeBinary(p), nil

	case types.UndefinedType:
		return encodeKey(b, off, tagUndefined, name), nil

	case types.ObjectID:
		off = encodeKey(b, off, tagObjectID, name)
		bsonproto.EncodeObjectID(b[off:], bsonproto.ObjectID(v))
		return off + bsonproto.SizeObjectID, nil

	case bool:
		off = encodeKey(b, off, tagBool, name)
		bsonproto.EncodeBool(b[off:], v)
		return off + bsonproto.SizeBool, nil

	case time.Time:
		off = encodeKey(b, off, tagTime, name)
		bsonproto.EncodeTime(b[off:], v)
		return off + bsonproto.SizeTime, nil

	case types.NullType:
		return encodeKey(b, off, tagNull, name), nil

	case types.Regex:
		return encodeRegex(b, off, name, v)

	case *regexp.Regexp:
		return encodeRegex(b, off, name, types.RegexFromGo(v))

	case types.DBPointer:
		off = encodeKey(b, off, tagDBPointer, name)
		bsonproto.EncodeString(b[off:], v.NS)
		off += bsonproto.SizeString(v.NS)
		bsonproto.EncodeObjectID(b[off:], bsonproto.ObjectID(v.ID))
		return off + bsonproto.SizeObjectID, nil

	case types.JavaScript:
		off = encodeKey(b, off, tagJavaScript, name)
		bsonproto.EncodeString(b[off:], v.Code)
		return off + bsonproto.SizeString(v.Code), nil

	case types.Symbol:
		off = encodeKey(b, off, tagSymbol, name)
		bsonproto.EncodeString(b[off:], string(v))
		return off + bsonproto.SizeString(string(v)), nil

	case types.CodeWithScope:
		off = encodeKey(b, off, tagCodeWithScope, name)

		total := 4 + bsonproto.SizeString(v.Code) + sizeDocument(v.Scope, opts)
		binary.LittleEndian.PutUint32(b[off:], uint32(total))
		off += 4

		bsonproto.EncodeString(b[off:], v.Code)
		off += bsonproto.SizeString(v.Code)

		return encodeDocument(b, off, v.Scope, opts)

	case int32:
		off = encodeKey(b, off, tagInt32, name)
		bsonproto.EncodeInt32(b[off:], v)
		return off + bsonproto.SizeInt32, nil

	case types.Timestamp:
		off = encodeKey(b, off, tagTimestamp, name)
		bsonproto.EncodeTimestamp(b[off:], bsonproto.Timestamp(v))
		return off + bsonproto.SizeTimestamp, nil

	case int64:
		off = encodeKey(b, off, tagInt64, name)
		bsonproto.EncodeInt64(b[off:], v)
		return off + bsonproto.SizeInt64, nil

	case types.Long:
		off = encodeKey(b, off, tagInt64, name)
		bsonproto.EncodeInt64(b[off:], v.Int64())
		return off + bsonproto.SizeInt64, nil

	case types.Decimal128:
		off = encodeKey(b, off, tagDecimal128, name)
		binary.LittleEndian.PutUint64(b[off:], v.L)
		binary.LittleEndian.PutUint64(b[off+8:], v.H)
		return off + sizeDecimal128, nil

	case types.MinKeyType:
		return encodeKey(b, off, tagMinKey, name), nil

	case types.MaxKeyType:
		return encodeKey(b, off, tagMaxKey, name), nil

	default:
		panic(fmt.Sprintf("bson.encodeField: invalid type %T", v))
	}
}

// encodeRegex encodes a regular expression with its options in the wire order.
func encodeRegex(b []byte, off int, name string, v types.Regex) (int, error) {
	if strings.IndexByte(v.Pattern, 0) >= 0 || strings.IndexByte(v.Options, 0) >= 0 {
		return 0, lazyerrors.Errorf("%q: regex: %w", name, ErrInvalidCString)
	}

	off = encodeKey(b, off, tagRegex, name)

	p := bsonproto.Regex{Pattern: v.Pattern, Options: v.SortedOptions()}
	bsonproto.EncodeRegex(b[off:], p)

	return off + bsonproto.SizeRegex(p), nil
}
