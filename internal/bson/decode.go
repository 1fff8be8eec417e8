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

	"github.com/cristalhq/bson/bsonproto"
	"github.com/google/uuid"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
	"github.com/lucsoft/bsonkit/internal/util/must"
)

// Deserialize decodes a single document from b.
//
// Unless opts.AllowObjectSmallerThanBufferSize is set,
// the document must span the whole slice.
// nil opts mean default options.
func Deserialize(b []byte, opts *DecodeOptions) (*types.Document, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	raw, err := frameDocument(b, opts.AllowObjectSmallerThanBufferSize)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	res, err := decodeDocument(raw, opts)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// frameDocument validates the length prefix and trailing NUL of the document
// at the start of b and returns the framed bytes.
// When trailing is false, extra bytes after the document are an error.
func frameDocument(b []byte, trailing bool) ([]byte, error) {
	if len(b) < 5 {
		return nil, lazyerrors.Errorf("got %d bytes: %w", len(b), ErrDecodeShortInput)
	}

	l := int(int32(binary.LittleEndian.Uint32(b)))
	if l < 5 || l > types.MaxDocumentLen {
		return nil, lazyerrors.Errorf("document length %d: %w", l, ErrDecodeInvalidInput)
	}

	if len(b) < l {
		return nil, lazyerrors.Errorf("document length %d, got %d bytes: %w", l, len(b), ErrDecodeShortInput)
	}

	if !trailing && len(b) != l {
		return nil, lazyerrors.Errorf("document length %d, got %d bytes: %w", l, len(b), ErrDecodeInvalidInput)
	}

	if b[l-1] != 0 {
		return nil, lazyerrors.Errorf("no document terminator: %w", ErrDecodeInvalidInput)
	}

	return b[:l], nil
}

// decodeDocument decodes an exactly-framed document.
func decodeDocument(b []byte, opts *DecodeOptions) (*types.Document, error) {
	res := types.MakeDocument(1)

	offset := 4
	for offset != len(b)-1 {
		if offset > len(b)-1 {
			return nil, lazyerrors.Errorf("offset %d of %d bytes: %w", offset, len(b), ErrDecodeInvalidInput)
		}

		t := tag(b[offset])
		if t == 0 {
			return nil, lazyerrors.Errorf("unexpected terminator at offset %d: %w", offset, ErrDecodeInvalidInput)
		}
		offset++

		name, err := bsonproto.DecodeCString(b[offset:])
		if err != nil {
			return nil, lazyerrors.Error(err)
		}
		offset += bsonproto.SizeCString(name)

		v, l, err := decodeField(b[offset:], t, name, opts)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}
		offset += l

		must.NoError(res.Add(name, v))
	}

	return res, nil
}

// decodeArray decodes an exactly-framed array document, ignoring the index keys.
func decodeArray(b []byte, opts *DecodeOptions) (*types.Array, error) {
	doc, err := decodeDocument(b, opts)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	res := types.MakeArray(doc.Len())
	for i := 0; i < doc.Len(); i++ {
		_, v := doc.Entry(i)
		must.NoError(res.Append(v))
	}

	return res, nil
}

// decodeField decodes a single field value of the given type,
// returning the value and the number of bytes it occupied.
func decodeField(b []byte, t tag, name string, opts *DecodeOptions) (any, int, error) {
	var v any
	var l int
	var err error

	switch t {
	case tagFloat64:
		v, err = bsonproto.DecodeFloat64(b)
		l = bsonproto.SizeFloat64

	case tagString:
		var s string
		s, err = bsonproto.DecodeString(b)
		l = bsonproto.SizeString(s)
		v = s

	case tagDocument:
		var raw []byte
		if raw, err = frameDocument(b, true); err != nil {
			break
		}
		l = len(raw)

		if opts.FieldsAsRaw[name] {
			v = RawDocument(raw)
			break
		}

		v, err = decodeDocument(raw, opts)

	case tagArray:
		var raw []byte
		if raw, err = frameDocument(b, true); err != nil {
			break
		}
		l = len(raw)

		if opts.FieldsAsRaw[name] {
			v = RawArray(raw)
			break
		}

		v, err = decodeArray(raw, opts)

	case tagBinary:
		var s bsonproto.Binary
		if s, err = bsonproto.DecodeBinary(b); err != nil {
			break
		}
		l = bsonproto.SizeBinary(s)
		v = promoteBinary(s, opts)

	case tagUndefined:
		v = types.Undefined

	case tagObjectID:
		var s bsonproto.ObjectID
		s, err = bsonproto.DecodeObjectID(b)
		l = bsonproto.SizeObjectID
		v = types.ObjectID(s)

	case tagBool:
		v, err = bsonproto.DecodeBool(b)
		l = bsonproto.SizeBool

	case tagTime:
		v, err = bsonproto.DecodeTime(b)
		l = bsonproto.SizeTime

	case tagNull:
		v = types.Null

	case tagRegex:
		var s bsonproto.Regex
		if s, err = bsonproto.DecodeRegex(b); err != nil {
			break
		}
		l = bsonproto.SizeRegex(s)

		r := types.Regex{Pattern: s.Pattern, Options: s.Options}
		if opts.BSONRegExp {
			v = r
			break
		}

		// fall back to the tagged form when the pattern
		// does not translate to a Go regexp
		if compiled, cerr := r.Compile(); cerr == nil {
			v = compiled
		} else {
			v = r
		}

	case tagDBPointer:
		var ns string
		if ns, err = bsonproto.DecodeString(b); err != nil {
			break
		}
		l = bsonproto.SizeString(ns)

		var id bsonproto.ObjectID
		id, err = bsonproto.DecodeObjectID(b[l:])
		l += bsonproto.SizeObjectID
		v = types.DBPointer{NS: ns, ID: types.ObjectID(id)}

	case tagJavaScript:
		var s string
		s, err = bsonproto.DecodeString(b)
		l = bsonproto.SizeString(s)
		v = types.JavaScript{Code: s}

	case tagSymbol:
		var s string
		s, err = bsonproto.DecodeString(b)
		l = bsonproto.SizeString(s)
		v = types.Symbol(s)

	case tagCodeWithScope:
		v, l, err = decodeCodeWithScope(b, opts)

	case tagInt32:
		v, err = bsonproto.DecodeInt32(b)
		l = bsonproto.SizeInt32

	case tagTimestamp:
		var s bsonproto.Timestamp
		s, err = bsonproto.DecodeTimestamp(b)
		l = bsonproto.SizeTimestamp
		v = types.Timestamp(s)

	case tagInt64:
		var s int64
		s, err = bsonproto.DecodeInt64(b)
		l = bsonproto.SizeInt64

		if opts.PromoteLongs {
			v = s
		} else {
			v = types.NewLong(s)
		}

	case tagDecimal128:
		if len(b) < sizeDecimal128 {
			err = lazyerrors.Errorf("got %d bytes: %w", len(b), ErrDecodeShortInput)
			break
		}

		v = types.Decimal128{
			L: binary.LittleEndian.Uint64(b),
			H: binary.LittleEndian.Uint64(b[8:]),
		}
		l = sizeDecimal128

	case tagMinKey:
		v = types.MinKey

	case tagMaxKey:
		v = types.MaxKey

	default:
		return nil, 0, lazyerrors.Errorf("tag 0x%02x: %w", byte(t), ErrUnknownTag)
	}

	if err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	return v, l, nil
}

// promoteBinary converts a decoded binary value per the options.
func promoteBinary(s bsonproto.Binary, opts *DecodeOptions) any {
	res := types.Binary{B: s.B, Subtype: types.BinarySubtype(s.Subtype)}

	if !opts.PromoteValues {
		return res
	}

	if opts.PromoteBuffers && res.Subtype == types.BinaryGeneric {
		return res.B
	}

	if res.Subtype == types.BinaryUUID && len(res.B) == 16 {
		return uuid.UUID(res.B)
	}

	return res
}

// decodeCodeWithScope decodes a CodeWithScope value,
// recursing into the scope with the same options.
func decodeCodeWithScope(b []byte, opts *DecodeOptions) (types.CodeWithScope, int, error) {
	var res types.CodeWithScope

	if len(b) < 4 {
		return res, 0, lazyerrors.Errorf("got %d bytes: %w", len(b), ErrDecodeShortInput)
	}

	total := int(int32(binary.LittleEndian.Uint32(b)))
	if total < 4+bsonproto.SizeString("")+5 || total > len(b) {
		return res, 0, lazyerrors.Errorf("CodeWithScope length %d: %w", total, ErrDecodeInvalidInput)
	}

	code, err := bsonproto.DecodeString(b[4:])
	if err != nil {
		return res, 0, lazyerrors.Error(err)
	}

	scopeOff := 4 + bsonproto.SizeString(code)
	if scopeOff >= total {
		return res, 0, lazyerrors.Errorf("CodeWithScope length %d: %w", total, ErrDecodeInvalidInput)
	}

	raw, err := frameDocument(b[scopeOff:total], false)
	if err != nil {
		return res, 0, lazyerrors.Error(err)
	}

	scope, err := decodeDocument(raw, opts)
	if err != nil {
		return res, 0, lazyerrors.Error(err)
	}

	res = types.CodeWithScope{Code: code, Scope: scope}

	return res, total, nil
}
