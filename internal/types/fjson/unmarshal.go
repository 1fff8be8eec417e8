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

package fjson

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// Unmarshal decodes canonical Extended JSON into a built-in
// or types' package value.
//
// Documents are decoded with their field order preserved.
// Plain JSON numbers, as produced by MarshalRelaxed, are accepted too.
func Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := unmarshalValue(dec)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, lazyerrors.New("unexpected data after top-level value")
	}

	return v, nil
}

// UnmarshalDocument decodes canonical Extended JSON
// that must contain a document.
func UnmarshalDocument(data []byte) (*types.Document, error) {
	v, err := Unmarshal(data)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	doc, ok := v.(*types.Document)
	if !ok {
		return nil, lazyerrors.Errorf("expected a document, got %T", v)
	}

	return doc, nil
}

// unmarshalValue decodes the next JSON value from dec.
func unmarshalValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			return unmarshalObject(dec)
		case '[':
			return unmarshalArray(dec)
		default:
			return nil, lazyerrors.Errorf("unexpected %q", tok.String())
		}

	case string:
		return tok, nil

	case json.Number:
		return unmarshalNumber(tok)

	case bool:
		return tok, nil

	case nil:
		return types.Null, nil

	default:
		return nil, lazyerrors.Errorf("unexpected token %[1]v (%[1]T)", tok)
	}
}

// unmarshalNumber converts a plain JSON number the way relaxed
// Extended JSON parsers do: integral values that fit become int32,
// then int64, everything else float64.
func unmarshalNumber(n json.Number) (any, error) {
	if strings.ContainsAny(n.String(), ".eE") {
		f, err := n.Float64()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		return f, nil
	}

	i, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return nil, lazyerrors.Error(err)
		}

		return f, nil
	}

	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return int32(i), nil
	}

	return i, nil
}

// unmarshalArray decodes array elements after the opening bracket.
func unmarshalArray(dec *json.Decoder) (*types.Array, error) {
	res := types.MakeArray(0)

	for dec.More() {
		v, err := unmarshalValue(dec)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		if err = res.Append(v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// unmarshalObject decodes an object after the opening brace,
// producing either a wrapped scalar or a document.
func unmarshalObject(dec *json.Decoder) (any, error) {
	if !dec.More() {
		if err := expectDelim(dec, '}'); err != nil {
			return nil, lazyerrors.Error(err)
		}

		return types.MakeDocument(0), nil
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	key, ok := tok.(string)
	if !ok {
		return nil, lazyerrors.Errorf("expected object key, got %v", tok)
	}

	if strings.HasPrefix(key, "$") {
		if v, handled, err := unmarshalWrapped(dec, key); handled {
			if err != nil {
				return nil, lazyerrors.Error(err)
			}

			return v, nil
		}
	}

	res := types.MakeDocument(1)

	for {
		v, err := unmarshalValue(dec)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		if err = res.Add(key, v); err != nil {
			return nil, lazyerrors.Error(err)
		}

		if !dec.More() {
			break
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		if key, ok = tok.(string); !ok {
			return nil, lazyerrors.Errorf("expected object key, got %v", tok)
		}
	}

	if err = expectDelim(dec, '}'); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// unmarshalWrapped decodes the rest of a wrapped scalar object
// whose first key is key. handled is false if the key is not
// a recognized wrapper; no tokens are consumed in that case.
func unmarshalWrapped(dec *json.Decoder, key string) (any, bool, error) {
	var v any

	switch key {
	case "$numberDouble":
		s, err := stringValue(dec)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		if v, err = parseDouble(s); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

	case "$numberInt":
		s, err := stringValue(dec)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}
		v = int32(i)

	case "$numberLong":
		s, err := stringValue(dec)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			v = i
			break
		}

		// values beyond int64 come from unsigned Long marshaling
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}
		v = types.NewULong(u)

	case "$numberDecimal":
		s, err := stringValue(dec)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		if v, err = types.ParseDecimal128(s); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

	case "$oid":
		s, err := stringValue(dec)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		if v, err = types.NewObjectIDFromHex(s); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

	case "$date":
		var err error
		if v, err = unmarshalDate(dec); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

	case "$binary":
		var p struct {
			Base64  string `json:"base64"`
			SubType string `json:"subType"`
		}
		if err := dec.Decode(&p); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		b, err := base64.StdEncoding.DecodeString(p.Base64)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		st, err := strconv.ParseUint(p.SubType, 16, 8)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		v = types.Binary{B: b, Subtype: types.BinarySubtype(st)}

	case "$regularExpression":
		var p struct {
			Pattern string `json:"pattern"`
			Options string `json:"options"`
		}
		if err := dec.Decode(&p); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		v = types.Regex{Pattern: p.Pattern, Options: p.Options}

	case "$timestamp":
		var err error
		if v, err = unmarshalTimestamp(dec); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

	case "$symbol":
		s, err := stringValue(dec)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		v = types.Symbol(s)

	case "$code":
		return unmarshalCode(dec)

	case "$dbPointer":
		var p struct {
			Ref string `json:"$ref"`
			ID  struct {
				O string `json:"$oid"`
			} `json:"$id"`
		}
		if err := dec.Decode(&p); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		id, err := types.NewObjectIDFromHex(p.ID.O)
		if err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		v = types.DBPointer{NS: p.Ref, ID: id}

	case "$minKey":
		if _, err := dec.Token(); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		v = types.MinKey

	case "$maxKey":
		if _, err := dec.Token(); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		v = types.MaxKey

	case "$undefined":
		if _, err := dec.Token(); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		v = types.Undefined

	default:
		return nil, false, nil
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, true, lazyerrors.Error(err)
	}

	return v, true, nil
}

// unmarshalDate decodes the value of a $date key:
// either {"$numberLong": "<ms>"} or an ISO-8601 string.
func unmarshalDate(dec *json.Decoder) (time.Time, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return time.Time{}, lazyerrors.Error(err)
	}

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, lazyerrors.Error(err)
		}

		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, lazyerrors.Error(err)
		}

		return t.UTC(), nil
	}

	var p struct {
		L string `json:"$numberLong"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, lazyerrors.Error(err)
	}

	ms, err := strconv.ParseInt(p.L, 10, 64)
	if err != nil {
		return time.Time{}, lazyerrors.Error(err)
	}

	return time.UnixMilli(ms).UTC(), nil
}

// unmarshalTimestamp decodes the value of a $timestamp key:
// either an unsigned decimal string or the {"t": ..., "i": ...} form.
func unmarshalTimestamp(dec *json.Decoder) (types.Timestamp, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return 0, lazyerrors.Error(err)
	}

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, lazyerrors.Error(err)
		}

		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, lazyerrors.Error(err)
		}

		return types.Timestamp(u), nil
	}

	var p struct {
		T uint32 `json:"t"`
		I uint32 `json:"i"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, lazyerrors.Error(err)
	}

	return types.NewTimestamp(p.T, p.I), nil
}

// unmarshalCode decodes the rest of a {"$code": ...} object,
// with or without a following $scope.
func unmarshalCode(dec *json.Decoder) (any, bool, error) {
	code, err := stringValue(dec)
	if err != nil {
		return nil, true, lazyerrors.Error(err)
	}

	if !dec.More() {
		if err = expectDelim(dec, '}'); err != nil {
			return nil, true, lazyerrors.Error(err)
		}

		return types.JavaScript{Code: code}, true, nil
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, true, lazyerrors.Error(err)
	}

	if tok != "$scope" {
		return nil, true, lazyerrors.Errorf("expected $scope, got %v", tok)
	}

	v, err := unmarshalValue(dec)
	if err != nil {
		return nil, true, lazyerrors.Error(err)
	}

	scope, ok := v.(*types.Document)
	if !ok {
		return nil, true, lazyerrors.Errorf("expected a scope document, got %T", v)
	}

	if err = expectDelim(dec, '}'); err != nil {
		return nil, true, lazyerrors.Error(err)
	}

	return types.CodeWithScope{Code: code, Scope: scope}, true, nil
}

// stringValue reads the next token and requires it to be a string.
func stringValue(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", lazyerrors.Error(err)
	}

	s, ok := tok.(string)
	if !ok {
		return "", lazyerrors.Errorf("expected string, got %v", tok)
	}

	return s, nil
}

// expectDelim reads the next token and requires it to be the given delimiter.
func expectDelim(dec *json.Decoder, d json.Delim) (err error) {
	tok, err := dec.Token()
	if err != nil {
		return lazyerrors.Error(err)
	}

	if tok != d {
		return lazyerrors.Errorf("expected %q, got %v", d.String(), tok)
	}

	return nil
}
