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
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/must"
)

var oid = must.NotFail(types.NewObjectIDFromHex("62e2bd1a29a2a221c8c36ace"))

func TestMarshalUnmarshal(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    any
		j    string
	}{
		{
			"Document",
			must.NotFail(types.NewDocument("b", int32(1), "a", "x")),
			`{"b":{"$numberInt":"1"},"a":"x"}`,
		},
		{
			"EmptyDocument",
			types.MakeDocument(0),
			`{}`,
		},
		{
			"Array",
			must.NotFail(types.NewArray(int64(42), "foo")),
			`[{"$numberLong":"42"},"foo"]`,
		},
		{"Double", 42.13, `{"$numberDouble":"42.13"}`},
		{"String", "foo", `"foo"`},
		{
			"Binary",
			types.Binary{Subtype: types.BinarySubtype(0x80), B: []byte{0x42}},
			`{"$binary":{"base64":"Qg==","subType":"80"}}`,
		},
		{"ObjectID", oid, `{"$oid":"62e2bd1a29a2a221c8c36ace"}`},
		{"Bool", true, `true`},
		{
			"DateTime",
			time.Date(2021, 7, 15, 9, 35, 42, 123000000, time.UTC),
			`{"$date":{"$numberLong":"1626341742123"}}`,
		},
		{"Null", types.Null, `null`},
		{"Undefined", types.Undefined, `{"$undefined":true}`},
		{
			"Regex",
			types.Regex{Pattern: "p", Options: "i"},
			`{"$regularExpression":{"pattern":"p","options":"i"}}`,
		},
		{
			"DBPointer",
			types.DBPointer{NS: "db.coll", ID: oid},
			`{"$dbPointer":{"$ref":"db.coll","$id":{"$oid":"62e2bd1a29a2a221c8c36ace"}}}`,
		},
		{"JavaScript", types.JavaScript{Code: "function() {}"}, `{"$code":"function() {}"}`},
		{
			"CodeWithScope",
			types.CodeWithScope{Code: "f()", Scope: must.NotFail(types.NewDocument("a", int32(1)))},
			`{"$code":"f()","$scope":{"a":{"$numberInt":"1"}}}`,
		},
		{"Symbol", types.Symbol("sym"), `{"$symbol":"sym"}`},
		{"Int32", int32(42), `{"$numberInt":"42"}`},
		{"Timestamp", types.NewTimestamp(1, 2), `{"$timestamp":"4294967298"}`},
		{"MaxTimestamp", types.MaxTimestamp, `{"$timestamp":"18446744073709551615"}`},
		{"Int64", int64(42), `{"$numberLong":"42"}`},
		{
			"UnsignedLong",
			types.NewULong(math.MaxUint64),
			`{"$numberLong":"18446744073709551615"}`,
		},
		{"Decimal128", types.NewDecimal128(0x303e000000000000, 1), `{"$numberDecimal":"0.1"}`},
		{"MinKey", types.MinKey, `{"$minKey":1}`},
		{"MaxKey", types.MaxKey, `{"$maxKey":1}`},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			b, err := Marshal(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.j, string(b))

			v, err := Unmarshal([]byte(tc.j))
			require.NoError(t, err)
			assert.Equal(t, tc.v, v)
		})
	}
}

func TestMarshalPromoted(t *testing.T) {
	// values produced by decoder promotions marshal through
	// the matching canonical wrappers
	for _, tc := range []struct {
		name string
		v    any
		j    string
	}{
		{"NaN", math.NaN(), `{"$numberDouble":"NaN"}`},
		{"Infinity", math.Inf(1), `{"$numberDouble":"Infinity"}`},
		{"NegativeInfinity", math.Inf(-1), `{"$numberDouble":"-Infinity"}`},
		{"Long", types.NewLong(42), `{"$numberLong":"42"}`},
		{"Bytes", []byte{0x42}, `{"$binary":{"base64":"Qg==","subType":"00"}}`},
		{
			"UUID",
			uuidValue(),
			`{"$binary":{"base64":"AAECAwQFBgcICQoLDA0ODw==","subType":"04"}}`,
		},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			b, err := Marshal(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.j, string(b))
		})
	}
}

func TestUnmarshalForms(t *testing.T) {
	t.Run("PlainNumbers", func(t *testing.T) {
		v, err := Unmarshal([]byte(`{"a":1,"b":2147483648,"c":0.5,"d":100000000000000000000}`))
		require.NoError(t, err)

		doc := v.(*types.Document)
		assert.Equal(t, int32(1), doc.Get("a"))
		assert.Equal(t, int64(2147483648), doc.Get("b"))
		assert.Equal(t, 0.5, doc.Get("c"))
		assert.Equal(t, 1e20, doc.Get("d"))
	})

	t.Run("NaN", func(t *testing.T) {
		v, err := Unmarshal([]byte(`{"$numberDouble":"NaN"}`))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(v.(float64)))
	})

	t.Run("DateString", func(t *testing.T) {
		v, err := Unmarshal([]byte(`{"$date":"2021-07-15T09:35:42.123Z"}`))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2021, 7, 15, 9, 35, 42, 123000000, time.UTC), v)
	})

	t.Run("TimestampPair", func(t *testing.T) {
		v, err := Unmarshal([]byte(`{"$timestamp":{"t":1,"i":2}}`))
		require.NoError(t, err)
		assert.Equal(t, types.NewTimestamp(1, 2), v)
	})

	t.Run("DollarPrefixedField", func(t *testing.T) {
		// unknown $-keys are ordinary field names
		v, err := Unmarshal([]byte(`{"$unknown":1}`))
		require.NoError(t, err)
		assert.Equal(t, must.NotFail(types.NewDocument("$unknown", int32(1))), v)
	})

	t.Run("KeyOrder", func(t *testing.T) {
		doc, err := UnmarshalDocument([]byte(`{"z":1,"a":2,"m":3}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a", "m"}, doc.Keys())
	})
}

func TestUnmarshalErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		j    string
	}{
		{"Empty", ``},
		{"Invalid", `{`},
		{"TrailingData", `{} {}`},
		{"BadOID", `{"$oid":"zze2bd1a29a2a221c8c36ace"}`},
		{"BadNumberInt", `{"$numberInt":"forty-two"}`},
		{"BadRegex", `{"$regularExpression":"p"}`},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tc.j))
			assert.Error(t, err)
		})
	}

	t.Run("NotADocument", func(t *testing.T) {
		_, err := UnmarshalDocument([]byte(`42`))
		assert.Error(t, err)
	})
}

func TestMarshalRelaxed(t *testing.T) {
	doc := must.NotFail(types.NewDocument(
		"f", 42.13,
		"w", 5.0,
		"i", int32(1),
		"l", int64(2),
		"u", types.NewULong(math.MaxUint64),
		"t", time.Date(2021, 7, 15, 9, 35, 42, 123000000, time.UTC),
		"n", types.Null,
		"a", must.NotFail(types.NewArray(int32(7))),
	))

	b, err := MarshalRelaxed(doc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"f":42.13,"w":5,"i":1,"l":2,"u":18446744073709551615,`+
			`"t":{"$date":"2021-07-15T09:35:42.123Z"},"n":null,"a":[7]}`,
		string(b))

	// non-finite doubles and out-of-range dates keep the canonical form
	b, err = MarshalRelaxed(math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, `{"$numberDouble":"Infinity"}`, string(b))

	b, err = MarshalRelaxed(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, `{"$date":{"$numberLong":"253402300800000"}}`, string(b))
}

func uuidValue() uuid.UUID {
	var u uuid.UUID
	for i := range u {
		u[i] = byte(i)
	}

	return u
}
