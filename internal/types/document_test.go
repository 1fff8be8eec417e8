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
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucsoft/bsonkit/internal/util/must"
)

func TestDocument(t *testing.T) {
	doc, err := NewDocument("foo", int32(1), "bar", "baz")
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, []string{"foo", "bar"}, doc.Keys())
	assert.Equal(t, []any{int32(1), "baz"}, doc.Values())

	name, value := doc.Entry(0)
	assert.Equal(t, "foo", name)
	assert.Equal(t, int32(1), value)

	assert.Equal(t, int32(1), doc.Get("foo"))
	assert.Nil(t, doc.Get("missing"))
	assert.True(t, doc.Has("bar"))
	assert.False(t, doc.Has("missing"))

	require.NoError(t, doc.Set("foo", int32(2)))
	assert.Equal(t, int32(2), doc.Get("foo"))
	assert.Equal(t, 2, doc.Len())

	require.NoError(t, doc.Set("new", Null))
	assert.Equal(t, []string{"foo", "bar", "new"}, doc.Keys())

	doc.Remove("bar")
	doc.Remove("missing")
	assert.Equal(t, []string{"foo", "new"}, doc.Keys())

	// field names may repeat; lookups return the first match
	require.NoError(t, doc.Add("foo", int32(3)))
	assert.Equal(t, 3, doc.Len())
	assert.Equal(t, int32(2), doc.Get("foo"))
}

func TestDocumentErrors(t *testing.T) {
	_, err := NewDocument("foo")
	assert.Error(t, err)

	_, err = NewDocument(42, "foo")
	assert.Error(t, err)

	_, err = NewDocument("foo", int(42))
	assert.Error(t, err)

	doc := MakeDocument(0)
	assert.Error(t, doc.Add("foo", uint8(42)))
	assert.Error(t, doc.Set("foo", nil))
	assert.Error(t, doc.Set("foo", CodeWithScope{Code: "f()"}))

	var re *regexp.Regexp
	assert.Error(t, doc.Set("foo", re))

	assert.Equal(t, 0, doc.Len())
}

func TestArray(t *testing.T) {
	arr, err := NewArray("foo", int32(1))
	require.NoError(t, err)

	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, "foo", arr.Get(0))

	require.NoError(t, arr.Set(1, int32(2)))
	assert.Equal(t, int32(2), arr.Get(1))
	assert.Panics(t, func() { _ = arr.Set(2, int32(3)) })

	require.NoError(t, arr.Append(Null, true))
	assert.Equal(t, 4, arr.Len())
	assert.Equal(t, true, arr.Get(3))

	_, err = NewArray(int(42))
	assert.Error(t, err)
	assert.Error(t, arr.Append(uint16(1)))
}

func TestEqual(t *testing.T) {
	doc1 := must.NotFail(NewDocument("a", int32(1), "b", must.NotFail(NewArray("x", 1.5))))
	doc2 := must.NotFail(NewDocument("a", int32(1), "b", must.NotFail(NewArray("x", 1.5))))
	assert.True(t, Equal(doc1, doc2))

	// order matters
	doc3 := must.NotFail(NewDocument("b", must.NotFail(NewArray("x", 1.5)), "a", int32(1)))
	assert.False(t, Equal(doc1, doc3))

	assert.True(t, Equal(nan(), nan()))
	assert.False(t, Equal(0.0, negZero()))
	assert.False(t, equal(int32(1), int64(1)))
	assert.False(t, equal(int64(1), NewLong(1)))
	assert.True(t, Equal(NewLong(-1), NewULong(1<<64-1)))

	t1 := time.Date(2021, 7, 15, 9, 35, 42, 123000000, time.UTC)
	assert.True(t, Equal(t1, t1.Local()))

	assert.True(t, Equal(Null, Null))
	assert.False(t, equal(Null, Undefined))
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func negZero() float64 {
	var zero float64
	return -zero
}
