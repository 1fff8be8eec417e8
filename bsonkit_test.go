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

package bsonkit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucsoft/bsonkit"
)

func TestRoundTrip(t *testing.T) {
	id := bsonkit.NewObjectID()

	doc, err := bsonkit.NewDocument(
		"_id", id,
		"name", "test",
		"score", 42.13,
		"count", int64(11),
		"created", time.Date(2021, 7, 15, 9, 35, 42, 123000000, time.UTC),
		"tags", mustArray(t, "a", "b"),
		"meta", mustDocument(t, "deleted", false, "ts", bsonkit.NewTimestamp(1626341742, 1)),
	)
	require.NoError(t, err)

	b, err := bsonkit.Serialize(doc, nil)
	require.NoError(t, err)
	assert.Len(t, b, bsonkit.CalculateObjectSize(doc, nil))

	res, err := bsonkit.Deserialize(b, nil)
	require.NoError(t, err)

	assert.Equal(t, doc.Keys(), res.Keys())
	assert.Equal(t, id, res.Get("_id"))
	assert.Equal(t, "test", res.Get("name"))
	assert.Equal(t, int64(11), res.Get("count"))

	_, err = bsonkit.Deserialize(b[:3], nil)
	assert.ErrorIs(t, err, bsonkit.ErrDecodeShortInput)
}

func TestStream(t *testing.T) {
	doc1 := mustDocument(t, "i", int32(1))
	doc2 := mustDocument(t, "i", int32(2))

	b1, err := bsonkit.Serialize(doc1, nil)
	require.NoError(t, err)
	b2, err := bsonkit.Serialize(doc2, nil)
	require.NoError(t, err)

	docs := make([]*bsonkit.Document, 2)
	next, err := bsonkit.DeserializeStream(append(b1, b2...), 0, 2, docs, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, len(b1)+len(b2), next)
	assert.Equal(t, int32(1), docs[0].Get("i"))
	assert.Equal(t, int32(2), docs[1].Get("i"))
}

func TestBufferAndIndex(t *testing.T) {
	doc := mustDocument(t, "i", int32(1))

	size := bsonkit.CalculateObjectSize(doc, nil)
	buf := make([]byte, size+10)

	last, err := bsonkit.SerializeWithBufferAndIndex(doc, buf, nil, 5)
	require.NoError(t, err)
	assert.Equal(t, 5+size-1, last)

	res, err := bsonkit.Deserialize(buf[5:5+size], nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), res.Get("i"))

	_, err = bsonkit.SerializeWithBufferAndIndex(doc, make([]byte, size-1), nil, 0)
	assert.ErrorIs(t, err, bsonkit.ErrBufferTooSmall)
}

func mustDocument(t *testing.T, pairs ...any) *bsonkit.Document {
	t.Helper()

	doc, err := bsonkit.NewDocument(pairs...)
	require.NoError(t, err)
	return doc
}

func mustArray(t *testing.T, values ...any) *bsonkit.Array {
	t.Helper()

	arr, err := bsonkit.NewArray(values...)
	require.NoError(t, err)
	return arr
}
