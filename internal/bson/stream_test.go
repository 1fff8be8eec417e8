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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/must"
	"github.com/lucsoft/bsonkit/internal/util/testutil"
)

func TestDeserializeStream(t *testing.T) {
	docs := []*types.Document{
		must.NotFail(types.NewDocument("i", int32(0))),
		must.NotFail(types.NewDocument("i", int32(1), "s", "one")),
		must.NotFail(types.NewDocument()),
	}

	var b []byte
	for _, doc := range docs {
		b = append(b, must.NotFail(Serialize(doc, nil))...)
	}

	t.Run("All", func(t *testing.T) {
		res := make([]*types.Document, len(docs))
		index, err := DeserializeStream(b, 0, len(docs), res, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, len(b), index)

		for i, doc := range docs {
			testutil.AssertEqual(t, doc, res[i])
		}
	})

	t.Run("Offsets", func(t *testing.T) {
		first := must.NotFail(Serialize(docs[0], nil))

		res := make([]*types.Document, 3)
		index, err := DeserializeStream(b, len(first), 2, res, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, len(b), index)

		assert.Nil(t, res[0])
		testutil.AssertEqual(t, docs[1], res[1])
		testutil.AssertEqual(t, docs[2], res[2])
	})

	t.Run("Truncated", func(t *testing.T) {
		res := make([]*types.Document, len(docs))
		index, err := DeserializeStream(b[:len(b)-1], 0, len(docs), res, 0, nil)
		require.ErrorIs(t, err, ErrDecodeShortInput)

		// the index points at the document that failed
		first := must.NotFail(Serialize(docs[0], nil))
		second := must.NotFail(Serialize(docs[1], nil))
		assert.Equal(t, len(first)+len(second), index)
	})

	t.Run("BadStartIndex", func(t *testing.T) {
		res := make([]*types.Document, 1)
		_, err := DeserializeStream(b, len(b)+1, 1, res, 0, nil)
		require.ErrorIs(t, err, ErrDecodeInvalidInput)
	})
}

func TestFindRawDocument(t *testing.T) {
	doc := must.NotFail(types.NewDocument("foo", "bar"))
	b := must.NotFail(Serialize(doc, nil))

	t.Run("Exact", func(t *testing.T) {
		raw := FindRawDocument(b)
		assert.Equal(t, RawDocument(b), raw)
	})

	t.Run("Trailing", func(t *testing.T) {
		raw := FindRawDocument(append(b, 0x42, 0x42))
		assert.Equal(t, RawDocument(b), raw)
	})

	t.Run("Short", func(t *testing.T) {
		assert.Nil(t, FindRawDocument(b[:3]))
		assert.Nil(t, FindRawDocument(b[:len(b)-1]))
	})

	t.Run("NoTerminator", func(t *testing.T) {
		c := append([]byte(nil), b...)
		c[len(c)-1] = 0x42
		assert.Nil(t, FindRawDocument(c))
	})
}
