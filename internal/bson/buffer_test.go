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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/must"
)

func TestSerializeShared(t *testing.T) {
	t.Run("GrowsBeyondDefault", func(t *testing.T) {
		doc := must.NotFail(types.NewDocument("big", strings.Repeat("x", 64*1024)))

		b, err := Serialize(doc, nil)
		require.NoError(t, err)
		assert.Len(t, b, CalculateObjectSize(doc, nil))
	})

	t.Run("MinInternalBufferSize", func(t *testing.T) {
		opts := DefaultEncodeOptions()
		opts.MinInternalBufferSize = 128 * 1024

		b, err := Serialize(must.NotFail(types.NewDocument("f", int32(1))), opts)
		require.NoError(t, err)
		assert.Len(t, b, 12)
	})

	t.Run("Concurrent", func(t *testing.T) {
		SetInternalBufferSize(0) // reset to the default

		docs := make([]*types.Document, 10)
		expected := make([][]byte, len(docs))
		for i := range docs {
			docs[i] = must.NotFail(types.NewDocument(
				"i", int32(i),
				"payload", strings.Repeat(string(rune('a'+i)), 1000*(i+1)),
			))
			expected[i] = must.NotFail(Serialize(docs[i], nil))
		}

		var wg sync.WaitGroup
		for n := 0; n < 20; n++ {
			for i := range docs {
				wg.Add(1)

				go func(i int) {
					defer wg.Done()

					b, err := Serialize(docs[i], nil)
					assert.NoError(t, err)
					assert.Equal(t, expected[i], b)
				}(i)
			}
		}

		wg.Wait()
	})
}
