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
	"sync"

	"github.com/lucsoft/bsonkit/internal/types"
	"github.com/lucsoft/bsonkit/internal/util/lazyerrors"
)

// defaultInternalBufferSize is the initial size of the shared serialization buffer.
const defaultInternalBufferSize = 17 * 1024

// internalBuffer is the scratch space shared by Serialize calls.
// It only grows; SetInternalBufferSize may shrink it explicitly.
var internalBuffer = struct {
	sync.Mutex
	b []byte
}{
	b: make([]byte, defaultInternalBufferSize),
}

// SetInternalBufferSize resizes the shared serialization buffer.
//
// Sizes below the default are ignored.
func SetInternalBufferSize(size int) {
	if size < defaultInternalBufferSize {
		size = defaultInternalBufferSize
	}

	internalBuffer.Lock()
	defer internalBuffer.Unlock()

	internalBuffer.b = make([]byte, size)
}

// Serialize encodes the document and returns a freshly allocated slice
// of exactly the encoded size.
//
// nil opts mean default options.
func Serialize(doc *types.Document, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	// the size pass recurses without tracking the path,
	// so cycles must be ruled out before it runs
	if err := checkCycles(doc, map[any]struct{}{}); err != nil {
		return nil, lazyerrors.Error(err)
	}

	size := CalculateObjectSize(doc, opts)

	internalBuffer.Lock()
	defer internalBuffer.Unlock()

	if want := max(size, opts.MinInternalBufferSize); len(internalBuffer.b) < want {
		internalBuffer.b = make([]byte, want)
	}

	if _, err := encodeDocument(internalBuffer.b, 0, doc, opts); err != nil {
		return nil, lazyerrors.Error(err)
	}

	res := make([]byte, size)
	copy(res, internalBuffer.b[:size])

	return res, nil
}
